package mongo

import (
	"context"
	"regexp"
	"strings"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type orderRepository struct {
	collection *mongo.Collection
	session    mongo.Session
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *mongo.Database) repository.OrderRepository {
	return &orderRepository{collection: db.Collection(ordersCollection)}
}

func (repo *orderRepository) CreateOrder(ctx context.Context, order *entity.Order) error {
	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	now := time.Now().UTC()
	if order.CreatedAt.IsZero() {
		order.CreatedAt = now
	}
	if order.UpdatedAt.IsZero() {
		order.UpdatedAt = now
	}
	order.Version = 1

	if _, err := repo.collection.InsertOne(withSession(ctx, repo.session), fromOrderDomain(order)); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return repository.ErrDuplicateOrderNumber
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	return nil
}

func (repo *orderRepository) FindOrderByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var doc orderDocument
	err := repo.collection.FindOne(withSession(ctx, repo.session), bson.M{"_id": id.String()}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by ID")
	}

	return toOrderDomain(&doc), nil
}

func (repo *orderRepository) ListOrders(ctx context.Context, filter entity.OrderFilter) ([]*entity.Order, int64, error) {
	ctx = withSession(ctx, repo.session)
	query := orderFilterDocument(filter)

	total, err := repo.collection.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to count orders")
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	if filter.Limit > 0 {
		opts.SetLimit(int64(filter.Limit))
	}
	if filter.Offset > 0 {
		opts.SetSkip(int64(filter.Offset))
	}

	cursor, err := repo.collection.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to list orders")
	}
	defer cursor.Close(ctx)

	var docs []*orderDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, 0, errors.Wrap(err, "failed to decode orders")
	}

	orders := make([]*entity.Order, 0, len(docs))
	for _, doc := range docs {
		orders = append(orders, toOrderDomain(doc))
	}

	return orders, total, nil
}

func orderFilterDocument(filter entity.OrderFilter) bson.M {
	query := bson.M{}
	if filter.UserID != nil {
		query["user_id"] = filter.UserID.String()
	}
	if filter.Status != "" {
		query["status"] = string(filter.Status)
	}
	if filter.ReturnStatus != "" {
		query["return_exchange.status"] = string(filter.ReturnStatus)
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		query["order_number"] = primitive.Regex{Pattern: regexp.QuoteMeta(search), Options: "i"}
	}

	return query
}

// UpdateOrder replaces the document only when the stored version matches.
func (repo *orderRepository) UpdateOrder(ctx context.Context, order *entity.Order) error {
	doc := fromOrderDomain(order)
	doc.Version = order.Version + 1

	result, err := repo.collection.ReplaceOne(
		withSession(ctx, repo.session),
		bson.M{"_id": doc.ID, "version": order.Version},
		doc,
	)
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update order")
	}
	if result.MatchedCount == 0 {
		return repository.ErrOrderVersionMismatch
	}

	order.Version = doc.Version

	return nil
}
