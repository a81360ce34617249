package mongo

import (
	"context"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type orderEventRepository struct {
	collection *mongo.Collection
	session    mongo.Session
}

// NewOrderEventRepository is the constructor for orderEventRepository.
func NewOrderEventRepository(db *mongo.Database) repository.OrderEventRepository {
	return &orderEventRepository{collection: db.Collection(orderEventsCollection)}
}

func (repo *orderEventRepository) CreateOrderEvent(ctx context.Context, event *entity.OrderEvent) error {
	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}
	if _, err := repo.collection.InsertOne(withSession(ctx, repo.session), fromOrderEventDomain(event)); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create order event")
	}

	return nil
}

func (repo *orderEventRepository) ListOrderEvents(ctx context.Context, orderID uuid.UUID) ([]*entity.OrderEvent, error) {
	ctx = withSession(ctx, repo.session)
	cursor, err := repo.collection.Find(ctx,
		bson.M{"order_id": orderID.String()},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}}),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list order events")
	}
	defer cursor.Close(ctx)

	var docs []*orderEventDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, errors.Wrap(err, "failed to decode order events")
	}

	events := make([]*entity.OrderEvent, 0, len(docs))
	for _, doc := range docs {
		events = append(events, toOrderEventDomain(doc))
	}

	return events, nil
}
