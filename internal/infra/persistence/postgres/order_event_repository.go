package postgres

import (
	"context"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/postgres/query"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type orderEventRepository struct {
	q *query.Query
}

// NewOrderEventRepository is the constructor for orderEventRepository.
func NewOrderEventRepository(db *gorm.DB) repository.OrderEventRepository {
	return &orderEventRepository{q: query.Use(db)}
}

func (repo *orderEventRepository) CreateOrderEvent(ctx context.Context, event *entity.OrderEvent) error {
	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}
	if err := repo.q.OrderEventModel.WithContext(ctx).Create(fromOrderEventDomain(event)); err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrOrderNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order event")
	}

	return nil
}

func (repo *orderEventRepository) ListOrderEvents(ctx context.Context, orderID uuid.UUID) ([]*entity.OrderEvent, error) {
	e := repo.q.OrderEventModel

	eventModels, err := e.WithContext(ctx).
		Where(e.OrderID.Eq(orderID)).
		Order(e.CreatedAt).
		Find()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list order events")
	}

	events := make([]*entity.OrderEvent, 0, len(eventModels))
	for _, m := range eventModels {
		events = append(events, toOrderEventDomain(m))
	}

	return events, nil
}
