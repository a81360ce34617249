package postgres

import (
	"context"
	"strings"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/postgres/query"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// orderRepository implements the repository.OrderRepository interface.
type orderRepository struct {
	q *query.Query
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{
		q: query.Use(db),
	}
}

// CreateOrder persists a new order with version 1.
func (repo *orderRepository) CreateOrder(ctx context.Context, order *entity.Order) error {
	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	order.Version = 1
	orderM := fromOrderDomain(order)

	if err := repo.q.OrderModel.WithContext(ctx).Create(orderM); err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateOrderNumber
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrInvalidOrderStatus.WrapMessage("order violates a status constraint")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	order.CreatedAt = orderM.CreatedAt
	order.UpdatedAt = orderM.UpdatedAt

	return nil
}

// FindOrderByID retrieves an order by its unique ID.
func (repo *orderRepository) FindOrderByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	o := repo.q.OrderModel

	orderM, err := o.WithContext(ctx).Where(o.ID.Eq(id)).First()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by ID")
	}

	return toOrderDomain(orderM), nil
}

// ListOrders returns a page of matching orders, newest first, plus the total match count.
func (repo *orderRepository) ListOrders(ctx context.Context, filter entity.OrderFilter) ([]*entity.Order, int64, error) {
	o := repo.q.OrderModel
	do := repo.filtered(ctx, filter)

	total, err := do.Count()
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to count orders")
	}

	do = do.Order(o.CreatedAt.Desc())
	if filter.Limit > 0 {
		do = do.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		do = do.Offset(filter.Offset)
	}
	orderModels, err := do.Find()
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to list orders")
	}

	orders := make([]*entity.Order, 0, len(orderModels))
	for _, orderM := range orderModels {
		orders = append(orders, toOrderDomain(orderM))
	}

	return orders, total, nil
}

func (repo *orderRepository) filtered(ctx context.Context, filter entity.OrderFilter) query.IOrderModelDo {
	o := repo.q.OrderModel
	do := o.WithContext(ctx)

	if filter.UserID != nil {
		do = do.Where(o.UserID.Eq(*filter.UserID))
	}
	if filter.Status != "" {
		do = do.Where(o.Status.Eq(string(filter.Status)))
	}
	if filter.ReturnStatus != "" {
		do = do.Where(o.ReturnStatus.Eq(string(filter.ReturnStatus)))
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		do = do.Where(o.OrderNumber.Upper().Like("%" + strings.ToUpper(search) + "%"))
	}

	return do
}

// UpdateOrder writes the mutable order columns guarded by the version column.
func (repo *orderRepository) UpdateOrder(ctx context.Context, order *entity.Order) error {
	o := repo.q.OrderModel
	orderM := fromOrderDomain(order)
	nextVersion := order.Version + 1

	result, err := o.WithContext(ctx).
		Where(o.ID.Eq(order.ID), o.Version.Eq(order.Version)).
		Updates(map[string]any{
			"status":              orderM.Status,
			"payment_status":      orderM.PaymentStatus,
			"tracking_number":     orderM.TrackingNumber,
			"carrier":             orderM.Carrier,
			"cancellation_reason": orderM.CancellationReason,
			"cancelled_by":        orderM.CancelledBy,
			"cancelled_at":        orderM.CancelledAt,
			"delivered_at":        orderM.DeliveredAt,
			"return_exchange":     orderM.ReturnExchange,
			"return_status":       orderM.ReturnStatus,
			"version":             nextVersion,
			"updated_at":          orderM.UpdatedAt,
		})
	if err != nil {
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrInvalidOrderStatus.WrapMessage("order violates a status constraint")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update order")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOrderVersionMismatch
	}

	order.Version = nextVersion

	return nil
}
