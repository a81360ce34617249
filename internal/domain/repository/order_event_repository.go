package repository

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// OrderEventRepository stores the order audit trail.
type OrderEventRepository interface {
	// CreateOrderEvent appends an audit entry.
	CreateOrderEvent(ctx context.Context, event *entity.OrderEvent) error

	// ListOrderEvents returns the entries of an order, oldest first.
	ListOrderEvents(ctx context.Context, orderID uuid.UUID) ([]*entity.OrderEvent, error)
}
