// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for order persistence.
var (
	// ErrOrderNotFound is returned when an order is not found.
	ErrOrderNotFound = errors.New("order not found")
	// ErrOrderVersionMismatch is returned when an update lost an optimistic concurrency race.
	ErrOrderVersionMismatch = errors.New("order version mismatch")
	// ErrDuplicateOrderNumber is returned when an order number is already taken.
	ErrDuplicateOrderNumber = errors.New("order number already exists")
)

// OrderRepository defines the interface for order persistence.
type OrderRepository interface {
	// CreateOrder persists a new order with version 1.
	CreateOrder(ctx context.Context, order *entity.Order) error

	// FindOrderByID retrieves an order by its unique ID.
	FindOrderByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// ListOrders returns a page of orders matching the filter, newest first, and the total match count.
	ListOrders(ctx context.Context, filter entity.OrderFilter) ([]*entity.Order, int64, error)

	// UpdateOrder writes the order if its stored version still equals order.Version,
	// then increments order.Version. Returns ErrOrderVersionMismatch otherwise.
	UpdateOrder(ctx context.Context, order *entity.Order) error
}
