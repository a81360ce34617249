package repository

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"

	"github.com/google/uuid"
)

// ErrCacheMiss is returned when the cache holds no entry for the key.
var ErrCacheMiss = errors.New("cache miss")

// OrderCache is a read-through cache in front of OrderRepository.
type OrderCache interface {
	GetOrder(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	// SetOrder must not replace a cached entry that carries a newer Version.
	SetOrder(ctx context.Context, order *entity.Order) error
	DeleteOrder(ctx context.Context, id uuid.UUID) error
}
