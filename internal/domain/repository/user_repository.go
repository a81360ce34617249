package repository

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"

	"github.com/google/uuid"
)

// ErrUserNotFound is returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository exposes the user data the order core consumes.
type UserRepository interface {
	// FindUserByID retrieves a user by its unique ID.
	FindUserByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// UpsertUser creates or replaces a user keyed by ID.
	UpsertUser(ctx context.Context, user *entity.User) error
}
