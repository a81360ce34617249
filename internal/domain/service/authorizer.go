package service

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// Authorizer answers permission questions about authenticated users.
type Authorizer interface {
	// Authorize returns nil when one of the actor's roles grants resource.action,
	// otherwise ErrPermissionDenied. It does not look the user up again.
	Authorize(ctx context.Context, actor entity.Actor, resource entity.Resource, action entity.Action) error

	// EnsureActive fails when the user is unknown or blocked.
	EnsureActive(ctx context.Context, userID uuid.UUID) (*entity.User, error)

	// Reload rebuilds the policy set from the stored roles.
	Reload(ctx context.Context) error
}
