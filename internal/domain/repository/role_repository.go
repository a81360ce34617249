package repository

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"

	"github.com/google/uuid"
)

// ErrRoleNotFound is returned when a role is not found.
var ErrRoleNotFound = errors.New("role not found")

// RoleRepository defines the interface for role permission matrices.
type RoleRepository interface {
	// ListRoles returns every role ordered by name.
	ListRoles(ctx context.Context) ([]*entity.Role, error)

	// FindRoleByID retrieves a role by its unique ID.
	FindRoleByID(ctx context.Context, id uuid.UUID) (*entity.Role, error)

	// FindRoleByName retrieves a role by its unique name.
	FindRoleByName(ctx context.Context, name string) (*entity.Role, error)

	// UpdateRolePermissions replaces the permission matrix of a role.
	UpdateRolePermissions(ctx context.Context, id uuid.UUID, permissions entity.Permissions) error

	// UpsertRole creates the role or overwrites the one with the same name.
	UpsertRole(ctx context.Context, role *entity.Role) error
}
