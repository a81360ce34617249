package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// RoleUsecase manages the role permission matrices behind the admin gate.
type RoleUsecase interface {
	ListRoles(ctx context.Context) ([]*entity.Role, error)
	GetRole(ctx context.Context, roleID uuid.UUID) (*entity.Role, error)
	UpdateRolePermission(ctx context.Context, actor entity.Actor, roleID uuid.UUID, input *UpdateRolePermissionInput) (*entity.Role, error)
}

// UpdateRolePermissionInput toggles a single permission bit.
type UpdateRolePermissionInput struct {
	Resource string `json:"resource" validate:"required"`
	Action   string `json:"action" validate:"required"`
	Enabled  *bool  `json:"enabled" validate:"required"`
}
