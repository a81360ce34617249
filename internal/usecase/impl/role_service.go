package impl

import (
	"context"
	"log/slog"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	logs "storefront/internal/infra/log"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// RoleServiceParams holds dependencies for RoleService, injected by Fx.
type RoleServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	RoleRepo   repository.RoleRepository
	Authorizer service.Authorizer
	Logger     *slog.Logger
}

// roleService implements the RoleUsecase interface.
type roleService struct {
	txManager  repository.TransactionManager
	roleRepo   repository.RoleRepository
	authorizer service.Authorizer
	logger     *slog.Logger
}

// NewRoleService is the constructor for roleService.
func NewRoleService(params RoleServiceParams) usecase.RoleUsecase {
	return &roleService{
		txManager:  params.TxManager,
		roleRepo:   params.RoleRepo,
		authorizer: params.Authorizer,
		logger:     params.Logger,
	}
}

// ListRoles returns every role with its permission matrix.
func (srv *roleService) ListRoles(ctx context.Context) ([]*entity.Role, error) {
	roles, err := srv.roleRepo.ListRoles(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list roles")
	}

	return roles, nil
}

// GetRole returns a single role.
func (srv *roleService) GetRole(ctx context.Context, roleID uuid.UUID) (*entity.Role, error) {
	role, err := srv.roleRepo.FindRoleByID(ctx, roleID)
	if err != nil {
		return nil, mapRoleRepoError(err)
	}

	return role, nil
}

// UpdateRolePermission flips one permission bit and reloads the gate.
func (srv *roleService) UpdateRolePermission(ctx context.Context, actor entity.Actor, roleID uuid.UUID, input *usecase.UpdateRolePermissionInput) (*entity.Role, error) {
	resource := entity.Resource(input.Resource)
	action := entity.Action(input.Action)
	if !entity.IsKnownPermission(resource, action) {
		return nil, domainerrors.ErrInvalidPermission.WithDetails(input.Resource + "." + input.Action)
	}
	if input.Enabled == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("enabled is required")
	}
	enabled := *input.Enabled

	var updated *entity.Role
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		roleRepo := repoFactory.NewRoleRepository()

		role, err := roleRepo.FindRoleByID(ctx, roleID)
		if err != nil {
			return mapRoleRepoError(err)
		}
		if !enabled && role.IsLockoutBit(resource, action) {
			return domainerrors.ErrRoleLockout
		}

		if role.Permissions == nil {
			role.Permissions = make(entity.Permissions)
		}
		role.Permissions.Set(resource, action, enabled)

		if err := roleRepo.UpdateRolePermissions(ctx, role.ID, role.Permissions); err != nil {
			return mapRoleRepoError(err)
		}
		updated = role

		return nil
	})
	if err != nil {
		return nil, err
	}

	logger := logs.FromContext(ctx, srv.logger)
	logger.Info("Role permission changed",
		slog.String("role", updated.Name),
		slog.String("permission", input.Resource+"."+input.Action),
		slog.Bool("enabled", enabled),
		slog.String("actor_id", actor.UserID.String()),
	)

	// The change is committed; a failed reload is picked up by the periodic one.
	if err := srv.authorizer.Reload(ctx); err != nil {
		logger.Error("Failed to reload authorization policies", slog.Any("error", err))
	}

	return updated, nil
}

func mapRoleRepoError(err error) error {
	if errors.Is(err, repository.ErrRoleNotFound) {
		return domainerrors.ErrRoleNotFound
	}

	return errors.Wrap(err, "role store failed")
}
