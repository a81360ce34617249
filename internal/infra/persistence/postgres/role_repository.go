package postgres

import (
	"context"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"
	"storefront/internal/infra/persistence/postgres/query"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gen"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type roleRepository struct {
	q *query.Query
}

// NewRoleRepository is the constructor for roleRepository.
func NewRoleRepository(db *gorm.DB) repository.RoleRepository {
	return &roleRepository{q: query.Use(db)}
}

func (repo *roleRepository) ListRoles(ctx context.Context) ([]*entity.Role, error) {
	r := repo.q.RoleModel

	roleModels, err := r.WithContext(ctx).Order(r.Name).Find()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list roles")
	}

	roles := make([]*entity.Role, 0, len(roleModels))
	for _, m := range roleModels {
		roles = append(roles, toRoleDomain(m))
	}

	return roles, nil
}

func (repo *roleRepository) FindRoleByID(ctx context.Context, id uuid.UUID) (*entity.Role, error) {
	return repo.findOne(ctx, repo.q.RoleModel.ID.Eq(id))
}

func (repo *roleRepository) FindRoleByName(ctx context.Context, name string) (*entity.Role, error) {
	return repo.findOne(ctx, repo.q.RoleModel.Name.Eq(name))
}

func (repo *roleRepository) findOne(ctx context.Context, cond gen.Condition) (*entity.Role, error) {
	roleM, err := repo.q.RoleModel.WithContext(ctx).Where(cond).First()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRoleNotFound
		}

		return nil, errors.Wrap(err, "failed to find role")
	}

	return toRoleDomain(roleM), nil
}

func (repo *roleRepository) UpdateRolePermissions(ctx context.Context, id uuid.UUID, permissions entity.Permissions) error {
	r := repo.q.RoleModel

	result, err := r.WithContext(ctx).
		Where(r.ID.Eq(id)).
		UpdateSimple(
			r.Permissions.Value(datatypes.NewJSONType(fromPermissionsDomain(permissions))),
			r.UpdatedAt.Value(time.Now()),
		)
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update role permissions")
	}
	if result.RowsAffected == 0 {
		return repository.ErrRoleNotFound
	}

	return nil
}

// UpsertRole inserts the role or overwrites description and permissions of the same-named role.
func (repo *roleRepository) UpsertRole(ctx context.Context, role *entity.Role) error {
	if role.ID == uuid.Nil {
		role.ID = uuid.New()
	}
	roleM := &model.RoleModel{
		ID:          role.ID,
		Name:        role.Name,
		Description: role.Description,
		IsSystem:    role.IsSystem,
		Permissions: datatypes.NewJSONType(fromPermissionsDomain(role.Permissions)),
	}

	if err := repo.q.RoleModel.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"description", "is_system", "permissions", "updated_at"}),
	}).Create(roleM); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert role")
	}

	return nil
}
