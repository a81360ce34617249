package mongo

import (
	"context"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type roleRepository struct {
	collection *mongo.Collection
	session    mongo.Session
}

// NewRoleRepository is the constructor for roleRepository.
func NewRoleRepository(db *mongo.Database) repository.RoleRepository {
	return &roleRepository{collection: db.Collection(rolesCollection)}
}

func (repo *roleRepository) ListRoles(ctx context.Context) ([]*entity.Role, error) {
	ctx = withSession(ctx, repo.session)
	cursor, err := repo.collection.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, errors.Wrap(err, "failed to list roles")
	}
	defer cursor.Close(ctx)

	var docs []*roleDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, errors.Wrap(err, "failed to decode roles")
	}

	roles := make([]*entity.Role, 0, len(docs))
	for _, doc := range docs {
		roles = append(roles, toRoleDomain(doc))
	}

	return roles, nil
}

func (repo *roleRepository) FindRoleByID(ctx context.Context, id uuid.UUID) (*entity.Role, error) {
	return repo.findOne(ctx, bson.M{"_id": id.String()})
}

func (repo *roleRepository) FindRoleByName(ctx context.Context, name string) (*entity.Role, error) {
	return repo.findOne(ctx, bson.M{"name": name})
}

func (repo *roleRepository) findOne(ctx context.Context, filter bson.M) (*entity.Role, error) {
	var doc roleDocument
	if err := repo.collection.FindOne(withSession(ctx, repo.session), filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrRoleNotFound
		}

		return nil, errors.Wrap(err, "failed to find role")
	}

	return toRoleDomain(&doc), nil
}

func (repo *roleRepository) UpdateRolePermissions(ctx context.Context, id uuid.UUID, permissions entity.Permissions) error {
	result, err := repo.collection.UpdateOne(withSession(ctx, repo.session),
		bson.M{"_id": id.String()},
		bson.M{"$set": bson.M{
			"permissions": fromPermissionsDomain(permissions),
			"updated_at":  time.Now().UTC(),
		}},
	)
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update role permissions")
	}
	if result.MatchedCount == 0 {
		return repository.ErrRoleNotFound
	}

	return nil
}

func (repo *roleRepository) UpsertRole(ctx context.Context, role *entity.Role) error {
	if role.ID == uuid.Nil {
		role.ID = uuid.New()
	}
	now := time.Now().UTC()

	_, err := repo.collection.UpdateOne(withSession(ctx, repo.session),
		bson.M{"name": role.Name},
		bson.M{
			"$set": bson.M{
				"description": role.Description,
				"is_system":   role.IsSystem,
				"permissions": fromPermissionsDomain(role.Permissions),
				"updated_at":  now,
			},
			"$setOnInsert": bson.M{
				"_id":        role.ID.String(),
				"created_at": now,
			},
		},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert role")
	}

	return nil
}
