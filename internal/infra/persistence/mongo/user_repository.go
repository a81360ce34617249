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

type userRepository struct {
	collection *mongo.Collection
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *mongo.Database) repository.UserRepository {
	return &userRepository{collection: db.Collection(usersCollection)}
}

func (repo *userRepository) FindUserByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var doc userDocument
	if err := repo.collection.FindOne(ctx, bson.M{"_id": id.String()}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by ID")
	}

	return toUserDomain(&doc), nil
}

func (repo *userRepository) UpsertUser(ctx context.Context, user *entity.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	now := time.Now().UTC()
	if user.CreatedAt.IsZero() {
		user.CreatedAt = now
	}
	user.UpdatedAt = now

	_, err := repo.collection.ReplaceOne(ctx,
		bson.M{"_id": user.ID.String()},
		fromUserDomain(user),
		options.Replace().SetUpsert(true),
	)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domainerrors.ErrValidationFailed.WithDetails("email already in use")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert user")
	}

	return nil
}
