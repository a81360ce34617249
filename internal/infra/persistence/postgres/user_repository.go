package postgres

import (
	"context"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/postgres/query"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type userRepository struct {
	q *query.Query
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{q: query.Use(db)}
}

func (repo *userRepository) FindUserByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	u := repo.q.UserModel

	userM, err := u.WithContext(ctx).Where(u.ID.Eq(id)).First()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by ID")
	}

	return toUserDomain(userM), nil
}

// UpsertUser inserts the user or overwrites every column of the row with the same id.
func (repo *userRepository) UpsertUser(ctx context.Context, user *entity.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	if err := repo.q.UserModel.WithContext(ctx).Save(fromUserDomain(user)); err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WithDetails("email already in use")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert user")
	}

	return nil
}
