package postgres

import (
	"context"

	"descya/internal/domain/entity"
	"descya/internal/domain/repository"
	"descya/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// userRepository implements the domain's UserRepository using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func (repo *userRepository) CreateUser(ctx context.Context, user *entity.User) error {
	if err := repo.db.WithContext(ctx).Create(model.UserFromDomain(user)).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrEmailExists
		}

		return errors.Wrap(err, "failed to create user")
	}

	return nil
}

func (repo *userRepository) FindUserByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return repo.findOne(ctx, "id = ?", id)
}

func (repo *userRepository) FindUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	return repo.findOne(ctx, "email = ?", email)
}

func (repo *userRepository) findOne(ctx context.Context, query string, args ...any) (*entity.User, error) {
	var m model.UserModel
	err := repo.db.WithContext(ctx).Where(query, args...).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return m.ToDomain(), nil
}

func (repo *userRepository) CountUsersByRole(ctx context.Context, role entity.Role) (int, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("role = ?", string(role)).
		Count(&count).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to count users")
	}

	return int(count), nil
}
