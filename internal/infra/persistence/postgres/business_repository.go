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

// businessRepository implements the domain's BusinessRepository using GORM.
type businessRepository struct {
	db *gorm.DB
}

// NewBusinessRepository is the constructor for businessRepository.
func NewBusinessRepository(db *gorm.DB) repository.BusinessRepository {
	return &businessRepository{db: db}
}

func (repo *businessRepository) CreateBusiness(ctx context.Context, business *entity.Business) error {
	if err := repo.db.WithContext(ctx).Create(model.BusinessFromDomain(business)).Error; err != nil {
		return errors.Wrap(err, "failed to create business")
	}

	return nil
}

func (repo *businessRepository) FindBusinessByID(ctx context.Context, id uuid.UUID) (*entity.Business, error) {
	var m model.BusinessModel
	err := repo.db.WithContext(ctx).Where("id = ?", id).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBusinessNotFound
		}

		return nil, errors.Wrap(err, "failed to find business by id")
	}

	return m.ToDomain(), nil
}

func (repo *businessRepository) ListBusinesses(ctx context.Context) ([]*entity.Business, error) {
	var models []model.BusinessModel
	if err := repo.db.WithContext(ctx).Order("created_at DESC").Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list businesses")
	}

	businesses := make([]*entity.Business, 0, len(models))
	for i := range models {
		businesses = append(businesses, models[i].ToDomain())
	}

	return businesses, nil
}

func (repo *businessRepository) UpdateBusiness(ctx context.Context, business *entity.Business) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", business.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(model.BusinessFromDomain(business))
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update business")
	}
	if result.RowsAffected == 0 {
		return repository.ErrBusinessNotFound
	}

	return nil
}

func (repo *businessRepository) DeleteBusiness(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.BusinessModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete business")
	}
	if result.RowsAffected == 0 {
		return repository.ErrBusinessNotFound
	}

	return nil
}
