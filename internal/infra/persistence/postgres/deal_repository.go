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

// dealRepository implements the domain's DealRepository using GORM.
type dealRepository struct {
	db *gorm.DB
}

// NewDealRepository is the constructor for dealRepository.
func NewDealRepository(db *gorm.DB) repository.DealRepository {
	return &dealRepository{db: db}
}

func (repo *dealRepository) CreateDeal(ctx context.Context, deal *entity.Deal) error {
	if err := repo.db.WithContext(ctx).Create(model.DealFromDomain(deal)).Error; err != nil {
		return errors.Wrap(err, "failed to create deal")
	}

	return nil
}

func (repo *dealRepository) FindDealByID(ctx context.Context, id uuid.UUID) (*entity.Deal, error) {
	var m model.DealModel
	err := repo.db.WithContext(ctx).Where("id = ?", id).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDealNotFound
		}

		return nil, errors.Wrap(err, "failed to find deal by id")
	}

	return m.ToDomain(), nil
}

func (repo *dealRepository) ListDeals(ctx context.Context) ([]*entity.Deal, error) {
	return repo.list(ctx, repo.db.WithContext(ctx))
}

func (repo *dealRepository) ListDealsByBusiness(ctx context.Context, businessID uuid.UUID) ([]*entity.Deal, error) {
	return repo.list(ctx, repo.db.WithContext(ctx).Where("business_id = ?", businessID))
}

func (repo *dealRepository) ListDealsByStatus(ctx context.Context, status entity.ApprovalStatus) ([]*entity.Deal, error) {
	return repo.list(ctx, repo.db.WithContext(ctx).Where("approval_status = ?", string(status)))
}

func (repo *dealRepository) list(_ context.Context, tx *gorm.DB) ([]*entity.Deal, error) {
	var models []model.DealModel
	if err := tx.Order("created_at DESC").Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list deals")
	}

	deals := make([]*entity.Deal, 0, len(models))
	for i := range models {
		deals = append(deals, models[i].ToDomain())
	}

	return deals, nil
}

func (repo *dealRepository) UpdateDeal(ctx context.Context, deal *entity.Deal) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", deal.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(model.DealFromDomain(deal))
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update deal")
	}
	if result.RowsAffected == 0 {
		return repository.ErrDealNotFound
	}

	return nil
}

// ClaimUnit increments the claimed counter with a conditional UPDATE, so
// concurrent claims for the last unit resolve in the database: whichever
// statement matches the guard wins, the rest see zero rows affected.
func (repo *dealRepository) ClaimUnit(ctx context.Context, id uuid.UUID) (*entity.Deal, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.DealModel{}).
		Where("id = ? AND claimed_quantity < available_quantity", id).
		UpdateColumn("claimed_quantity", gorm.Expr("claimed_quantity + 1"))
	if result.Error != nil {
		return nil, errors.Wrap(result.Error, "failed to claim deal unit")
	}

	if result.RowsAffected == 0 {
		// Distinguish a missing deal from an exhausted one.
		if _, err := repo.FindDealByID(ctx, id); err != nil {
			return nil, err
		}

		return nil, repository.ErrNoStock
	}

	return repo.FindDealByID(ctx, id)
}

func (repo *dealRepository) DeleteDeal(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.DealModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete deal")
	}
	if result.RowsAffected == 0 {
		return repository.ErrDealNotFound
	}

	return nil
}
