package postgres

import (
	"context"
	"time"

	"descya/internal/domain/entity"
	"descya/internal/domain/repository"
	"descya/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// couponRepository implements the domain's CouponRepository using GORM.
type couponRepository struct {
	db *gorm.DB
}

// NewCouponRepository is the constructor for couponRepository.
func NewCouponRepository(db *gorm.DB) repository.CouponRepository {
	return &couponRepository{db: db}
}

// CreateCoupon inserts the coupon, translating constraint violations into
// the repository's sentinel errors. The active-pair check runs first so
// callers inside a claim transaction get the more specific error.
func (repo *couponRepository) CreateCoupon(ctx context.Context, coupon *entity.Coupon) error {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.CouponModel{}).
		Where("user_id = ? AND deal_id = ? AND status = ?", coupon.UserID, coupon.DealID, string(entity.CouponActive)).
		Count(&count).Error
	if err != nil {
		return errors.Wrap(err, "failed to check for active coupon")
	}
	if count > 0 {
		return repository.ErrDuplicateActiveCoupon
	}

	if err := repo.db.WithContext(ctx).Create(model.CouponFromDomain(coupon)).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateRedemptionCode
		}

		return errors.Wrap(err, "failed to create coupon")
	}

	return nil
}

func (repo *couponRepository) FindCouponByID(ctx context.Context, id uuid.UUID) (*entity.Coupon, error) {
	return repo.findOne(ctx, "id = ?", id)
}

func (repo *couponRepository) FindCouponByCode(ctx context.Context, code string) (*entity.Coupon, error) {
	return repo.findOne(ctx, "redemption_code = ?", code)
}

func (repo *couponRepository) FindActiveCoupon(ctx context.Context, userID, dealID uuid.UUID) (*entity.Coupon, error) {
	return repo.findOne(ctx, "user_id = ? AND deal_id = ? AND status = ?", userID, dealID, string(entity.CouponActive))
}

func (repo *couponRepository) findOne(ctx context.Context, query string, args ...any) (*entity.Coupon, error) {
	var m model.CouponModel
	err := repo.db.WithContext(ctx).Where(query, args...).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCouponNotFound
		}

		return nil, errors.Wrap(err, "failed to find coupon")
	}

	return m.ToDomain(), nil
}

func (repo *couponRepository) ListCouponsByUser(ctx context.Context, userID uuid.UUID, status *entity.CouponStatus) ([]*entity.Coupon, error) {
	tx := repo.db.WithContext(ctx).Where("user_id = ?", userID)
	if status != nil {
		tx = tx.Where("status = ?", string(*status))
	}

	return repo.list(tx)
}

func (repo *couponRepository) ListCouponsByBusiness(ctx context.Context, businessID uuid.UUID) ([]*entity.Coupon, error) {
	return repo.list(repo.db.WithContext(ctx).Where("business_id = ?", businessID))
}

func (repo *couponRepository) list(tx *gorm.DB) ([]*entity.Coupon, error) {
	var models []model.CouponModel
	if err := tx.Order("claimed_at DESC").Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list coupons")
	}

	coupons := make([]*entity.Coupon, 0, len(models))
	for i := range models {
		coupons = append(coupons, models[i].ToDomain())
	}

	return coupons, nil
}

func (repo *couponRepository) CountCoupons(ctx context.Context) (int, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.CouponModel{}).Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count coupons")
	}

	return int(count), nil
}

func (repo *couponRepository) UpdateCouponStatus(ctx context.Context, id uuid.UUID, status entity.CouponStatus, usedAt *time.Time) error {
	updates := map[string]any{"status": string(status)}
	if usedAt != nil {
		updates["used_at"] = usedAt
	}

	result := repo.db.WithContext(ctx).
		Model(&model.CouponModel{}).
		Where("id = ?", id).
		Updates(updates)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update coupon status")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCouponNotFound
	}

	return nil
}
