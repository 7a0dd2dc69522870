package memory

import (
	"context"
	"sort"
	"time"

	"descya/internal/domain/entity"
	"descya/internal/domain/repository"

	"github.com/google/uuid"
)

type couponRepository struct {
	store *Store
}

// NewCouponRepository creates a store-backed CouponRepository.
func NewCouponRepository(store *Store) repository.CouponRepository {
	return &couponRepository{store: store}
}

// CreateCoupon enforces the two uniqueness rules at insert: one active
// coupon per (user, deal) pair and globally unique redemption codes.
func (r *couponRepository) CreateCoupon(_ context.Context, coupon *entity.Coupon) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, taken := r.store.couponsByCode[coupon.RedemptionCode]; taken {
		return repository.ErrDuplicateRedemptionCode
	}
	for _, existing := range r.store.coupons {
		if existing.UserID == coupon.UserID && existing.DealID == coupon.DealID &&
			existing.Status == entity.CouponActive {
			return repository.ErrDuplicateActiveCoupon
		}
	}

	r.store.coupons[coupon.ID] = *coupon
	r.store.couponsByCode[coupon.RedemptionCode] = coupon.ID
	r.store.nextSeq(coupon.ID)

	return nil
}

func (r *couponRepository) FindCouponByID(_ context.Context, id uuid.UUID) (*entity.Coupon, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	coupon, ok := r.store.coupons[id]
	if !ok {
		return nil, repository.ErrCouponNotFound
	}

	return &coupon, nil
}

func (r *couponRepository) FindCouponByCode(_ context.Context, code string) (*entity.Coupon, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	id, ok := r.store.couponsByCode[code]
	if !ok {
		return nil, repository.ErrCouponNotFound
	}
	coupon := r.store.coupons[id]

	return &coupon, nil
}

func (r *couponRepository) FindActiveCoupon(_ context.Context, userID, dealID uuid.UUID) (*entity.Coupon, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, coupon := range r.store.coupons {
		if coupon.UserID == userID && coupon.DealID == dealID && coupon.Status == entity.CouponActive {
			c := coupon

			return &c, nil
		}
	}

	return nil, repository.ErrCouponNotFound
}

func (r *couponRepository) ListCouponsByUser(_ context.Context, userID uuid.UUID, status *entity.CouponStatus) ([]*entity.Coupon, error) {
	return r.list(func(c *entity.Coupon) bool {
		return c.UserID == userID && (status == nil || c.Status == *status)
	})
}

func (r *couponRepository) ListCouponsByBusiness(_ context.Context, businessID uuid.UUID) ([]*entity.Coupon, error) {
	return r.list(func(c *entity.Coupon) bool { return c.Deal.BusinessID == businessID })
}

func (r *couponRepository) list(keep func(*entity.Coupon) bool) ([]*entity.Coupon, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	coupons := make([]*entity.Coupon, 0)
	for _, coupon := range r.store.coupons {
		c := coupon
		if keep(&c) {
			coupons = append(coupons, &c)
		}
	}
	sort.Slice(coupons, func(i, j int) bool {
		return r.store.order[coupons[i].ID] > r.store.order[coupons[j].ID]
	})

	return coupons, nil
}

func (r *couponRepository) CountCoupons(_ context.Context) (int, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return len(r.store.coupons), nil
}

func (r *couponRepository) UpdateCouponStatus(_ context.Context, id uuid.UUID, status entity.CouponStatus, usedAt *time.Time) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	coupon, ok := r.store.coupons[id]
	if !ok {
		return repository.ErrCouponNotFound
	}

	coupon.Status = status
	if usedAt != nil {
		coupon.UsedAt = usedAt
	}
	r.store.coupons[id] = coupon

	return nil
}
