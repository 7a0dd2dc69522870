package repository

import (
	"context"
	"errors"
	"time"

	"descya/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for coupon persistence.
var (
	// ErrCouponNotFound is returned when a coupon is not found.
	ErrCouponNotFound = errors.New("coupon not found")
	// ErrDuplicateActiveCoupon is returned when the user already holds an
	// active coupon for the same deal.
	ErrDuplicateActiveCoupon = errors.New("active coupon already exists for this user and deal")
	// ErrDuplicateRedemptionCode is returned when the generated redemption
	// code collides with an existing one.
	ErrDuplicateRedemptionCode = errors.New("redemption code already exists")
)

// CouponRepository defines the interface for coupon-related storage operations.
// Coupons are append-only apart from status transitions; they are never deleted.
type CouponRepository interface {
	// CreateCoupon persists a new coupon. Fails with ErrDuplicateActiveCoupon
	// if the (user, deal) pair already has an active coupon, and with
	// ErrDuplicateRedemptionCode on a code collision.
	CreateCoupon(ctx context.Context, coupon *entity.Coupon) error

	// FindCouponByID retrieves a coupon by its unique ID.
	FindCouponByID(ctx context.Context, id uuid.UUID) (*entity.Coupon, error)

	// FindCouponByCode retrieves a coupon by exact redemption code match.
	FindCouponByCode(ctx context.Context, code string) (*entity.Coupon, error)

	// FindActiveCoupon retrieves the active coupon for a (user, deal) pair,
	// or ErrCouponNotFound if the user holds none.
	FindActiveCoupon(ctx context.Context, userID, dealID uuid.UUID) (*entity.Coupon, error)

	// ListCouponsByUser retrieves a user's coupons, newest first. A nil
	// status returns every coupon; otherwise only those in that state.
	ListCouponsByUser(ctx context.Context, userID uuid.UUID, status *entity.CouponStatus) ([]*entity.Coupon, error)

	// ListCouponsByBusiness retrieves all coupons issued against a business's
	// deals, newest first.
	ListCouponsByBusiness(ctx context.Context, businessID uuid.UUID) ([]*entity.Coupon, error)

	// CountCoupons returns the total number of coupons ever issued.
	CountCoupons(ctx context.Context) (int, error)

	// UpdateCouponStatus records a status transition, stamping usedAt when
	// the coupon is marked used.
	UpdateCouponStatus(ctx context.Context, id uuid.UUID, status entity.CouponStatus, usedAt *time.Time) error
}
