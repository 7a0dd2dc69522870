package usecase

import (
	"context"

	"descya/internal/domain/entity"

	"github.com/google/uuid"
)

// CouponUsecase covers coupon issuance and redemption.
type CouponUsecase interface {
	// Claim issues a coupon for the deal to the user, enforcing in order:
	// the deal exists, is publicly visible, has remaining units, and the
	// user holds no active coupon for it. Under concurrent claims for the
	// last unit exactly one caller succeeds; the rest get SoldOut.
	Claim(ctx context.Context, dealID, userID uuid.UUID) (*entity.Coupon, error)

	// Redeem resolves a redemption code and marks the coupon used. When
	// businessID is non-nil (business scanner flow) the coupon must belong
	// to one of that business's deals. A second call on the same code fails
	// with AlreadyUsed and never changes the recorded usedAt.
	Redeem(ctx context.Context, code string, businessID *uuid.UUID) (*entity.Coupon, error)

	// RedeemByID is the administrative override: it redeems by coupon id and
	// skips the business-scoping check. Trusted internal flows only; never
	// exposed on the public coupon-lookup surface.
	RedeemByID(ctx context.Context, couponID uuid.UUID) (*entity.Coupon, error)

	// CouponQR renders the coupon's redemption code as a QR PNG.
	CouponQR(ctx context.Context, couponID uuid.UUID) ([]byte, error)
}
