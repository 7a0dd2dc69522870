package usecase

import (
	"context"

	"descya/internal/domain/entity"
	"descya/internal/geo"

	"github.com/google/uuid"
)

// Origin is an optional user location used to annotate discovery queries.
type Origin struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Proximity annotates a deal with distance and travel estimates from an origin.
type Proximity struct {
	DistanceKm float64            `json:"distance_km"`
	Distance   string             `json:"distance"`
	Travel     geo.TravelEstimate `json:"travel"`
	Zone       geo.ZoneMatch      `json:"zone"`
}

// DealView is a deal as shown on discovery surfaces, optionally annotated
// with proximity information when the caller supplied an origin.
type DealView struct {
	*entity.Deal
	Proximity *Proximity `json:"proximity,omitempty"`
}

// BusinessStats summarizes a business's activity for its dashboard.
type BusinessStats struct {
	TotalDeals     int     `json:"total_deals"`
	TotalClaimed   int     `json:"total_claimed"`
	ValidatedToday int     `json:"validated_today"`
	ActiveCoupons  int     `json:"active_coupons"`
	Revenue        float64 `json:"revenue"` // Sum of discount prices over redeemed coupons.
}

// PlatformStats summarizes the marketplace for the admin dashboard.
type PlatformStats struct {
	TotalUsers      int `json:"total_users"`
	TotalBusinesses int `json:"total_businesses"`
	TotalDeals      int `json:"total_deals"` // Approved deals only.
	TotalCoupons    int `json:"total_coupons"`
	PendingDeals    int `json:"pending_deals"`
}

// CatalogUsecase is the query side of the engine.
type CatalogUsecase interface {
	// ListVisibleDeals returns deals claimable right now (approved, active,
	// not paused, not expired, owning business approved), annotated with
	// proximity when origin is non-nil.
	ListVisibleDeals(ctx context.Context, origin *Origin) ([]*DealView, error)

	// ListPendingDeals returns deals waiting for an admin decision.
	ListPendingDeals(ctx context.Context) ([]*entity.Deal, error)

	// GetDeal returns a single deal by id, regardless of visibility.
	GetDeal(ctx context.Context, dealID uuid.UUID) (*entity.Deal, error)

	// ListDealsForBusiness returns every deal owned by the business.
	ListDealsForBusiness(ctx context.Context, businessID uuid.UUID) ([]*entity.Deal, error)

	// CouponsForUser returns the user's coupons, optionally filtered by status.
	CouponsForUser(ctx context.Context, userID uuid.UUID, status *entity.CouponStatus) ([]*entity.Coupon, error)

	// CouponsForBusiness returns coupons issued against the business's deals.
	CouponsForBusiness(ctx context.Context, businessID uuid.UUID) ([]*entity.Coupon, error)

	// StatsForBusiness computes the business dashboard summary.
	StatsForBusiness(ctx context.Context, businessID uuid.UUID) (*BusinessStats, error)

	// StatsForPlatform computes the admin dashboard summary.
	StatsForPlatform(ctx context.Context) (*PlatformStats, error)
}
