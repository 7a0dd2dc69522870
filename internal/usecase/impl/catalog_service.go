package impl

import (
	"context"
	"log/slog"
	"time"

	"descya/internal/domain/entity"
	domainerrors "descya/internal/domain/errors"
	"descya/internal/domain/repository"
	"descya/internal/errors"
	"descya/internal/geo"
	"descya/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// catalogService implements the CatalogUsecase interface. Queries read the
// committed state directly; they never need the transaction manager.
type catalogService struct {
	businessRepo repository.BusinessRepository
	dealRepo     repository.DealRepository
	couponRepo   repository.CouponRepository
	userRepo     repository.UserRepository
	logger       *slog.Logger
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	BusinessRepo repository.BusinessRepository
	DealRepo     repository.DealRepository
	CouponRepo   repository.CouponRepository
	UserRepo     repository.UserRepository
	Logger       *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		businessRepo: params.BusinessRepo,
		dealRepo:     params.DealRepo,
		couponRepo:   params.CouponRepo,
		userRepo:     params.UserRepo,
		logger:       params.Logger,
	}
}

// ListVisibleDeals returns deals claimable right now, annotated with
// proximity information when the caller supplied an origin.
func (srv *catalogService) ListVisibleDeals(ctx context.Context, origin *usecase.Origin) ([]*usecase.DealView, error) {
	deals, err := srv.dealRepo.ListDeals(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list deals")
	}

	publishable, err := srv.publishableBusinesses(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	views := make([]*usecase.DealView, 0, len(deals))
	for _, deal := range deals {
		if !deal.IsVisible(now) || !publishable[deal.BusinessID] {
			continue
		}

		view := &usecase.DealView{Deal: deal}
		if origin != nil {
			view.Proximity = annotate(origin, deal)
		}
		views = append(views, view)
	}

	return views, nil
}

// publishableBusinesses maps business ids to whether their deals may be
// shown. A rejected or inactive business never has a visible deal.
func (srv *catalogService) publishableBusinesses(ctx context.Context) (map[uuid.UUID]bool, error) {
	businesses, err := srv.businessRepo.ListBusinesses(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list businesses")
	}

	publishable := make(map[uuid.UUID]bool, len(businesses))
	for _, business := range businesses {
		publishable[business.ID] = business.CanPublish()
	}

	return publishable, nil
}

func annotate(origin *usecase.Origin, deal *entity.Deal) *usecase.Proximity {
	distance := geo.DistanceKm(origin.Latitude, origin.Longitude, deal.Latitude, deal.Longitude)

	return &usecase.Proximity{
		DistanceKm: distance,
		Distance:   geo.FormatDistance(distance),
		Travel:     geo.EstimateTravel(distance),
		Zone:       geo.NearestZone(deal.Latitude, deal.Longitude),
	}
}

// ListPendingDeals returns deals awaiting an admin decision.
func (srv *catalogService) ListPendingDeals(ctx context.Context) ([]*entity.Deal, error) {
	deals, err := srv.dealRepo.ListDealsByStatus(ctx, entity.ApprovalPending)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list pending deals")
	}

	return deals, nil
}

// GetDeal returns a single deal by id, regardless of visibility.
func (srv *catalogService) GetDeal(ctx context.Context, dealID uuid.UUID) (*entity.Deal, error) {
	deal, err := srv.dealRepo.FindDealByID(ctx, dealID)
	if errors.Is(err, repository.ErrDealNotFound) {
		return nil, domainerrors.ErrNotFound.WrapMessage("deal does not exist")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find deal")
	}

	return deal, nil
}

// ListDealsForBusiness returns every deal owned by the business.
func (srv *catalogService) ListDealsForBusiness(ctx context.Context, businessID uuid.UUID) ([]*entity.Deal, error) {
	deals, err := srv.dealRepo.ListDealsByBusiness(ctx, businessID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list business deals")
	}

	return deals, nil
}

// CouponsForUser returns the user's coupons, optionally filtered by status.
func (srv *catalogService) CouponsForUser(ctx context.Context, userID uuid.UUID, status *entity.CouponStatus) ([]*entity.Coupon, error) {
	coupons, err := srv.couponRepo.ListCouponsByUser(ctx, userID, status)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list user coupons")
	}

	return coupons, nil
}

// CouponsForBusiness returns coupons issued against the business's deals.
func (srv *catalogService) CouponsForBusiness(ctx context.Context, businessID uuid.UUID) ([]*entity.Coupon, error) {
	coupons, err := srv.couponRepo.ListCouponsByBusiness(ctx, businessID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list business coupons")
	}

	return coupons, nil
}

// StatsForBusiness computes the business dashboard summary. Revenue is the
// sum of discount prices over redeemed coupons; a repeated redemption
// attempt can never count twice because used is a terminal state.
func (srv *catalogService) StatsForBusiness(ctx context.Context, businessID uuid.UUID) (*usecase.BusinessStats, error) {
	deals, err := srv.dealRepo.ListDealsByBusiness(ctx, businessID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list business deals")
	}

	coupons, err := srv.couponRepo.ListCouponsByBusiness(ctx, businessID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list business coupons")
	}

	stats := &usecase.BusinessStats{
		TotalDeals:   len(deals),
		TotalClaimed: len(coupons),
	}

	today := time.Now()
	for _, coupon := range coupons {
		switch coupon.Status {
		case entity.CouponActive:
			stats.ActiveCoupons++
		case entity.CouponUsed:
			stats.Revenue += coupon.Deal.DiscountPrice
			if coupon.UsedAt != nil && sameDay(*coupon.UsedAt, today) {
				stats.ValidatedToday++
			}
		}
	}

	return stats, nil
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()

	return ay == by && am == bm && ad == bd
}

// StatsForPlatform computes the admin dashboard summary.
func (srv *catalogService) StatsForPlatform(ctx context.Context) (*usecase.PlatformStats, error) {
	users, err := srv.userRepo.CountUsersByRole(ctx, entity.RoleUser)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count users")
	}

	businesses, err := srv.businessRepo.ListBusinesses(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list businesses")
	}

	approved, err := srv.dealRepo.ListDealsByStatus(ctx, entity.ApprovalApproved)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list approved deals")
	}

	pending, err := srv.dealRepo.ListDealsByStatus(ctx, entity.ApprovalPending)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list pending deals")
	}

	coupons, err := srv.couponRepo.CountCoupons(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count coupons")
	}

	return &usecase.PlatformStats{
		TotalUsers:      users,
		TotalBusinesses: len(businesses),
		TotalDeals:      len(approved),
		TotalCoupons:    coupons,
		PendingDeals:    len(pending),
	}, nil
}
