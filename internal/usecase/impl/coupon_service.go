package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"descya/config"
	deliverycontext "descya/internal/delivery/context"
	"descya/internal/domain/entity"
	domainerrors "descya/internal/domain/errors"
	"descya/internal/domain/repository"
	"descya/internal/domain/service"
	"descya/internal/errors"
	"descya/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const (
	// defaultCouponTag prefixes every redemption code for quick format recognition.
	defaultCouponTag = "DESCYA"

	// maxCodeAttempts bounds the retry loop on a redemption code collision.
	maxCodeAttempts = 5
)

// couponService implements the CouponUsecase interface. Claim and redeem
// each run their check-then-mutate sequence inside one transaction.
type couponService struct {
	txManager repository.TransactionManager
	qrService service.QRCodeService
	emitter   *lifecycleEmitter
	couponTag string
	logger    *slog.Logger
}

// CouponServiceParams holds dependencies for CouponService, injected by Fx.
type CouponServiceParams struct {
	fx.In

	TxManager        repository.TransactionManager
	QRService        service.QRCodeService
	NotificationRepo repository.NotificationRepository
	Publisher        service.EventPublisher `optional:"true"`
	Config           *config.Config
	Logger           *slog.Logger
}

// NewCouponService is the constructor for couponService.
func NewCouponService(params CouponServiceParams) usecase.CouponUsecase {
	couponTag := defaultCouponTag
	if params.Config != nil && params.Config.Marketplace != nil && params.Config.Marketplace.CouponTag != "" {
		couponTag = params.Config.Marketplace.CouponTag
	}

	return &couponService{
		txManager: params.TxManager,
		qrService: params.QRService,
		emitter:   newLifecycleEmitter(params.NotificationRepo, params.Publisher, params.Logger),
		couponTag: couponTag,
		logger:    params.Logger,
	}
}

func (srv *couponService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Claim issues a coupon for the deal to the user. The checks run in order
// and short-circuit on the first failure; the increment-and-insert step is
// atomic, so for the last remaining unit exactly one concurrent caller wins.
func (srv *couponService) Claim(ctx context.Context, dealID, userID uuid.UUID) (*entity.Coupon, error) {
	var coupon *entity.Coupon
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		dealRepo := repoFactory.NewDealRepository()
		couponRepo := repoFactory.NewCouponRepository()

		deal, err := dealRepo.FindDealByID(ctx, dealID)
		if errors.Is(err, repository.ErrDealNotFound) {
			return domainerrors.ErrNotFound.WrapMessage("deal does not exist")
		}
		if err != nil {
			return errors.Wrap(err, "failed to find deal")
		}

		now := time.Now()
		if !deal.IsVisible(now) {
			return domainerrors.ErrNotEligible
		}

		business, err := repoFactory.NewBusinessRepository().FindBusinessByID(ctx, deal.BusinessID)
		if err != nil || !business.CanPublish() {
			return domainerrors.ErrNotEligible.WithDetails("owning business is not approved")
		}

		if deal.Remaining() <= 0 {
			return domainerrors.ErrSoldOut
		}

		if _, err := couponRepo.FindActiveCoupon(ctx, userID, dealID); err == nil {
			return domainerrors.ErrAlreadyClaimed
		} else if !errors.Is(err, repository.ErrCouponNotFound) {
			return errors.Wrap(err, "failed to check for active coupon")
		}

		claimed, err := dealRepo.ClaimUnit(ctx, dealID)
		if errors.Is(err, repository.ErrNoStock) {
			return domainerrors.ErrSoldOut
		}
		if err != nil {
			return errors.Wrap(err, "failed to claim deal unit")
		}

		coupon, err = srv.insertCoupon(ctx, couponRepo, claimed, userID, now)

		return err
	})
	if err != nil {
		return nil, err
	}

	srv.emitter.CouponClaimed(ctx, coupon)
	srv.log(ctx).Info("Coupon claimed",
		slog.Any("couponID", coupon.ID),
		slog.Any("dealID", dealID),
		slog.Any("userID", userID))

	return coupon, nil
}

// insertCoupon mints a redemption code and stores the coupon, retrying with
// a fresh timestamp on the rare code collision. A duplicate-active-coupon
// failure means the user raced themselves and surfaces as AlreadyClaimed.
func (srv *couponService) insertCoupon(
	ctx context.Context,
	couponRepo repository.CouponRepository,
	deal *entity.Deal,
	userID uuid.UUID,
	claimedAt time.Time,
) (*entity.Coupon, error) {
	for range maxCodeAttempts {
		coupon := &entity.Coupon{
			ID:             uuid.New(),
			DealID:         deal.ID,
			UserID:         userID,
			RedemptionCode: srv.mintCode(deal.ID, userID, time.Now()),
			Status:         entity.CouponActive,
			ClaimedAt:      claimedAt,
			Deal:           *deal,
		}

		err := couponRepo.CreateCoupon(ctx, coupon)
		if errors.Is(err, repository.ErrDuplicateRedemptionCode) {
			continue
		}
		if errors.Is(err, repository.ErrDuplicateActiveCoupon) {
			return nil, domainerrors.ErrAlreadyClaimed
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to create coupon")
		}

		return coupon, nil
	}

	return nil, domainerrors.ErrInternal.WithDetails("could not mint a unique redemption code")
}

// mintCode builds "TAG-DEAL-USER-TIMESTAMP": the marketplace tag, the first
// segments of the deal and user ids and the claim instant in milliseconds,
// uppercase and dash-delimited so it stays QR-encodable and human-typeable.
func (srv *couponService) mintCode(dealID, userID uuid.UUID, at time.Time) string {
	return strings.ToUpper(fmt.Sprintf("%s-%.8s-%.8s-%d",
		srv.couponTag, dealID.String(), userID.String(), at.UnixMilli()))
}

// Redeem resolves a redemption code and marks the coupon used. The code
// comes straight from a scanned QR payload or manual entry, so it is
// normalized and format-checked before the lookup.
func (srv *couponService) Redeem(ctx context.Context, code string, businessID *uuid.UUID) (*entity.Coupon, error) {
	normalized, err := srv.qrService.ParseCouponQR(code)
	if err != nil {
		return nil, domainerrors.ErrNotFound.WrapMessage("no coupon matches this code")
	}

	return srv.redeem(ctx, func(ctx context.Context, couponRepo repository.CouponRepository) (*entity.Coupon, error) {
		coupon, err := couponRepo.FindCouponByCode(ctx, normalized)
		if errors.Is(err, repository.ErrCouponNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("no coupon matches this code")
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to find coupon by code")
		}

		return coupon, nil
	}, businessID)
}

// RedeemByID is the administrative override. It skips business scoping and
// must only be reachable from trusted internal flows.
func (srv *couponService) RedeemByID(ctx context.Context, couponID uuid.UUID) (*entity.Coupon, error) {
	return srv.redeem(ctx, func(ctx context.Context, couponRepo repository.CouponRepository) (*entity.Coupon, error) {
		coupon, err := couponRepo.FindCouponByID(ctx, couponID)
		if errors.Is(err, repository.ErrCouponNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("coupon does not exist")
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to find coupon")
		}

		return coupon, nil
	}, nil)
}

// redeem runs the redemption state machine on the resolved coupon. Terminal
// states are checked first, so a second attempt on a used code fails with
// AlreadyUsed and never touches the recorded usedAt.
func (srv *couponService) redeem(
	ctx context.Context,
	resolve func(context.Context, repository.CouponRepository) (*entity.Coupon, error),
	businessID *uuid.UUID,
) (*entity.Coupon, error) {
	var coupon *entity.Coupon
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		couponRepo := repoFactory.NewCouponRepository()

		found, err := resolve(ctx, couponRepo)
		if err != nil {
			return err
		}

		switch found.Status {
		case entity.CouponUsed:
			details := ""
			if found.UsedAt != nil {
				details = found.UsedAt.Format(time.RFC3339)
			}

			return domainerrors.ErrAlreadyUsed.WithDetails(details)
		case entity.CouponExpired:
			return domainerrors.ErrExpired
		}

		// Deal expiry is evaluated at read time; an overdue active coupon
		// is swept to expired here rather than by a background job.
		now := time.Now()
		if now.After(found.Deal.ExpiresAt) {
			if err := couponRepo.UpdateCouponStatus(ctx, found.ID, entity.CouponExpired, nil); err != nil {
				return errors.Wrap(err, "failed to expire coupon")
			}

			return domainerrors.ErrExpired
		}

		if businessID != nil && found.Deal.BusinessID != *businessID {
			return domainerrors.ErrWrongBusiness
		}

		if err := couponRepo.UpdateCouponStatus(ctx, found.ID, entity.CouponUsed, &now); err != nil {
			return errors.Wrap(err, "failed to mark coupon used")
		}
		found.Status = entity.CouponUsed
		found.UsedAt = &now
		coupon = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.emitter.CouponRedeemed(ctx, coupon)
	srv.log(ctx).Info("Coupon redeemed",
		slog.Any("couponID", coupon.ID),
		slog.Any("dealID", coupon.DealID))

	return coupon, nil
}

// CouponQR renders the coupon's redemption code as a QR PNG.
func (srv *couponService) CouponQR(ctx context.Context, couponID uuid.UUID) ([]byte, error) {
	var code string
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		coupon, err := repoFactory.NewCouponRepository().FindCouponByID(ctx, couponID)
		if errors.Is(err, repository.ErrCouponNotFound) {
			return domainerrors.ErrNotFound.WrapMessage("coupon does not exist")
		}
		if err != nil {
			return errors.Wrap(err, "failed to find coupon")
		}
		code = coupon.RedemptionCode

		return nil
	})
	if err != nil {
		return nil, err
	}

	png, err := srv.qrService.GenerateCouponQR(code)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render coupon QR")
	}

	return png, nil
}
