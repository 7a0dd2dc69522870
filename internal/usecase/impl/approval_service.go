package impl

import (
	"context"
	"log/slog"
	"time"

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

// approvalService implements the ApprovalUsecase interface.
type approvalService struct {
	txManager repository.TransactionManager
	emitter   *lifecycleEmitter
	logger    *slog.Logger
}

// ApprovalServiceParams holds dependencies for ApprovalService, injected by Fx.
type ApprovalServiceParams struct {
	fx.In

	TxManager        repository.TransactionManager
	NotificationRepo repository.NotificationRepository
	Publisher        service.EventPublisher `optional:"true"`
	Logger           *slog.Logger
}

// NewApprovalService is the constructor for approvalService.
func NewApprovalService(params ApprovalServiceParams) usecase.ApprovalUsecase {
	return &approvalService{
		txManager: params.TxManager,
		emitter:   newLifecycleEmitter(params.NotificationRepo, params.Publisher, params.Logger),
		logger:    params.Logger,
	}
}

func (srv *approvalService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SubmitDeal validates a submission, stores it pending and pings the admin inbox.
func (srv *approvalService) SubmitDeal(ctx context.Context, input usecase.SubmitDealInput) (*entity.Deal, error) {
	if err := validateSubmission(&input, time.Now()); err != nil {
		srv.log(ctx).Warn("Deal submission failed validation", slog.Any("businessID", input.BusinessID), slog.Any("error", err))

		return nil, err
	}

	var deal *entity.Deal
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		business, err := repoFactory.NewBusinessRepository().FindBusinessByID(ctx, input.BusinessID)
		if errors.Is(err, repository.ErrBusinessNotFound) {
			return domainerrors.ErrNotFound.WrapMessage("business does not exist")
		}
		if err != nil {
			return errors.Wrap(err, "failed to find business")
		}

		now := time.Now()
		deal = &entity.Deal{
			ID:                uuid.New(),
			BusinessID:        business.ID,
			BusinessName:      business.Name,
			BusinessLogo:      business.Logo,
			Title:             input.Title,
			Description:       input.Description,
			Details:           input.Details,
			Image:             input.Image,
			OriginalPrice:     input.OriginalPrice,
			DiscountPrice:     entity.DiscountPrice(input.OriginalPrice, input.DiscountPercent),
			DiscountPercent:   input.DiscountPercent,
			Category:          input.Category,
			AvailableQuantity: input.Quantity,
			ClaimedQuantity:   0,
			ExpiresAt:         input.ExpiresAt,
			CreatedAt:         now,
			UpdatedAt:         now,
			ApprovalStatus:    entity.ApprovalPending,
			Address:           input.Address,
			Latitude:          input.Latitude,
			Longitude:         input.Longitude,
			Terms:             input.Terms,
		}
		if input.AdminAuthored {
			deal.ApprovalStatus = entity.ApprovalApproved
			deal.Active = true
		}

		return repoFactory.NewDealRepository().CreateDeal(ctx, deal)
	})
	if err != nil {
		return nil, err
	}

	if deal.ApprovalStatus == entity.ApprovalPending {
		srv.emitter.DealSubmitted(ctx, deal)
	}

	srv.log(ctx).Info("Deal submitted",
		slog.Any("dealID", deal.ID),
		slog.Any("businessID", deal.BusinessID),
		slog.String("status", string(deal.ApprovalStatus)))

	return deal, nil
}

// ApproveDeal moves a pending deal to approved and activates it.
func (srv *approvalService) ApproveDeal(ctx context.Context, dealID uuid.UUID) (*entity.Deal, error) {
	deal, err := srv.transition(ctx, dealID, func(d *entity.Deal) error {
		if d.ApprovalStatus != entity.ApprovalPending {
			return domainerrors.ErrInvalidTransition.WithDetails("deal is " + string(d.ApprovalStatus))
		}
		d.ApprovalStatus = entity.ApprovalApproved
		d.Active = true
		d.RejectionReason = ""

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.emitter.DealApproved(ctx, deal)
	srv.log(ctx).Info("Deal approved", slog.Any("dealID", deal.ID))

	return deal, nil
}

// RejectDeal moves a pending deal to rejected, recording the reason.
func (srv *approvalService) RejectDeal(ctx context.Context, dealID uuid.UUID, reason string) (*entity.Deal, error) {
	if reason == "" {
		return nil, domainerrors.ErrValidation.WithDetails("rejection reason must not be empty")
	}

	deal, err := srv.transition(ctx, dealID, func(d *entity.Deal) error {
		if d.ApprovalStatus != entity.ApprovalPending {
			return domainerrors.ErrInvalidTransition.WithDetails("deal is " + string(d.ApprovalStatus))
		}
		d.ApprovalStatus = entity.ApprovalRejected
		d.Active = false
		d.RejectionReason = reason

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.emitter.DealRejected(ctx, deal, reason)
	srv.log(ctx).Info("Deal rejected", slog.Any("dealID", deal.ID), slog.String("reason", reason))

	return deal, nil
}

// TogglePause flips the paused flag on an approved deal.
func (srv *approvalService) TogglePause(ctx context.Context, dealID uuid.UUID) (*entity.Deal, error) {
	return srv.transition(ctx, dealID, func(d *entity.Deal) error {
		if d.ApprovalStatus != entity.ApprovalApproved {
			return domainerrors.ErrInvalidTransition.WithDetails("only approved deals can be paused")
		}
		d.Paused = !d.Paused

		return nil
	})
}

// ToggleFeatured flips the admin-curated featured flag.
func (srv *approvalService) ToggleFeatured(ctx context.Context, dealID uuid.UUID) (*entity.Deal, error) {
	return srv.transition(ctx, dealID, func(d *entity.Deal) error {
		d.Featured = !d.Featured

		return nil
	})
}

// UpdateDeal applies a partial edit. Editing a rejected deal re-enters the
// pending state, resetting the submission cycle.
func (srv *approvalService) UpdateDeal(ctx context.Context, dealID uuid.UUID, input usecase.UpdateDealInput) (*entity.Deal, error) {
	deal, err := srv.transition(ctx, dealID, func(d *entity.Deal) error {
		applyDealPatch(d, &input)

		if err := validateDeal(d); err != nil {
			return err
		}

		if d.ApprovalStatus == entity.ApprovalRejected {
			d.ApprovalStatus = entity.ApprovalPending
			d.RejectionReason = ""
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	if deal.ApprovalStatus == entity.ApprovalPending {
		srv.emitter.DealSubmitted(ctx, deal)
	}

	return deal, nil
}

// DeleteDeal removes a deal. Coupons issued against it keep their snapshot.
func (srv *approvalService) DeleteDeal(ctx context.Context, dealID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		dealRepo := repoFactory.NewDealRepository()
		if _, err := dealRepo.FindDealByID(ctx, dealID); errors.Is(err, repository.ErrDealNotFound) {
			return domainerrors.ErrNotFound.WrapMessage("deal does not exist")
		} else if err != nil {
			return errors.Wrap(err, "failed to find deal")
		}

		return dealRepo.DeleteDeal(ctx, dealID)
	})
	if err != nil {
		return err
	}

	srv.log(ctx).Info("Deal deleted", slog.Any("dealID", dealID))

	return nil
}

// transition loads the deal, applies mutate inside a transaction and stores
// the result. The load-check-store sequence runs as one atomic unit.
func (srv *approvalService) transition(ctx context.Context, dealID uuid.UUID, mutate func(*entity.Deal) error) (*entity.Deal, error) {
	var deal *entity.Deal
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		dealRepo := repoFactory.NewDealRepository()

		found, err := dealRepo.FindDealByID(ctx, dealID)
		if errors.Is(err, repository.ErrDealNotFound) {
			return domainerrors.ErrNotFound.WrapMessage("deal does not exist")
		}
		if err != nil {
			return errors.Wrap(err, "failed to find deal")
		}

		if err := mutate(found); err != nil {
			return err
		}
		found.UpdatedAt = time.Now()

		if err := dealRepo.UpdateDeal(ctx, found); err != nil {
			return errors.Wrap(err, "failed to update deal")
		}
		deal = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return deal, nil
}

func validateSubmission(input *usecase.SubmitDealInput, now time.Time) error {
	switch {
	case input.Title == "":
		return domainerrors.ErrValidation.WithDetails("title must not be empty")
	case input.OriginalPrice <= 0:
		return domainerrors.ErrValidation.WithDetails("original price must be positive")
	case input.DiscountPercent <= 0 || input.DiscountPercent >= 100:
		return domainerrors.ErrValidation.WithDetails("discount percent must be between 0 and 100")
	case input.Quantity <= 0:
		return domainerrors.ErrValidation.WithDetails("quantity must be positive")
	case !input.ExpiresAt.After(now):
		return domainerrors.ErrValidation.WithDetails("expiry must be in the future")
	}

	return nil
}

// validateDeal re-checks the submission rules after a patch.
func validateDeal(d *entity.Deal) error {
	switch {
	case d.Title == "":
		return domainerrors.ErrValidation.WithDetails("title must not be empty")
	case d.OriginalPrice <= 0:
		return domainerrors.ErrValidation.WithDetails("original price must be positive")
	case d.DiscountPercent <= 0 || d.DiscountPercent >= 100:
		return domainerrors.ErrValidation.WithDetails("discount percent must be between 0 and 100")
	case d.AvailableQuantity < d.ClaimedQuantity:
		return domainerrors.ErrValidation.WithDetails("quantity cannot drop below claimed count")
	case d.AvailableQuantity <= 0:
		return domainerrors.ErrValidation.WithDetails("quantity must be positive")
	}

	return nil
}

func applyDealPatch(d *entity.Deal, patch *usecase.UpdateDealInput) {
	if patch.Title != nil {
		d.Title = *patch.Title
	}
	if patch.Description != nil {
		d.Description = *patch.Description
	}
	if patch.Details != nil {
		d.Details = *patch.Details
	}
	if patch.Image != nil {
		d.Image = *patch.Image
	}
	if patch.OriginalPrice != nil {
		d.OriginalPrice = *patch.OriginalPrice
	}
	if patch.DiscountPercent != nil {
		d.DiscountPercent = *patch.DiscountPercent
	}
	if patch.OriginalPrice != nil || patch.DiscountPercent != nil {
		d.DiscountPrice = entity.DiscountPrice(d.OriginalPrice, d.DiscountPercent)
	}
	if patch.Category != nil {
		d.Category = *patch.Category
	}
	if patch.Quantity != nil {
		d.AvailableQuantity = *patch.Quantity
	}
	if patch.ExpiresAt != nil {
		d.ExpiresAt = *patch.ExpiresAt
	}
	if patch.Address != nil {
		d.Address = *patch.Address
	}
	if patch.Terms != nil {
		d.Terms = patch.Terms
	}
}
