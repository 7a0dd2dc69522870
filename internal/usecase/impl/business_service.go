package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "descya/internal/delivery/context"
	"descya/internal/domain/entity"
	domainerrors "descya/internal/domain/errors"
	"descya/internal/domain/repository"
	"descya/internal/errors"
	"descya/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// businessService implements the BusinessUsecase interface.
type businessService struct {
	txManager    repository.TransactionManager
	businessRepo repository.BusinessRepository
	logger       *slog.Logger
}

// BusinessServiceParams holds dependencies for BusinessService, injected by Fx.
type BusinessServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	BusinessRepo repository.BusinessRepository
	Logger       *slog.Logger
}

// NewBusinessService is the constructor for businessService.
func NewBusinessService(params BusinessServiceParams) usecase.BusinessUsecase {
	return &businessService{
		txManager:    params.TxManager,
		businessRepo: params.BusinessRepo,
		logger:       params.Logger,
	}
}

func (srv *businessService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create registers a new business in pending approval state.
func (srv *businessService) Create(ctx context.Context, input *usecase.CreateBusinessInput) (*entity.Business, error) {
	plan := input.Plan
	if plan == "" {
		plan = entity.PlanBasic
	}
	if !plan.IsValid() {
		return nil, domainerrors.ErrValidation.WithDetails("unknown plan tier")
	}

	now := time.Now()
	business := &entity.Business{
		ID:             uuid.New(),
		Name:           input.Name,
		Description:    input.Description,
		Logo:           input.LogoURL,
		Category:       input.Category,
		Address:        input.Address,
		Latitude:       input.Latitude,
		Longitude:      input.Longitude,
		Phone:          input.Phone,
		Plan:           plan,
		Active:         true,
		ApprovalStatus: entity.ApprovalPending,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := srv.businessRepo.CreateBusiness(ctx, business); err != nil {
		return nil, errors.Wrap(err, "failed to create business")
	}

	srv.log(ctx).Info("Business created", slog.Any("businessID", business.ID), slog.String("name", business.Name))

	return business, nil
}

// Get returns a business by id.
func (srv *businessService) Get(ctx context.Context, businessID uuid.UUID) (*entity.Business, error) {
	business, err := srv.businessRepo.FindBusinessByID(ctx, businessID)
	if errors.Is(err, repository.ErrBusinessNotFound) {
		return nil, domainerrors.ErrNotFound.WrapMessage("business does not exist")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find business")
	}

	return business, nil
}

// List returns every registered business.
func (srv *businessService) List(ctx context.Context) ([]*entity.Business, error) {
	businesses, err := srv.businessRepo.ListBusinesses(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list businesses")
	}

	return businesses, nil
}

// Update applies a partial edit to a business profile.
func (srv *businessService) Update(ctx context.Context, businessID uuid.UUID, input *usecase.UpdateBusinessInput) (*entity.Business, error) {
	return srv.mutate(ctx, businessID, func(b *entity.Business) error {
		applyBusinessPatch(b, input)
		if !b.Plan.IsValid() {
			return domainerrors.ErrValidation.WithDetails("unknown plan tier")
		}

		return nil
	})
}

// Approve lets the business publish deals.
func (srv *businessService) Approve(ctx context.Context, businessID uuid.UUID) (*entity.Business, error) {
	business, err := srv.mutate(ctx, businessID, func(b *entity.Business) error {
		b.ApprovalStatus = entity.ApprovalApproved

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Business approved", slog.Any("businessID", businessID))

	return business, nil
}

// Reject bars the business from publishing. Its deals stop being visible
// because visibility checks the owning business's approval state.
func (srv *businessService) Reject(ctx context.Context, businessID uuid.UUID) (*entity.Business, error) {
	business, err := srv.mutate(ctx, businessID, func(b *entity.Business) error {
		b.ApprovalStatus = entity.ApprovalRejected

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Business rejected", slog.Any("businessID", businessID))

	return business, nil
}

// Delete removes the business profile.
func (srv *businessService) Delete(ctx context.Context, businessID uuid.UUID) error {
	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		businessRepo := repoFactory.NewBusinessRepository()
		if _, err := businessRepo.FindBusinessByID(ctx, businessID); errors.Is(err, repository.ErrBusinessNotFound) {
			return domainerrors.ErrNotFound.WrapMessage("business does not exist")
		} else if err != nil {
			return errors.Wrap(err, "failed to find business")
		}

		return businessRepo.DeleteBusiness(ctx, businessID)
	})
}

func (srv *businessService) mutate(ctx context.Context, businessID uuid.UUID, fn func(*entity.Business) error) (*entity.Business, error) {
	var business *entity.Business
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		businessRepo := repoFactory.NewBusinessRepository()

		found, err := businessRepo.FindBusinessByID(ctx, businessID)
		if errors.Is(err, repository.ErrBusinessNotFound) {
			return domainerrors.ErrNotFound.WrapMessage("business does not exist")
		}
		if err != nil {
			return errors.Wrap(err, "failed to find business")
		}

		if err := fn(found); err != nil {
			return err
		}
		found.UpdatedAt = time.Now()

		if err := businessRepo.UpdateBusiness(ctx, found); err != nil {
			return errors.Wrap(err, "failed to update business")
		}
		business = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return business, nil
}

func applyBusinessPatch(b *entity.Business, patch *usecase.UpdateBusinessInput) {
	if patch.Name != nil {
		b.Name = *patch.Name
	}
	if patch.Category != nil {
		b.Category = *patch.Category
	}
	if patch.Description != nil {
		b.Description = *patch.Description
	}
	if patch.LogoURL != nil {
		b.Logo = *patch.LogoURL
	}
	if patch.Address != nil {
		b.Address = *patch.Address
	}
	if patch.Latitude != nil {
		b.Latitude = *patch.Latitude
	}
	if patch.Longitude != nil {
		b.Longitude = *patch.Longitude
	}
	if patch.Phone != nil {
		b.Phone = *patch.Phone
	}
	if patch.Plan != nil {
		b.Plan = *patch.Plan
	}
	if patch.Active != nil {
		b.Active = *patch.Active
	}
}
