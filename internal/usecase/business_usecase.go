package usecase

import (
	"context"

	"descya/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateBusinessInput carries the fields needed to register a business profile.
type CreateBusinessInput struct {
	Name        string          `json:"name" validate:"required"`
	Category    string          `json:"category" validate:"required"`
	Description string          `json:"description"`
	LogoURL     string          `json:"logo_url"`
	Address     string          `json:"address"`
	Latitude    float64         `json:"latitude"`
	Longitude   float64         `json:"longitude"`
	Phone       string          `json:"phone"`
	Plan        entity.PlanTier `json:"plan"`
}

// UpdateBusinessInput is a partial update. Nil fields are left untouched.
type UpdateBusinessInput struct {
	Name        *string          `json:"name"`
	Category    *string          `json:"category"`
	Description *string          `json:"description"`
	LogoURL     *string          `json:"logo_url"`
	Address     *string          `json:"address"`
	Latitude    *float64         `json:"latitude"`
	Longitude   *float64         `json:"longitude"`
	Phone       *string          `json:"phone"`
	Plan        *entity.PlanTier `json:"plan"`
	Active      *bool            `json:"active"`
}

// BusinessUsecase manages business profiles and their approval.
type BusinessUsecase interface {
	// Create registers a new business in pending approval state.
	Create(ctx context.Context, input *CreateBusinessInput) (*entity.Business, error)

	// Get returns a business by id.
	Get(ctx context.Context, businessID uuid.UUID) (*entity.Business, error)

	// List returns every registered business.
	List(ctx context.Context) ([]*entity.Business, error)

	// Update applies a partial edit to a business profile.
	Update(ctx context.Context, businessID uuid.UUID, input *UpdateBusinessInput) (*entity.Business, error)

	// Approve lets the business publish deals.
	Approve(ctx context.Context, businessID uuid.UUID) (*entity.Business, error)

	// Reject marks the business as rejected. Its deals stop being visible.
	Reject(ctx context.Context, businessID uuid.UUID) (*entity.Business, error)

	// Delete removes the business profile.
	Delete(ctx context.Context, businessID uuid.UUID) error
}
