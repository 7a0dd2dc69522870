// Package usecase defines the command/query surface of the lifecycle engine.
package usecase

import (
	"context"
	"time"

	"descya/internal/domain/entity"

	"github.com/google/uuid"
)

// SubmitDealInput carries a deal submission from a business (or an admin
// authoring a deal directly, which skips the pending state).
type SubmitDealInput struct {
	BusinessID      uuid.UUID `json:"business_id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Details         string    `json:"details"`
	Image           string    `json:"image"`
	OriginalPrice   float64   `json:"original_price"`
	DiscountPercent int       `json:"discount_percent"`
	Category        string    `json:"category"`
	Quantity        int       `json:"quantity"`
	ExpiresAt       time.Time `json:"expires_at"`
	Address         string    `json:"address"`
	Latitude        float64   `json:"latitude"`
	Longitude       float64   `json:"longitude"`
	Terms           []string  `json:"terms"`

	// AdminAuthored skips the approval gate: the deal is created approved
	// and active, so admin-created house deals go live immediately.
	AdminAuthored bool `json:"-"`
}

// UpdateDealInput is a partial edit: nil fields are left untouched.
type UpdateDealInput struct {
	Title           *string    `json:"title,omitempty"`
	Description     *string    `json:"description,omitempty"`
	Details         *string    `json:"details,omitempty"`
	Image           *string    `json:"image,omitempty"`
	OriginalPrice   *float64   `json:"original_price,omitempty"`
	DiscountPercent *int       `json:"discount_percent,omitempty"`
	Category        *string    `json:"category,omitempty"`
	Quantity        *int       `json:"quantity,omitempty"`
	ExpiresAt       *time.Time `json:"expires_at,omitempty"`
	Address         *string    `json:"address,omitempty"`
	Terms           []string   `json:"terms,omitempty"`
}

// ApprovalUsecase is the approval workflow: the pending/approved/rejected
// gate applied to deals before public visibility.
type ApprovalUsecase interface {
	// SubmitDeal validates and stores a new deal in the pending state and
	// notifies the admin channel. Admin-authored deals start approved.
	SubmitDeal(ctx context.Context, input SubmitDealInput) (*entity.Deal, error)

	// ApproveDeal moves a pending deal to approved and activates it,
	// notifying the owning business.
	ApproveDeal(ctx context.Context, dealID uuid.UUID) (*entity.Deal, error)

	// RejectDeal moves a pending deal to rejected with a mandatory reason,
	// notifying the owning business with the reason verbatim.
	RejectDeal(ctx context.Context, dealID uuid.UUID, reason string) (*entity.Deal, error)

	// TogglePause flips the paused flag on an approved deal.
	TogglePause(ctx context.Context, dealID uuid.UUID) (*entity.Deal, error)

	// ToggleFeatured flips the admin-curated featured flag.
	ToggleFeatured(ctx context.Context, dealID uuid.UUID) (*entity.Deal, error)

	// UpdateDeal applies a partial edit. Editing a rejected deal re-enters
	// the pending state for a fresh approval cycle.
	UpdateDeal(ctx context.Context, dealID uuid.UUID, input UpdateDealInput) (*entity.Deal, error)

	// DeleteDeal removes a deal. Issued coupons keep their snapshot and
	// remain redeemable.
	DeleteDeal(ctx context.Context, dealID uuid.UUID) error
}
