package repository

import (
	"context"
	"errors"

	"descya/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for deal persistence.
var (
	// ErrDealNotFound is returned when a deal is not found.
	ErrDealNotFound = errors.New("deal not found")
	// ErrNoStock is returned by ClaimUnit when every unit has been claimed.
	ErrNoStock = errors.New("deal has no remaining units")
)

// DealRepository defines the interface for deal-related storage operations.
type DealRepository interface {
	// CreateDeal persists a new deal.
	CreateDeal(ctx context.Context, deal *entity.Deal) error

	// FindDealByID retrieves a deal by its unique ID.
	FindDealByID(ctx context.Context, id uuid.UUID) (*entity.Deal, error)

	// ListDeals retrieves all deals, newest first.
	ListDeals(ctx context.Context) ([]*entity.Deal, error)

	// ListDealsByBusiness retrieves all deals owned by a business, newest first.
	ListDealsByBusiness(ctx context.Context, businessID uuid.UUID) ([]*entity.Deal, error)

	// ListDealsByStatus retrieves all deals in a given approval state, newest first.
	ListDealsByStatus(ctx context.Context, status entity.ApprovalStatus) ([]*entity.Deal, error)

	// UpdateDeal replaces the stored record for the deal.
	UpdateDeal(ctx context.Context, deal *entity.Deal) error

	// ClaimUnit atomically increments the deal's claimed quantity if and only
	// if claimed < available, returning the updated deal. Returns ErrNoStock
	// when the deal is sold out; the counter is never pushed past capacity.
	ClaimUnit(ctx context.Context, id uuid.UUID) (*entity.Deal, error)

	// DeleteDeal removes the deal record. Coupons already issued against it
	// are untouched; they carry their own snapshot.
	DeleteDeal(ctx context.Context, id uuid.UUID) error
}
