// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"descya/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrBusinessNotFound is returned when a business is not found.
var ErrBusinessNotFound = errors.New("business not found")

// BusinessRepository defines the interface for business-related storage operations.
type BusinessRepository interface {
	// CreateBusiness persists a new business.
	CreateBusiness(ctx context.Context, business *entity.Business) error

	// FindBusinessByID retrieves a business by its unique ID.
	FindBusinessByID(ctx context.Context, id uuid.UUID) (*entity.Business, error)

	// ListBusinesses retrieves all businesses, newest first.
	ListBusinesses(ctx context.Context) ([]*entity.Business, error)

	// UpdateBusiness replaces the stored record for the business.
	UpdateBusiness(ctx context.Context, business *entity.Business) error

	// DeleteBusiness removes the business record.
	DeleteBusiness(ctx context.Context, id uuid.UUID) error
}
