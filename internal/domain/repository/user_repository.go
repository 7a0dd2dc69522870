package repository

import (
	"context"
	"errors"

	"descya/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for user persistence.
var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrEmailExists is returned when the email is already registered.
	ErrEmailExists = errors.New("email already registered")
)

// UserRepository defines the interface for account storage operations.
type UserRepository interface {
	// CreateUser persists a new account. Fails with ErrEmailExists on a
	// duplicate email.
	CreateUser(ctx context.Context, user *entity.User) error

	// FindUserByID retrieves an account by its unique ID.
	FindUserByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindUserByEmail retrieves an account by its login email.
	FindUserByEmail(ctx context.Context, email string) (*entity.User, error)

	// CountUsersByRole returns the number of accounts holding a role.
	CountUsersByRole(ctx context.Context, role entity.Role) (int, error)
}
