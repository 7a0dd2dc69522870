package usecase

import (
	"context"

	"descya/internal/domain/entity"

	"github.com/google/uuid"
)

// RegisterInput carries a new account registration.
type RegisterInput struct {
	Name       string      `json:"name" validate:"required"`
	Email      string      `json:"email" validate:"required,email"`
	Password   string      `json:"password" validate:"required,min=8"`
	Role       entity.Role `json:"role" validate:"required"`
	BusinessID *uuid.UUID  `json:"business_id"`
}

// LoginInput carries account credentials.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthResult is a successful registration or login.
type AuthResult struct {
	User        *entity.User `json:"user"`
	AccessToken string       `json:"access_token"`
}

// AuthUsecase handles account registration and login.
type AuthUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*AuthResult, error)
	Login(ctx context.Context, input *LoginInput) (*AuthResult, error)
}
