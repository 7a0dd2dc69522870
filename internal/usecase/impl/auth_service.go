package impl

import (
	"context"
	"log/slog"
	"strings"
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

// authService implements the AuthUsecase interface.
type authService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a new account and returns it with a signed access token.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthResult, error) {
	if !input.Role.IsValid() {
		return nil, domainerrors.ErrValidation.WithDetails("unknown role")
	}
	if input.Role == entity.RoleBusiness && input.BusinessID == nil {
		return nil, domainerrors.ErrValidation.WithDetails("business accounts must reference a business")
	}

	hashed, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	now := time.Now()
	user := &entity.User{
		ID:           uuid.New(),
		Name:         input.Name,
		Email:        strings.ToLower(strings.TrimSpace(input.Email)),
		PasswordHash: hashed,
		Role:         input.Role,
		BusinessID:   input.BusinessID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := srv.userRepo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, repository.ErrEmailExists) {
			return nil, domainerrors.ErrEmailTaken
		}

		return nil, errors.Wrap(err, "failed to create user")
	}

	token, err := srv.issueToken(user)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("User registered", slog.Any("userID", user.ID), slog.String("role", string(user.Role)))

	return &usecase.AuthResult{User: user, AccessToken: token}, nil
}

// Login verifies the credentials and returns the account with a fresh token.
// Unknown email and wrong password are indistinguishable to the caller.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthResult, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	user, err := srv.userRepo.FindUserByEmail(ctx, email)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrInvalidCredentials
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Failed login attempt", slog.String("email", email))

		return nil, domainerrors.ErrInvalidCredentials
	}

	token, err := srv.issueToken(user)
	if err != nil {
		return nil, err
	}

	return &usecase.AuthResult{User: user, AccessToken: token}, nil
}

func (srv *authService) issueToken(user *entity.User) (string, error) {
	token, err := srv.tokenService.GenerateAccessToken(user.ID, []string{string(user.Role)}, user.BusinessID)
	if err != nil {
		return "", errors.Wrap(err, "failed to generate access token")
	}

	return token, nil
}
