package impl

import (
	"context"
	"testing"

	"descya/config"
	"descya/internal/domain/entity"
	"descya/internal/domain/service"
	"descya/internal/infra/auth"
	"descya/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestAuthService(t *testing.T) (usecase.AuthUsecase, service.TokenService) {
	t.Helper()

	env := newTestEnv(t)

	cfg := &config.Config{}
	cfg.SecretKey.Access = "test-secret-key"
	cfg.Auth = &config.AuthConfig{BcryptCost: 4}

	tokenService, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	return NewAuthService(AuthServiceParams{
		UserRepo:     env.userRepo,
		Hasher:       auth.NewBcryptHasher(cfg),
		TokenService: tokenService,
		Logger:       env.logger,
	}), tokenService
}

func registerInput() *usecase.RegisterInput {
	return &usecase.RegisterInput{
		Name:     "Ana García",
		Email:    "ana@example.com",
		Password: "contraseña-segura",
		Role:     entity.RoleUser,
	}
}

func TestAuthService_Register_IssuesToken(t *testing.T) {
	service, tokenService := createTestAuthService(t)

	result, err := service.Register(context.Background(), registerInput())

	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", result.User.Email)
	assert.NotEmpty(t, result.User.PasswordHash)
	assert.NotEqual(t, "contraseña-segura", result.User.PasswordHash)

	claims, err := tokenService.ValidateToken(result.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, result.User.ID, claims.UserID)
	assert.Contains(t, claims.Roles, "user")
}

func TestAuthService_Register_NormalizesEmail(t *testing.T) {
	service, _ := createTestAuthService(t)

	input := registerInput()
	input.Email = "  Ana@Example.COM "

	result, err := service.Register(context.Background(), input)

	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", result.User.Email)

	// Login matches regardless of the casing used at registration.
	_, err = service.Login(context.Background(), &usecase.LoginInput{
		Email:    "ANA@example.com",
		Password: "contraseña-segura",
	})
	require.NoError(t, err)
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	service, _ := createTestAuthService(t)

	_, err := service.Register(context.Background(), registerInput())
	require.NoError(t, err)

	_, err = service.Register(context.Background(), registerInput())

	assertErrorCode(t, err, "EMAIL_TAKEN")
}

func TestAuthService_Register_BusinessRoleNeedsBusiness(t *testing.T) {
	service, _ := createTestAuthService(t)

	input := registerInput()
	input.Role = entity.RoleBusiness

	_, err := service.Register(context.Background(), input)
	assertErrorCode(t, err, "VALIDATION_ERROR")

	businessID := uuid.New()
	input.BusinessID = &businessID

	result, err := service.Register(context.Background(), input)
	require.NoError(t, err)
	require.NotNil(t, result.User.BusinessID)
	assert.Equal(t, businessID, *result.User.BusinessID)
}

func TestAuthService_Register_UnknownRole(t *testing.T) {
	service, _ := createTestAuthService(t)

	input := registerInput()
	input.Role = entity.Role("superuser")

	_, err := service.Register(context.Background(), input)

	assertErrorCode(t, err, "VALIDATION_ERROR")
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	service, _ := createTestAuthService(t)

	_, err := service.Register(context.Background(), registerInput())
	require.NoError(t, err)

	_, err = service.Login(context.Background(), &usecase.LoginInput{
		Email:    "ana@example.com",
		Password: "otra-contraseña",
	})

	assertErrorCode(t, err, "INVALID_CREDENTIALS")
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	service, _ := createTestAuthService(t)

	_, err := service.Login(context.Background(), &usecase.LoginInput{
		Email:    "nadie@example.com",
		Password: "contraseña-segura",
	})

	assertErrorCode(t, err, "INVALID_CREDENTIALS")
}
