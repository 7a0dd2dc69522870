package auth

import (
	"testing"
	"time"

	"descya/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig(secret string) *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = secret
	cfg.Auth = &config.AuthConfig{AccessTokenTTL: time.Hour}

	return cfg
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	_, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
}

func TestJWTService_RoundTrip(t *testing.T) {
	service, err := NewJWTService(newTestConfig("test-secret"))
	require.NoError(t, err)

	userID := uuid.New()
	token, err := service.GenerateAccessToken(userID, []string{"user"}, nil)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, []string{"user"}, claims.Roles)
	assert.Nil(t, claims.BusinessID)
}

func TestJWTService_CarriesBusinessID(t *testing.T) {
	service, err := NewJWTService(newTestConfig("test-secret"))
	require.NoError(t, err)

	businessID := uuid.New()
	token, err := service.GenerateAccessToken(uuid.New(), []string{"business"}, &businessID)
	require.NoError(t, err)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	require.NotNil(t, claims.BusinessID)
	assert.Equal(t, businessID, *claims.BusinessID)
}

func TestJWTService_RejectsWrongSecret(t *testing.T) {
	issuer, err := NewJWTService(newTestConfig("secret-a"))
	require.NoError(t, err)
	verifier, err := NewJWTService(newTestConfig("secret-b"))
	require.NoError(t, err)

	token, err := issuer.GenerateAccessToken(uuid.New(), []string{"user"}, nil)
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_RejectsExpiredToken(t *testing.T) {
	cfg := newTestConfig("test-secret")
	cfg.Auth.AccessTokenTTL = -time.Minute

	service, err := NewJWTService(cfg)
	require.NoError(t, err)

	token, err := service.GenerateAccessToken(uuid.New(), []string{"user"}, nil)
	require.NoError(t, err)

	_, err = service.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_RejectsGarbage(t *testing.T) {
	service, err := NewJWTService(newTestConfig("test-secret"))
	require.NoError(t, err)

	_, err = service.ValidateToken("not.a.token")
	assert.Error(t, err)
}
