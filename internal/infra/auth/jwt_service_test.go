package auth

import (
	"testing"
	"time"

	"storefront/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig() *config.Config {
	cfg := &config.Config{
		Auth: &config.AuthConfig{
			AccessTokenTTL: time.Hour,
			Issuer:         "storefront-test",
		},
	}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"

	return cfg
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	userID := uuid.New()
	roles := []string{"admin"}

	token, err := svc.GenerateAccessToken(userID, roles)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, roles, claims.Roles)
	assert.Equal(t, userID.String(), claims.Subject)
	assert.Equal(t, "storefront-test", claims.Issuer)
}

func TestJWTService_MissingSecret(t *testing.T) {
	svc, err := NewJWTService(&config.Config{})

	assert.Error(t, err)
	assert.Nil(t, svc)
}

func TestJWTService_InvalidToken(t *testing.T) {
	svc, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	claims, err := svc.ValidateToken("clearly-not-a-jwt-token-format")

	assert.Error(t, err)
	assert.Nil(t, claims)
	assert.Contains(t, err.Error(), "invalid token")
}

func TestJWTService_WrongSecret(t *testing.T) {
	issuer, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	otherCfg := newTestConfig()
	otherCfg.SecretKey.Access = "another_secret_that_does_not_match"
	verifier, err := NewJWTService(otherCfg)
	require.NoError(t, err)

	token, err := issuer.GenerateAccessToken(uuid.New(), nil)
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	svc, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	impl := svc.(*jwtService)
	impl.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	token, err := impl.GenerateAccessToken(uuid.New(), nil)
	require.NoError(t, err)

	impl.now = time.Now
	_, err = impl.ValidateToken(token)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestJWTService_RejectsOtherIssuer(t *testing.T) {
	cfg := newTestConfig()
	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	cfg.Auth.Issuer = "someone-else"
	other, err := NewJWTService(cfg)
	require.NoError(t, err)

	token, err := other.GenerateAccessToken(uuid.New(), nil)
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, jwt.ErrTokenInvalidIssuer)
}
