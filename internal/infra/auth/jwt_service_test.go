package auth

import (
	"testing"
	"time"

	"tiffin/config"
	"tiffin/internal/domain/entity"
	domainerrors "tiffin/internal/domain/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig() *config.Config {
	cfg := &config.Config{Auth: &config.AuthConfig{TokenTTL: time.Hour}}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"

	return cfg
}

func TestJWTService_RoundTrip(t *testing.T) {
	svc, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	userID := uuid.New()
	token, expiresAt, err := svc.GenerateToken(userID, entity.RoleVendor.String())
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "vendor", claims.Role)
}

func TestJWTService_RejectsBadTokens(t *testing.T) {
	svc, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	other := newTestConfig()
	other.SecretKey.Access = "a_different_secret_key_used_by_someone_else"
	otherSvc, err := NewJWTService(other)
	require.NoError(t, err)

	foreign, _, err := otherSvc.GenerateToken(uuid.New(), "student")
	require.NoError(t, err)

	expiredSvc := svc.(*jwtService)
	expiredSvc.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	expired, _, err := expiredSvc.GenerateToken(uuid.New(), "student")
	require.NoError(t, err)
	expiredSvc.now = time.Now

	badRole, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  uuid.NewString(),
		"iss":  tokenIssuer,
		"role": "admin",
		"exp":  time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte(newTestConfig().SecretKey.Access))
	require.NoError(t, err)

	tests := map[string]string{
		"garbage":       "clearly-not-a-jwt-token-format",
		"wrong secret":  foreign,
		"expired":       expired,
		"unknown role":  badRole,
	}

	for name, token := range tests {
		t.Run(name, func(t *testing.T) {
			claims, err := svc.ValidateToken(token)
			assert.Nil(t, claims)
			assert.ErrorIs(t, err, domainerrors.ErrTokenInvalid)
		})
	}
}

func TestNewJWTService_RequiresSecretAndTTL(t *testing.T) {
	cfg := newTestConfig()
	cfg.SecretKey.Access = ""
	_, err := NewJWTService(cfg)
	assert.Error(t, err)

	cfg = newTestConfig()
	cfg.Auth.TokenTTL = 0
	_, err = NewJWTService(cfg)
	assert.Error(t, err)
}
