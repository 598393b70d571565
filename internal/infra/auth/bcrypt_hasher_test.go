package auth

import (
	"strings"
	"testing"

	"tiffin/config"
	domainerrors "tiffin/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := NewBcryptHasher(&config.Config{Auth: &config.AuthConfig{BcryptCost: bcrypt.MinCost}})

	hash, err := hasher.Hash("secret1")
	require.NoError(t, err)
	assert.NotEqual(t, "secret1", hash)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost, cost)

	assert.True(t, hasher.Check("secret1", hash))
	assert.False(t, hasher.Check("secret2", hash))
}

func TestBcryptHasher_InvalidCostFallsBackToDefault(t *testing.T) {
	hasher := NewBcryptHasher(&config.Config{Auth: &config.AuthConfig{BcryptCost: 99}})

	assert.Equal(t, bcrypt.DefaultCost, hasher.(*bcryptHasher).cost)
	assert.Equal(t, bcrypt.DefaultCost, NewBcryptHasher(nil).(*bcryptHasher).cost)
}

func TestBcryptHasher_PasswordTooLong(t *testing.T) {
	hasher := NewBcryptHasher(&config.Config{Auth: &config.AuthConfig{BcryptCost: bcrypt.MinCost}})

	_, err := hasher.Hash(strings.Repeat("a", 80))
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrPasswordHashFailed)
}
