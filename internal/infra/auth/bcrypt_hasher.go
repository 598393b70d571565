// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"tiffin/config"
	domainerrors "tiffin/internal/domain/errors"
	"tiffin/internal/domain/service"
	"tiffin/internal/errors"

	"golang.org/x/crypto/bcrypt"
)

// bcryptHasher implements service.PasswordHasher with a configurable cost.
type bcryptHasher struct {
	cost int
}

// NewBcryptHasher is the constructor for bcryptHasher.
// Costs outside bcrypt's accepted range fall back to bcrypt.DefaultCost.
func NewBcryptHasher(cfg *config.Config) service.PasswordHasher {
	cost := bcrypt.DefaultCost
	if cfg != nil && cfg.Auth != nil && cfg.Auth.BcryptCost >= bcrypt.MinCost && cfg.Auth.BcryptCost <= bcrypt.MaxCost {
		cost = cfg.Auth.BcryptCost
	}

	return &bcryptHasher{cost: cost}
}

// Hash generates a salted bcrypt hash.
func (h *bcryptHasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", errors.Wrap(domainerrors.ErrPasswordHashFailed.WithDetails(err.Error()), "bcrypt")
	}

	return string(hash), nil
}

// Check compares a plaintext password with a bcrypt hash.
func (h *bcryptHasher) Check(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
