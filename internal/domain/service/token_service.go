package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims are the access token claims. The subject carries the user id.
type Claims struct {
	UserID uuid.UUID `json:"-"`
	Role   string    `json:"role"`
	jwt.RegisteredClaims
}

// TokenService issues and validates access tokens.
type TokenService interface {
	// GenerateToken creates an access token for the principal and returns its expiry.
	GenerateToken(userID uuid.UUID, role string) (token string, expiresAt time.Time, err error)

	// ValidateToken checks the validity of a token string.
	ValidateToken(tokenString string) (*Claims, error)
}
