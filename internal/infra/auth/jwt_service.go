package auth

import (
	"time"

	"tiffin/config"
	"tiffin/internal/domain/entity"
	domainerrors "tiffin/internal/domain/errors"
	"tiffin/internal/domain/service"
	"tiffin/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const tokenIssuer = "tiffin"

// jwtService signs HS256 access tokens carrying the user id and role.
type jwtService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt access secret must be provided")
	}

	ttl := time.Duration(0)
	if cfg.Auth != nil {
		ttl = cfg.Auth.TokenTTL
	}

	if ttl <= 0 {
		return nil, errors.New("token ttl must be positive")
	}

	return &jwtService{
		secret: []byte(cfg.SecretKey.Access),
		ttl:    ttl,
		now:    time.Now,
	}, nil
}

// GenerateToken creates an access token for the principal.
func (s *jwtService) GenerateToken(userID uuid.UUID, role string) (string, time.Time, error) {
	issuedAt := s.now()
	expiresAt := issuedAt.Add(s.ttl)

	claims := &service.Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			Issuer:    tokenIssuer,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, errors.Wrap(err, "failed to sign token")
	}

	return signed, expiresAt, nil
}

// ValidateToken parses the token and checks signature, expiry, subject and role.
func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	claims := &service.Claims{}

	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, domainerrors.ErrTokenInvalid.WithDetails(err.Error())
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, domainerrors.ErrTokenInvalid.WithDetails("malformed subject")
	}

	if !entity.Role(claims.Role).IsValid() {
		return nil, domainerrors.ErrTokenInvalid.WithDetails("unknown role")
	}

	claims.UserID = userID

	return claims, nil
}
