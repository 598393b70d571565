package middleware

import (
	"strings"

	"tiffin/internal/delivery/api/response"
	deliverycontext "tiffin/internal/delivery/context"
	"tiffin/internal/domain/entity"
	"tiffin/internal/domain/service"

	"github.com/labstack/echo/v4"
)

const bearerPrefix = "Bearer "

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer token and stores the caller's principal.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, "TOKEN_MISSING", "Authorization header is missing")
		}

		tokenString, found := strings.CutPrefix(authHeader, bearerPrefix)
		if !found || tokenString == "" {
			return response.Unauthorized(c, "TOKEN_INVALID", "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return response.Unauthorized(c, "TOKEN_INVALID", "Invalid or expired token")
		}

		principal := entity.Principal{ID: claims.UserID, Role: entity.Role(claims.Role)}
		deliverycontext.SetPrincipal(c, principal)

		req := c.Request()
		c.SetRequest(req.WithContext(deliverycontext.WithPrincipal(req.Context(), principal)))

		return next(c)
	}
}

// RequireRole rejects callers of any other role. It must run after Authenticate.
func (m *AuthMiddleware) RequireRole(role entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			principal, ok := deliverycontext.GetPrincipal(c)
			if !ok {
				return response.Unauthorized(c, "TOKEN_MISSING", "Authentication required")
			}

			if principal.Role != role {
				return response.Forbidden(c, "FORBIDDEN", "Access denied: requires "+role.String()+" role")
			}

			return next(c)
		}
	}
}
