package middleware

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "tiffin/internal/delivery/context"
	"tiffin/internal/domain/entity"
	domainerrors "tiffin/internal/domain/errors"
	"tiffin/internal/domain/service"
	mockSvc "tiffin/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serve(e *echo.Echo, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenSvc)
	userID := uuid.New()

	var fromEcho, fromCtx entity.Principal
	e := echo.New()
	e.GET("/me", func(c echo.Context) error {
		fromEcho, _ = deliverycontext.GetPrincipal(c)
		fromCtx, _ = deliverycontext.PrincipalFromContext(c.Request().Context())

		return c.NoContent(http.StatusNoContent)
	}, m.Authenticate)

	tokenSvc.EXPECT().ValidateToken("good").Return(&service.Claims{UserID: userID, Role: "vendor"}, nil)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer good")
	rec := serve(e, req)

	require.Equal(t, http.StatusNoContent, rec.Code)
	want := entity.Principal{ID: userID, Role: entity.RoleVendor}
	assert.Equal(t, want, fromEcho)
	assert.Equal(t, want, fromCtx)
}

func TestAuthMiddleware_Authenticate_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		header string
		code   string
	}{
		{name: "missing header", header: "", code: "TOKEN_MISSING"},
		{name: "wrong scheme", header: "Basic abc", code: "TOKEN_INVALID"},
		{name: "empty bearer", header: "Bearer ", code: "TOKEN_INVALID"},
		{name: "invalid token", header: "Bearer bad", code: "TOKEN_INVALID"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokenSvc := mockSvc.NewMockTokenService(t)
			if tt.header == "Bearer bad" {
				tokenSvc.EXPECT().ValidateToken("bad").Return(nil, errors.New("signature is invalid"))
			}

			e := echo.New()
			e.GET("/me", func(c echo.Context) error {
				t.Fatal("handler must not run")

				return nil
			}, NewAuthMiddleware(tokenSvc).Authenticate)

			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}
			rec := serve(e, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.code)
		})
	}
}

func TestAuthMiddleware_RequireRole(t *testing.T) {
	m := NewAuthMiddleware(nil)
	vendorOnly := m.RequireRole(entity.RoleVendor)
	ok := func(c echo.Context) error { return c.NoContent(http.StatusNoContent) }

	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	deliverycontext.SetPrincipal(c, entity.Principal{ID: uuid.New(), Role: entity.RoleStudent})
	require.NoError(t, vendorOnly(ok)(c))
	assert.Equal(t, http.StatusForbidden, c.Response().Status)

	c = e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	deliverycontext.SetPrincipal(c, entity.Principal{ID: uuid.New(), Role: entity.RoleVendor})
	require.NoError(t, vendorOnly(ok)(c))
	assert.Equal(t, http.StatusNoContent, c.Response().Status)

	c = e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	require.NoError(t, vendorOnly(ok)(c))
	assert.Equal(t, http.StatusUnauthorized, c.Response().Status)
}

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	m := NewErrorMiddleware(slog.New(slog.DiscardHandler))

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
		hidden     string
	}{
		{
			name:       "validation error lists fields",
			err:        domainerrors.NewValidationError("").Add("email", "is required"),
			wantStatus: http.StatusBadRequest,
			wantBody:   `"field":"email"`,
		},
		{
			name:       "wrapped app error",
			err:        errors.Wrap(domainerrors.ErrOrderNotFound, "load order"),
			wantStatus: http.StatusNotFound,
			wantBody:   `"code":"ORDER_NOT_FOUND"`,
			hidden:     "load order",
		},
		{
			name:       "app error details stay private",
			err:        domainerrors.ErrTransactionFailed.WithDetails("deadlock detected"),
			wantStatus: domainerrors.ErrTransactionFailed.HTTPCode(),
			wantBody:   `"code":"` + domainerrors.ErrTransactionFailed.ErrorCode() + `"`,
			hidden:     "deadlock",
		},
		{
			name:       "echo error",
			err:        echo.NewHTTPError(http.StatusMethodNotAllowed, "Method Not Allowed"),
			wantStatus: http.StatusMethodNotAllowed,
			wantBody:   `"code":"HTTP_ERROR"`,
		},
		{
			name:       "unknown error",
			err:        errors.New("dial tcp 10.0.0.3:5432: i/o timeout"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   `"code":"INTERNAL_ERROR"`,
			hidden:     "10.0.0.3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

			m.HandleHTTPError(tt.err, c)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
			if tt.hidden != "" {
				assert.NotContains(t, rec.Body.String(), tt.hidden)
			}
		})
	}
}

func TestErrorMiddleware_CommittedResponse(t *testing.T) {
	m := NewErrorMiddleware(slog.New(slog.DiscardHandler))

	rec := httptest.NewRecorder()
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	require.NoError(t, c.String(http.StatusAccepted, "done"))

	m.HandleHTTPError(errors.New("late failure"), c)

	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, "done", rec.Body.String())
}
