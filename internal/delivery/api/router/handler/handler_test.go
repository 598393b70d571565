package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"tiffin/internal/delivery/api/middleware"
	"tiffin/internal/delivery/api/validator"
	deliverycontext "tiffin/internal/delivery/context"
	"tiffin/internal/domain/entity"
	domainerrors "tiffin/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

// envelope mirrors both response shapes so tests can decode either.
type envelope struct {
	Success bool                      `json:"success"`
	Message string                    `json:"message"`
	Code    string                    `json:"code"`
	Data    json.RawMessage           `json:"data"`
	Errors  []domainerrors.FieldError `json:"errors"`
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(discardLogger()).HandleHTTPError

	return e
}

func asPrincipal(p entity.Principal) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			deliverycontext.SetPrincipal(c, p)

			return next(c)
		}
	}
}

func testStudent() entity.Principal {
	return entity.Principal{ID: uuid.New(), Role: entity.RoleStudent}
}

func testVendor() entity.Principal {
	return entity.Principal{ID: uuid.New(), Role: entity.RoleVendor}
}

func doRequest(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))

	return env
}

func fieldNames(errs []domainerrors.FieldError) []string {
	names := make([]string, 0, len(errs))
	for _, fe := range errs {
		names = append(names, fe.Field)
	}

	return names
}

func TestHealthCheck(t *testing.T) {
	e := newTestEcho()
	e.GET("/health", HealthCheck)

	rec := doRequest(e, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"status":"ok"}`, string(decode(t, rec).Data))
}
