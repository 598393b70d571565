package middleware

import (
	"log/slog"
	"net/http"

	"tiffin/internal/delivery/api/response"
	deliverycontext "tiffin/internal/delivery/context"
	domainerrors "tiffin/internal/domain/errors"
	"tiffin/internal/errors"

	"github.com/labstack/echo/v4"
)

// ErrorMiddleware handles errors in the HTTP pipeline
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var verr *domainerrors.ValidationError
	if errors.As(err, &verr) {
		_ = response.Error(c, verr.HTTPCode(), verr.ErrorCode(), verr.Message(), verr.Fields())

		return
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			m.logUnhandled(c, err)
		}

		_ = response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), nil)

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := http.StatusText(httpErr.Code)
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}

		_ = response.Error(c, httpErr.Code, "HTTP_ERROR", message, nil)

		return
	}

	m.logUnhandled(c, err)

	// The cause stays in the logs only
	_ = response.InternalServerError(c, "INTERNAL_ERROR", "Internal server error, please try again later")
}

func (m *ErrorMiddleware) logUnhandled(c echo.Context, err error) {
	req := c.Request()
	deliverycontext.GetLoggerOrDefault(req.Context(), m.logger).Error("Unhandled error",
		slog.Any("error", err),
		slog.String("path", req.URL.Path),
		slog.String("method", req.Method),
	)
}
