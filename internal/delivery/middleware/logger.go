package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"tiffin/config"
	deliverycontext "tiffin/internal/delivery/context"
	domainerrors "tiffin/internal/domain/errors"
	"tiffin/internal/errors"

	"github.com/labstack/echo/v4"
)

// LoggerMiddleware logs every request in debug mode and server errors always
type LoggerMiddleware struct {
	logger *slog.Logger
	debug  bool
}

// NewLoggerMiddleware creates a new logger middleware
func NewLoggerMiddleware(logger *slog.Logger, config *config.Config) *LoggerMiddleware {
	return &LoggerMiddleware{
		logger: logger,
		debug:  config.Env.Debug,
	}
}

// Handle processes request logging
func (m *LoggerMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)

		status := c.Response().Status
		if err != nil && !c.Response().Committed {
			status = statusFromError(err)
		}

		if m.debug || status >= http.StatusInternalServerError {
			m.logRequest(c, start, status, err)
		}

		return err
	}
}

// logRequest logs request details
func (m *LoggerMiddleware) logRequest(c echo.Context, start time.Time, status int, err error) {
	req := c.Request()

	// Calculate latency
	latency := time.Since(start)

	// Prepare log fields
	fields := []slog.Attr{
		slog.String("request_id", deliverycontext.GetRequestID(c)),
		slog.String("method", req.Method),
		slog.String("uri", req.URL.Path),
		slog.Int("status", status),
		slog.Duration("latency", latency),
		slog.String("remote_ip", c.RealIP()),
		slog.String("user_agent", req.UserAgent()),
	}

	// If there are query parameters, log them too
	if len(req.URL.RawQuery) > 0 {
		fields = append(fields, slog.String("query", req.URL.RawQuery))
	}

	if p, ok := deliverycontext.GetPrincipal(c); ok {
		fields = append(fields, slog.String("user_id", p.ID.String()), slog.String("role", p.Role.String()))
	}

	// If there's an error, log error details
	if err != nil {
		fields = append(fields, slog.Any("error", err))
	}

	// Choose log level based on status code
	logLevel := slog.LevelInfo
	if status >= http.StatusBadRequest {
		logLevel = slog.LevelWarn
	}
	if status >= http.StatusInternalServerError {
		logLevel = slog.LevelError
	}

	m.logger.LogAttrs(req.Context(), logLevel, "HTTP Request", fields...)
}

// statusFromError predicts the status the error handler will write.
func statusFromError(err error) int {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return appErr.HTTPCode()
	}

	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code
	}

	return http.StatusInternalServerError
}
