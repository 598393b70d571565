// Package handler contains the HTTP handlers for the API.
package handler

import (
	"net/http"
	"time"

	"tiffin/internal/delivery/api/response"
	deliverycontext "tiffin/internal/delivery/context"
	"tiffin/internal/domain/entity"
	domainerrors "tiffin/internal/domain/errors"
	"tiffin/internal/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}

// principalFrom returns the caller set by the auth middleware.
func principalFrom(c echo.Context) (entity.Principal, error) {
	p, ok := deliverycontext.GetPrincipal(c)
	if !ok {
		return entity.Principal{}, errors.WithStack(domainerrors.ErrTokenInvalid)
	}

	return p, nil
}

// bindAndValidate decodes the request into req and runs its validate tags.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domainerrors.NewValidationError("Invalid request body")
	}

	if err := c.Validate(req); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// pathID parses a UUID path parameter.
func pathID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, domainerrors.NewValidationError("Invalid id").Add(name, "must be a valid id")
	}

	return id, nil
}

// optionalID parses a UUID that may be empty.
func optionalID(field, value string) (*uuid.UUID, error) {
	if value == "" {
		return nil, nil
	}

	id, err := uuid.Parse(value)
	if err != nil {
		return nil, domainerrors.NewValidationError("").Add(field, "must be a valid id")
	}

	return &id, nil
}

// optionalDate parses a YYYY-MM-DD or RFC 3339 value that may be empty.
func optionalDate(field, value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}

	t, err := entity.ParseDate(value)
	if err != nil {
		return nil, domainerrors.NewValidationError("").Add(field, "must be a date in YYYY-MM-DD format")
	}

	return &t, nil
}

// optionalTimestamp keeps the time of day of RFC 3339 values.
func optionalTimestamp(field, value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}

	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return &t, nil
	}

	return optionalDate(field, value)
}

// pageQuery reads the page and limit query parameters. Zero values are defaulted downstream.
func pageQuery(c echo.Context) (entity.PageQuery, error) {
	var q entity.PageQuery
	if err := echo.QueryParamsBinder(c).
		Int("page", &q.Page).
		Int("limit", &q.Limit).
		BindError(); err != nil {
		return q, domainerrors.NewValidationError("Invalid pagination parameters")
	}

	return q, nil
}
