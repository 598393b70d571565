// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"tiffin/config"
	deliverycontext "tiffin/internal/delivery/context"
	"tiffin/internal/domain/constants"
	"tiffin/internal/domain/entity"
	domainerrors "tiffin/internal/domain/errors"
	"tiffin/internal/domain/service"
	"tiffin/internal/errors"
)

// mapNotFound turns a repository sentinel into the matching domain error.
func mapNotFound(err, sentinel error, domainErr *domainerrors.BaseError, msg string) error {
	if errors.Is(err, sentinel) {
		return errors.WithStack(domainErr)
	}

	return errors.Wrap(err, msg)
}

// pageLimits returns the page size to use when none is requested and the upper bound.
// The configured default only replaces the generic default of 10.
func pageLimits(cfg *config.Config, fallback int) (int, int) {
	def, maxLimit := fallback, constants.MaxPageLimit
	if cfg == nil || cfg.Pagination == nil {
		return def, maxLimit
	}

	if fallback == constants.DefaultPageLimit && cfg.Pagination.DefaultLimit > 0 {
		def = cfg.Pagination.DefaultLimit
	}

	if cfg.Pagination.MaxLimit > 0 {
		maxLimit = cfg.Pagination.MaxLimit
	}

	return def, maxLimit
}

// normalizePage applies the default and maximum page size.
func normalizePage(q entity.PageQuery, cfg *config.Config, fallback int) entity.PageQuery {
	def, maxLimit := pageLimits(cfg, fallback)

	return q.Normalize(def, maxLimit)
}

// sweepBatchSize bounds how many rows one sweep pass loads.
func sweepBatchSize(cfg *config.Config) int {
	if cfg == nil || cfg.Worker == nil || cfg.Worker.SweepBatchSize <= 0 {
		return defaultSweepBatch
	}

	return cfg.Worker.SweepBatchSize
}

const defaultSweepBatch = 200

// eventPublisher sends notifications about state changes. Publishing is best effort:
// the state change has already been committed when it runs.
type eventPublisher struct {
	publisher service.EventPublisher
	logger    *slog.Logger
}

func (p eventPublisher) publish(ctx context.Context, event *service.DomainEvent) {
	if p.publisher == nil || event == nil {
		return
	}

	if event.RequestID == "" {
		event.RequestID = deliverycontext.GetRequestIDFromContext(ctx)
	}

	if err := p.publisher.PublishEvent(ctx, event); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, p.logger).Warn("Failed to publish event",
			slog.String("event_type", string(event.Type)),
			slog.String("recipient_id", event.RecipientID),
			slog.Any("error", err),
		)
	}
}

// newEvent builds an event addressed to one principal.
func newEvent(typ service.EventType, recipient entity.Principal, notifyType entity.NotificationType, title, message string) *service.DomainEvent {
	return &service.DomainEvent{
		Type:             typ,
		RecipientID:      recipient.ID.String(),
		RecipientRole:    recipient.Role.String(),
		NotificationType: string(notifyType),
		Title:            title,
		Message:          message,
		Data:             map[string]string{},
	}
}

func systemClock() time.Time {
	return time.Now().UTC()
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func loggerOrDefault(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return slog.Default()
	}

	return logger
}
