package pubsub

import (
	"context"
	"log/slog"
	"time"

	"tiffin/config"
	"tiffin/internal/domain/service"

	"github.com/avast/retry-go/v4"
)

const defaultRetryDelay = 200 * time.Millisecond

// retryingPublisher retries a failing publish a bounded number of times.
type retryingPublisher struct {
	next     service.EventPublisher
	attempts uint
	delay    time.Duration
	logger   *slog.Logger
}

// WithRetry wraps a publisher. Fewer than two attempts returns next unchanged.
func WithRetry(next service.EventPublisher, cfg *config.RetryConfig, logger *slog.Logger) service.EventPublisher {
	if cfg == nil || cfg.Attempts < 2 {
		return next
	}

	delay := cfg.Delay
	if delay <= 0 {
		delay = defaultRetryDelay
	}

	return &retryingPublisher{next: next, attempts: cfg.Attempts, delay: delay, logger: logger}
}

func (p *retryingPublisher) PublishEvent(ctx context.Context, event *service.DomainEvent) error {
	return retry.Do(
		func() error {
			return p.next.PublishEvent(ctx, event)
		},
		retry.Context(ctx),
		retry.Attempts(p.attempts),
		retry.Delay(p.delay),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			p.logger.Warn("Event publish failed, retrying",
				slog.String("event_type", string(event.Type)),
				slog.Uint64("attempt", uint64(n+1)),
				slog.Any("error", err),
			)
		}),
	)
}

func (p *retryingPublisher) Close() error {
	return p.next.Close()
}
