// Package pubsub hands domain events to the worker over the configured transport.
package pubsub

import (
	"context"
	"log/slog"
	"time"

	"tiffin/config"
	"tiffin/internal/domain/constants"
	"tiffin/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// noopPublisher is used when publishing is disabled
type noopPublisher struct {
	logger *slog.Logger
}

func (p *noopPublisher) PublishEvent(_ context.Context, event *service.DomainEvent) error {
	p.logger.Debug("[NoopPubSub] Event publishing disabled, skipping",
		slog.String("event_type", string(event.Type)),
	)

	return nil
}

func (p *noopPublisher) Close() error {
	return nil
}

// stampingPublisher fills in the event id and time when the caller left them empty.
type stampingPublisher struct {
	service.EventPublisher
}

func (p stampingPublisher) PublishEvent(ctx context.Context, event *service.DomainEvent) error {
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now().UTC()
	}

	return p.EventPublisher.PublishEvent(ctx, event)
}

// PublisherParams holds dependencies for EventPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewEventPublisher creates an EventPublisher based on configuration
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	publisher, err := newTransport(params.Ctx, params.Config.PubSub, params.Logger)
	if err != nil {
		return nil, err
	}

	var retryCfg *config.RetryConfig
	if params.Config.PubSub != nil {
		retryCfg = params.Config.PubSub.PublishRetry
	}

	publisher = stampingPublisher{WithRetry(publisher, retryCfg, params.Logger)}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			params.Logger.Info("Closing EventPublisher")

			return publisher.Close()
		},
	})

	return publisher, nil
}

func newTransport(ctx context.Context, cfg *config.PubSubConfig, logger *slog.Logger) (service.EventPublisher, error) {
	if cfg == nil || cfg.Provider == "" {
		logger.Info("PubSub not configured, using no-op publisher")

		return &noopPublisher{logger: logger}, nil
	}

	switch cfg.Provider {
	case constants.PubSubProviderLocal:
		if cfg.LocalEndpoint == "" {
			return nil, errors.New("local endpoint is required for local provider")
		}
		logger.Info("Using local HTTP publisher", slog.String("endpoint", cfg.LocalEndpoint))

		return NewLocalHTTPPublisher(cfg.LocalEndpoint, logger), nil

	case constants.PubSubProviderGoogle:
		if cfg.ProjectID == "" || cfg.TopicID == "" {
			return nil, errors.New("project ID and topic ID are required for google provider")
		}

		return NewGooglePubSubPublisher(ctx, cfg.ProjectID, cfg.TopicID, logger)

	case constants.PubSubProviderRabbitMQ:
		if cfg.RabbitMQ == nil || cfg.RabbitMQ.URL == "" || cfg.RabbitMQ.Exchange == "" {
			return nil, errors.New("rabbitmq url and exchange are required for rabbitmq provider")
		}

		return NewRabbitMQPublisher(ctx, cfg.RabbitMQ, logger)

	default:
		return nil, errors.Errorf("unknown pubsub provider: %s", cfg.Provider)
	}
}

// Module provides the Pub/Sub FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewEventPublisher),
)
