package pubsub

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"tiffin/internal/domain/service"

	"github.com/pkg/errors"
)

const localPublishTimeout = 30 * time.Second

// localHTTPPublisher posts events straight to the worker's push endpoint,
// wrapped in the same envelope a Pub/Sub push subscription would use.
type localHTTPPublisher struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewLocalHTTPPublisher creates a publisher for local development.
func NewLocalHTTPPublisher(endpoint string, logger *slog.Logger) service.EventPublisher {
	return &localHTTPPublisher{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: localPublishTimeout},
		logger:     logger,
	}
}

// PublishEvent sends the envelope and expects a 2xx answer.
func (p *localHTTPPublisher) PublishEvent(ctx context.Context, event *service.DomainEvent) error {
	msg, err := NewPushMessage(event, time.Now())
	if err != nil {
		return err
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if event.RequestID != "" {
		req.Header.Set("X-Request-Id", event.RequestID)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return errors.WithStack(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return errors.Errorf("worker returned non-success status: %d", resp.StatusCode)
	}

	p.logger.Debug("[LocalPubSub] Event delivered",
		slog.String("endpoint", p.endpoint),
		slog.String("event_id", event.ID),
		slog.String("event_type", string(event.Type)),
	)

	return nil
}

// Close is a no-op; the HTTP client holds no dedicated resources.
func (p *localHTTPPublisher) Close() error {
	return nil
}
