package pubsub

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"tiffin/config"
	"tiffin/internal/domain/constants"
	"tiffin/internal/domain/service"
	"tiffin/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testEvent() *service.DomainEvent {
	return &service.DomainEvent{
		ID:               "evt-1",
		Type:             service.EventPaymentRecorded,
		RequestID:        "req-42",
		RecipientID:      "8d1f3c1e-64a3-4c43-9d53-7d3b0b1f4c11",
		RecipientRole:    "student",
		NotificationType: "payment",
		Title:            "Payment received",
		Message:          "We received 3000",
		OccurredAt:       time.Date(2025, 1, 5, 10, 0, 0, 0, time.UTC),
	}
}

func TestLocalHTTPPublisher_PublishEvent(t *testing.T) {
	var received PushMessage
	var requestID string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, discardLogger())
	require.NoError(t, publisher.PublishEvent(context.Background(), testEvent()))

	assert.Equal(t, "req-42", requestID)
	assert.Equal(t, "evt-1", received.Message.MessageID)
	assert.Equal(t, string(service.EventPaymentRecorded), received.Message.Attributes[constants.AttrEventType])

	event, err := received.Event()
	require.NoError(t, err)
	assert.Equal(t, testEvent(), event)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	err := NewLocalHTTPPublisher(server.URL, discardLogger()).PublishEvent(context.Background(), testEvent())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}

func TestPushMessage_EventRejectsMalformedPayloads(t *testing.T) {
	tests := map[string]string{
		"empty":      "",
		"not base64": "%%%",
		"not json":   "bm90IGpzb24=",
		"no type":    "eyJyZWNpcGllbnRfaWQiOiJ4In0=",
	}

	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			var msg PushMessage
			msg.Message.Data = data

			event, err := msg.Event()
			assert.Nil(t, event)
			assert.ErrorIs(t, err, ErrMalformedEvent)
		})
	}
}

type flakyPublisher struct {
	failures int
	calls    int
	closed   bool
}

func (p *flakyPublisher) PublishEvent(context.Context, *service.DomainEvent) error {
	p.calls++
	if p.calls <= p.failures {
		return errors.New("broker unavailable")
	}

	return nil
}

func (p *flakyPublisher) Close() error {
	p.closed = true

	return nil
}

func TestWithRetry(t *testing.T) {
	t.Run("recovers within attempts", func(t *testing.T) {
		inner := &flakyPublisher{failures: 2}
		publisher := WithRetry(inner, &config.RetryConfig{Attempts: 3, Delay: time.Millisecond}, discardLogger())

		require.NoError(t, publisher.PublishEvent(context.Background(), testEvent()))
		assert.Equal(t, 3, inner.calls)

		require.NoError(t, publisher.Close())
		assert.True(t, inner.closed)
	})

	t.Run("gives up after attempts", func(t *testing.T) {
		inner := &flakyPublisher{failures: 5}
		publisher := WithRetry(inner, &config.RetryConfig{Attempts: 2, Delay: time.Millisecond}, discardLogger())

		err := publisher.PublishEvent(context.Background(), testEvent())
		require.Error(t, err)
		assert.Equal(t, 2, inner.calls)
	})

	t.Run("disabled returns inner publisher", func(t *testing.T) {
		inner := &flakyPublisher{}
		assert.Same(t, inner, WithRetry(inner, nil, discardLogger()))
		assert.Same(t, inner, WithRetry(inner, &config.RetryConfig{Attempts: 1}, discardLogger()))
	})
}

func TestStampingPublisher_FillsIDAndTime(t *testing.T) {
	inner := &flakyPublisher{}
	event := &service.DomainEvent{Type: service.EventMessageReceived, RecipientID: "x"}

	require.NoError(t, stampingPublisher{inner}.PublishEvent(context.Background(), event))
	assert.NotEmpty(t, event.ID)
	assert.False(t, event.OccurredAt.IsZero())
}

func TestNewTransport_Validation(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *config.PubSubConfig
		wantErr bool
	}{
		{"disabled", &config.PubSubConfig{}, false},
		{"nil config", nil, false},
		{"local without endpoint", &config.PubSubConfig{Provider: constants.PubSubProviderLocal}, true},
		{"local", &config.PubSubConfig{Provider: constants.PubSubProviderLocal, LocalEndpoint: "http://localhost:8081/push"}, false},
		{"google without topic", &config.PubSubConfig{Provider: constants.PubSubProviderGoogle, ProjectID: "p"}, true},
		{"rabbitmq without url", &config.PubSubConfig{Provider: constants.PubSubProviderRabbitMQ, RabbitMQ: &config.RabbitMQConfig{Exchange: "tiffin"}}, true},
		{"unknown", &config.PubSubConfig{Provider: "kafka"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			publisher, err := newTransport(context.Background(), tt.cfg, discardLogger())
			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.NotNil(t, publisher)
		})
	}
}

func TestBindingKey(t *testing.T) {
	assert.Equal(t, "#", bindingKey(&config.RabbitMQConfig{}))
	assert.Equal(t, "events.*", bindingKey(&config.RabbitMQConfig{RoutingKey: "events.*"}))
}
