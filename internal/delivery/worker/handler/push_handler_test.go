package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"tiffin/config"
	deliverycontext "tiffin/internal/delivery/context"
	"tiffin/internal/domain/constants"
	"tiffin/internal/domain/service"
	"tiffin/internal/infra/pubsub"
	mockUsecase "tiffin/internal/mocks/usecase"
	"tiffin/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testEvent() *service.DomainEvent {
	return &service.DomainEvent{
		ID:          uuid.NewString(),
		Type:        service.EventOrderStatusChanged,
		RequestID:   "req-from-event",
		RecipientID: uuid.NewString(),
		Title:       "Order confirmed",
		Message:     "Your lunch is confirmed",
		OccurredAt:  time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC),
	}
}

func newPushHandler(t *testing.T, cfg *config.Config) (*PushHandler, *mockUsecase.MockEventUsecase) {
	eventUC := mockUsecase.NewMockEventUsecase(t)
	if cfg == nil {
		cfg = &config.Config{}
	}

	return NewPushHandler(PushHandlerParams{
		Config:  cfg,
		Logger:  slog.New(slog.DiscardHandler),
		EventUC: eventUC,
	}), eventUC
}

func push(h *PushHandler, body []byte) *httptest.ResponseRecorder {
	e := echo.New()
	e.POST("/push", h.HandlePush)

	req := httptest.NewRequest(http.MethodPost, "/push", bytes.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func envelopeBody(t *testing.T, event *service.DomainEvent) []byte {
	t.Helper()

	msg, err := pubsub.NewPushMessage(event, event.OccurredAt)
	require.NoError(t, err)

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return body
}

func TestPushHandler_HandlePush_Success(t *testing.T) {
	h, eventUC := newPushHandler(t, nil)
	event := testEvent()

	eventUC.EXPECT().
		ProcessEvent(mock.Anything, mock.MatchedBy(func(e *service.DomainEvent) bool {
			return e.ID == event.ID && e.RecipientID == event.RecipientID
		})).
		RunAndReturn(func(ctx context.Context, _ *service.DomainEvent) (*usecase.DeliveryResult, error) {
			assert.Equal(t, "req-from-event", deliverycontext.GetRequestIDFromContext(ctx))

			return &usecase.DeliveryResult{Devices: 1, Sent: 1}, nil
		})

	rec := push(h, envelopeBody(t, event))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_HandlePush_Malformed(t *testing.T) {
	h, _ := newPushHandler(t, nil)

	tests := map[string]string{
		"not json":       `{"message":`,
		"empty data":     `{"message":{"data":""}}`,
		"not base64":     `{"message":{"data":"%%%"}}`,
		"missing fields": `{"message":{"data":"e30="}}`,
	}

	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			rec := push(h, []byte(body))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestPushHandler_HandlePush_RetryableFailure(t *testing.T) {
	h, eventUC := newPushHandler(t, nil)

	eventUC.EXPECT().
		ProcessEvent(mock.Anything, mock.Anything).
		Return(nil, usecase.Retryable(errors.New("db unavailable")))

	rec := push(h, envelopeBody(t, testEvent()))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestPushHandler_HandlePush_PermanentFailure(t *testing.T) {
	h, eventUC := newPushHandler(t, nil)

	eventUC.EXPECT().
		ProcessEvent(mock.Anything, mock.Anything).
		Return(nil, errors.New("recipient is not a uuid"))

	rec := push(h, envelopeBody(t, testEvent()))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_HandlePush_VerifiesGoogleToken(t *testing.T) {
	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle}}
	cfg.Env.Env = "production"

	h, _ := newPushHandler(t, cfg)
	require.True(t, h.verifyPushAuth)
	h.verifyToken = func(*http.Request) error { return errors.New("bad audience") }

	rec := push(h, envelopeBody(t, testEvent()))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestNewPushHandler_SkipsVerificationInDevelop(t *testing.T) {
	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle}}
	cfg.Env.Env = constants.EnvDevelop

	h, _ := newPushHandler(t, cfg)
	assert.False(t, h.verifyPushAuth)
}

func TestRequestID(t *testing.T) {
	assert.Equal(t, "attr", RequestID("attr", "event", "ctx"))
	assert.Equal(t, "event", RequestID("", "event", "ctx"))
	assert.Equal(t, "ctx", RequestID("", "", "ctx"))

	_, err := uuid.Parse(RequestID("", ""))
	assert.NoError(t, err)
}
