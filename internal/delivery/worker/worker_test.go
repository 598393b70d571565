package worker

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"tiffin/config"
	deliverycontext "tiffin/internal/delivery/context"
	"tiffin/internal/delivery/worker/handler"
	"tiffin/internal/domain/constants"
	"tiffin/internal/domain/service"
	mockUsecase "tiffin/internal/mocks/usecase"
	"tiffin/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// recordingAck captures how a delivery was settled.
type recordingAck struct {
	acked   bool
	nacked  bool
	requeue bool
}

func (a *recordingAck) Ack(uint64, bool) error {
	a.acked = true

	return nil
}

func (a *recordingAck) Nack(_ uint64, _ bool, requeue bool) error {
	a.nacked, a.requeue = true, requeue

	return nil
}

func (a *recordingAck) Reject(_ uint64, requeue bool) error {
	a.nacked, a.requeue = true, requeue

	return nil
}

func eventDelivery(t *testing.T, ack amqp.Acknowledger, headers amqp.Table) amqp.Delivery {
	t.Helper()

	body, err := json.Marshal(&service.DomainEvent{
		ID:          uuid.NewString(),
		Type:        service.EventOrderStatusChanged,
		RecipientID: uuid.NewString(),
	})
	require.NoError(t, err)

	return amqp.Delivery{Acknowledger: ack, DeliveryTag: 1, Body: body, Headers: headers, CorrelationId: "corr-1"}
}

func TestRabbitConsumer_Handle(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantAck     bool
		wantRequeue bool
	}{
		{name: "processed", err: nil, wantAck: true},
		{name: "retryable", err: usecase.Retryable(errors.New("firebase unavailable")), wantRequeue: true},
		{name: "permanent", err: errors.New("bad recipient")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eventUC := mockUsecase.NewMockEventUsecase(t)
			c := &rabbitConsumer{logger: discardLogger(), eventUC: eventUC}
			ack := &recordingAck{}

			var result *usecase.DeliveryResult
			if tt.err == nil {
				result = &usecase.DeliveryResult{}
			}
			eventUC.EXPECT().ProcessEvent(mock.Anything, mock.Anything).Return(result, tt.err)

			c.handle(context.Background(), eventDelivery(t, ack, nil))

			assert.Equal(t, tt.wantAck, ack.acked)
			assert.Equal(t, !tt.wantAck, ack.nacked)
			assert.Equal(t, tt.wantRequeue, ack.requeue)
		})
	}
}

func TestRabbitConsumer_Handle_RequestIDFromHeaders(t *testing.T) {
	eventUC := mockUsecase.NewMockEventUsecase(t)
	c := &rabbitConsumer{logger: discardLogger(), eventUC: eventUC}

	eventUC.EXPECT().
		ProcessEvent(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, _ *service.DomainEvent) (*usecase.DeliveryResult, error) {
			assert.Equal(t, "req-header", deliverycontext.GetRequestIDFromContext(ctx))

			return &usecase.DeliveryResult{}, nil
		})

	c.handle(context.Background(), eventDelivery(t, &recordingAck{}, amqp.Table{constants.AttrRequestID: "req-header"}))
}

func TestRabbitConsumer_Handle_MalformedIsDropped(t *testing.T) {
	c := &rabbitConsumer{logger: discardLogger(), eventUC: mockUsecase.NewMockEventUsecase(t)}
	ack := &recordingAck{}

	c.handle(context.Background(), amqp.Delivery{Acknowledger: ack, DeliveryTag: 1, Body: []byte("not json")})

	assert.True(t, ack.nacked)
	assert.False(t, ack.requeue)
}

func TestNewRabbitConsumer_IdleForOtherProviders(t *testing.T) {
	d, err := NewRabbitConsumer(ConsumerParams{
		Lc:      fxtest.NewLifecycle(t),
		Cfg:     &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle}},
		Logger:  discardLogger(),
		EventUC: mockUsecase.NewMockEventUsecase(t),
	})
	require.NoError(t, err)
	assert.NoError(t, d.Serve(context.Background()))
}

func TestNewRabbitConsumer_RequiresQueue(t *testing.T) {
	_, err := NewRabbitConsumer(ConsumerParams{
		Lc: fxtest.NewLifecycle(t),
		Cfg: &config.Config{PubSub: &config.PubSubConfig{
			Provider: constants.PubSubProviderRabbitMQ,
			RabbitMQ: &config.RabbitMQConfig{URL: "amqp://localhost", Exchange: "tiffin.events"},
		}},
		Logger:  discardLogger(),
		EventUC: mockUsecase.NewMockEventUsecase(t),
	})
	assert.Error(t, err)
}

func TestSweeper_SweepsUntilStopped(t *testing.T) {
	sweepUC := mockUsecase.NewMockSweepUsecase(t)
	lc := fxtest.NewLifecycle(t)

	swept := make(chan struct{}, 1)
	sweepUC.EXPECT().
		Sweep(mock.Anything).
		RunAndReturn(func(context.Context) (*usecase.SweepResult, error) {
			select {
			case swept <- struct{}{}:
			default:
			}

			return &usecase.SweepResult{ExpiredSubscriptions: 1}, nil
		})

	cfg := &config.Config{Worker: &config.WorkerConfig{ExpirySweepInterval: time.Hour}}
	d, err := NewSweeper(SweeperParams{Lc: lc, Cfg: cfg, Logger: discardLogger(), SweepUC: sweepUC})
	require.NoError(t, err)

	served := make(chan error, 1)
	go func() { served <- d.Serve(context.Background()) }()

	select {
	case <-swept:
	case <-time.After(time.Second):
		t.Fatal("sweep did not run at start")
	}

	lc.RequireStart().RequireStop()

	select {
	case err := <-served:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("sweeper did not stop")
	}
}

func TestSweeper_ErrorDoesNotStopLoop(t *testing.T) {
	sweepUC := mockUsecase.NewMockSweepUsecase(t)
	s := &sweeper{interval: time.Minute, logger: discardLogger(), sweepUC: sweepUC}

	sweepUC.EXPECT().Sweep(mock.Anything).Return(nil, errors.New("db down")).Once()

	assert.NotPanics(t, func() { s.runOnce(context.Background()) })
}

func TestWorkerServer_Routes(t *testing.T) {
	pushHandler := handler.NewPushHandler(handler.PushHandlerParams{
		Config:  &config.Config{},
		Logger:  discardLogger(),
		EventUC: mockUsecase.NewMockEventUsecase(t),
	})
	e := newEcho(discardLogger(), pushHandler)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/push", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
