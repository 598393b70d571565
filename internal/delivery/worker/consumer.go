package worker

import (
	"context"
	"log/slog"
	"sync"

	"tiffin/config"
	"tiffin/internal/delivery"
	"tiffin/internal/delivery/worker/handler"
	"tiffin/internal/domain/constants"
	"tiffin/internal/infra/pubsub"
	"tiffin/internal/usecase"

	"github.com/pkg/errors"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/fx"
)

const defaultPrefetch = 10

// rabbitConsumer reads domain events from the durable queue the API publishes to.
type rabbitConsumer struct {
	cfg     *config.RabbitMQConfig
	logger  *slog.Logger
	eventUC usecase.EventUsecase

	mu     sync.Mutex
	conn   *amqp.Connection
	cancel context.CancelFunc
	done   chan struct{}
}

// ConsumerParams holds dependencies for the RabbitMQ consumer
type ConsumerParams struct {
	fx.In

	Lc      fx.Lifecycle
	Cfg     *config.Config
	Logger  *slog.Logger
	EventUC usecase.EventUsecase
}

// NewRabbitConsumer returns the queue consumer, or an idle delivery when another provider is configured.
func NewRabbitConsumer(params ConsumerParams) (delivery.Delivery, error) {
	pubsubCfg := params.Cfg.PubSub
	if pubsubCfg == nil || pubsubCfg.Provider != constants.PubSubProviderRabbitMQ {
		return idleDelivery{}, nil
	}

	if pubsubCfg.RabbitMQ == nil || pubsubCfg.RabbitMQ.URL == "" || pubsubCfg.RabbitMQ.Queue == "" {
		return nil, errors.New("rabbitmq url and queue are required to consume events")
	}

	c := &rabbitConsumer{
		cfg:     pubsubCfg.RabbitMQ,
		logger:  params.Logger,
		eventUC: params.EventUC,
		done:    make(chan struct{}),
	}

	params.Lc.Append(fx.Hook{
		OnStop: c.stop,
	})

	return c, nil
}

// Serve consumes until the connection closes or stop is called.
func (c *rabbitConsumer) Serve(ctx context.Context) error {
	defer close(c.done)

	ctx, cancel := context.WithCancel(ctx)
	conn, err := pubsub.DialRabbitMQ(ctx, c.cfg.URL, c.logger)
	if err != nil {
		cancel()

		return err
	}

	c.mu.Lock()
	c.conn, c.cancel = conn, cancel
	c.mu.Unlock()
	defer cancel()

	ch, err := conn.Channel()
	if err != nil {
		return errors.Wrap(err, "open channel")
	}

	if err := pubsub.DeclareTopology(ch, c.cfg); err != nil {
		return err
	}

	prefetch := c.cfg.Prefetch
	if prefetch <= 0 {
		prefetch = defaultPrefetch
	}
	if err := ch.Qos(prefetch, 0, false); err != nil {
		return errors.Wrap(err, "set prefetch")
	}

	deliveries, err := ch.ConsumeWithContext(ctx, c.cfg.Queue, "", false, false, false, false, nil)
	if err != nil {
		return errors.Wrapf(err, "consume %s", c.cfg.Queue)
	}

	c.logger.Info("Consuming events from RabbitMQ",
		slog.String("queue", c.cfg.Queue),
		slog.Int("prefetch", prefetch),
	)

	for {
		select {
		case <-ctx.Done():
			return nil
		case d, ok := <-deliveries:
			if !ok {
				if ctx.Err() != nil {
					return nil
				}

				return errors.New("rabbitmq delivery channel closed")
			}
			c.handle(ctx, d)
		}
	}
}

// handle settles exactly one delivery.
func (c *rabbitConsumer) handle(ctx context.Context, d amqp.Delivery) {
	event, err := pubsub.DecodeEvent(d.Body)
	if err != nil {
		c.logger.Error("[Worker] Dropping malformed message",
			slog.String("message_id", d.MessageId),
			slog.Any("error", err),
		)
		c.settle(d.Nack(false, false))

		return
	}

	headerID, _ := d.Headers[constants.AttrRequestID].(string)
	requestID := handler.RequestID(headerID, event.RequestID, d.CorrelationId)

	err = handler.Dispatch(ctx, c.logger, c.eventUC, event, requestID)
	switch {
	case err == nil:
		c.settle(d.Ack(false))
	case usecase.IsRetryable(err):
		c.settle(d.Nack(false, true))
	default:
		c.settle(d.Nack(false, false))
	}
}

func (c *rabbitConsumer) settle(err error) {
	if err != nil {
		c.logger.Warn("[Worker] Failed to settle message", slog.Any("error", err))
	}
}

func (c *rabbitConsumer) stop(ctx context.Context) error {
	c.mu.Lock()
	conn, cancel := c.conn, c.cancel
	c.mu.Unlock()

	if cancel == nil {
		return nil
	}

	c.logger.Info("Stopping RabbitMQ consumer")
	cancel()

	select {
	case <-c.done:
	case <-ctx.Done():
	}

	if conn != nil && !conn.IsClosed() {
		return errors.WithStack(conn.Close())
	}

	return nil
}

// idleDelivery stands in for a transport that is not configured.
type idleDelivery struct{}

func (idleDelivery) Serve(context.Context) error {
	return nil
}
