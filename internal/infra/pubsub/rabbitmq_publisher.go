package pubsub

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"tiffin/config"
	"tiffin/internal/domain/service"

	"github.com/avast/retry-go/v4"
	"github.com/pkg/errors"
	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	dialAttempts = 5
	dialDelay    = time.Second
)

// rabbitMQPublisher publishes events as persistent messages and waits for
// the broker's confirm before returning.
type rabbitMQPublisher struct {
	conn       *amqp.Connection
	ch         *amqp.Channel
	confirms   <-chan amqp.Confirmation
	exchange   string
	routingKey string
	logger     *slog.Logger

	mu sync.Mutex
}

// DialRabbitMQ opens a connection, retrying while the broker is starting up.
func DialRabbitMQ(ctx context.Context, url string, logger *slog.Logger) (*amqp.Connection, error) {
	var conn *amqp.Connection

	err := retry.Do(
		func() error {
			var err error
			conn, err = amqp.Dial(url)

			return err
		},
		retry.Context(ctx),
		retry.Attempts(dialAttempts),
		retry.Delay(dialDelay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			logger.Warn("RabbitMQ dial failed, retrying", slog.Uint64("attempt", uint64(n+1)), slog.Any("error", err))
		}),
	)
	if err != nil {
		return nil, errors.Wrap(err, "dial rabbitmq")
	}

	return conn, nil
}

// DeclareTopology declares the durable exchange and queue and binds them.
func DeclareTopology(ch *amqp.Channel, cfg *config.RabbitMQConfig) error {
	if err := ch.ExchangeDeclare(cfg.Exchange, amqp.ExchangeTopic, true, false, false, false, nil); err != nil {
		return errors.Wrapf(err, "declare exchange %s", cfg.Exchange)
	}

	if cfg.Queue == "" {
		return nil
	}

	if _, err := ch.QueueDeclare(cfg.Queue, true, false, false, false, nil); err != nil {
		return errors.Wrapf(err, "declare queue %s", cfg.Queue)
	}

	if err := ch.QueueBind(cfg.Queue, bindingKey(cfg), cfg.Exchange, false, nil); err != nil {
		return errors.Wrapf(err, "bind queue %s", cfg.Queue)
	}

	return nil
}

func bindingKey(cfg *config.RabbitMQConfig) string {
	if cfg.RoutingKey == "" {
		return "#"
	}

	return cfg.RoutingKey
}

// NewRabbitMQPublisher dials the broker and enables publisher confirms.
func NewRabbitMQPublisher(ctx context.Context, cfg *config.RabbitMQConfig, logger *slog.Logger) (service.EventPublisher, error) {
	conn, err := DialRabbitMQ(ctx, cfg.URL, logger)
	if err != nil {
		return nil, err
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()

		return nil, errors.Wrap(err, "open channel")
	}

	if err := DeclareTopology(ch, cfg); err != nil {
		_ = conn.Close()

		return nil, err
	}

	if err := ch.Confirm(false); err != nil {
		_ = conn.Close()

		return nil, errors.Wrap(err, "enable publisher confirms")
	}

	logger.Info("RabbitMQ publisher initialized",
		slog.String("exchange", cfg.Exchange),
		slog.String("queue", cfg.Queue),
	)

	return &rabbitMQPublisher{
		conn:       conn,
		ch:         ch,
		confirms:   ch.NotifyPublish(make(chan amqp.Confirmation, 1)),
		exchange:   cfg.Exchange,
		routingKey: cfg.RoutingKey,
		logger:     logger,
	}, nil
}

// PublishEvent publishes one persistent message. Publishes are serialized so
// each confirm matches its message.
func (p *rabbitMQPublisher) PublishEvent(ctx context.Context, event *service.DomainEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	headers := amqp.Table{}
	for k, v := range eventAttributes(event) {
		headers[k] = v
	}

	routingKey := p.routingKey
	if routingKey == "" {
		routingKey = string(event.Type)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	err = p.ch.PublishWithContext(ctx, p.exchange, routingKey, false, false, amqp.Publishing{
		DeliveryMode:  amqp.Persistent,
		ContentType:   "application/json",
		MessageId:     event.ID,
		CorrelationId: event.RequestID,
		Timestamp:     time.Now().UTC(),
		Headers:       headers,
		Body:          body,
	})
	if err != nil {
		return errors.Wrapf(err, "publish %s", event.Type)
	}

	select {
	case confirm := <-p.confirms:
		if !confirm.Ack {
			return errors.Errorf("broker nacked event %s", event.ID)
		}
	case <-ctx.Done():
		return errors.WithStack(ctx.Err())
	}

	p.logger.Debug("[RabbitMQ] Event published",
		slog.String("event_id", event.ID),
		slog.String("event_type", string(event.Type)),
	)

	return nil
}

// Close closes the channel and the connection.
func (p *rabbitMQPublisher) Close() error {
	if p.ch != nil {
		_ = p.ch.Close()
	}
	if p.conn != nil && !p.conn.IsClosed() {
		return errors.WithStack(p.conn.Close())
	}

	return nil
}
