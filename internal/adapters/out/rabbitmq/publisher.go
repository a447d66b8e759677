// Package rabbitmq publishes order domain events to a fanout exchange so
// kitchen displays and notifiers can follow order progress.
package rabbitmq

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"cafe/internal/core/domain/model/order"

	amqp "github.com/rabbitmq/amqp091-go"
)

const contentType = "application/json"

// channel is the part of *amqp.Channel the publisher needs.
type channel interface {
	ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp.Table) error
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// Envelope is the message body. Payload is the event itself.
type Envelope struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	OccurredAt time.Time       `json:"occurredAt"`
	Payload    json.RawMessage `json:"payload"`
}

// Publisher implements ports.EventPublisher on top of one AMQP channel.
// Messages are persistent and routed by event name.
type Publisher struct {
	conn     *amqp.Connection
	ch       channel
	exchange string
	timeout  time.Duration
	logger   *slog.Logger
}

// Dial connects to url and declares exchange as a durable fanout exchange.
func Dial(url, exchange string, logger *slog.Logger) (*Publisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	p, err := NewPublisher(ch, exchange, logger)
	if err != nil {
		_ = conn.Close()
		return nil, err
	}
	p.conn = conn
	return p, nil
}

// NewPublisher declares exchange on an already open channel.
func NewPublisher(ch channel, exchange string, logger *slog.Logger) (*Publisher, error) {
	if exchange == "" {
		return nil, errors.New("exchange name is required")
	}
	err := ch.ExchangeDeclare(
		exchange,
		amqp.ExchangeFanout,
		true,  // durable
		false, // auto-deleted
		false, // internal
		false, // no-wait
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to declare exchange %s: %w", exchange, err)
	}

	return &Publisher{
		ch:       ch,
		exchange: exchange,
		timeout:  5 * time.Second,
		logger:   logger.With("component", "rabbitmq_publisher", "exchange", exchange),
	}, nil
}

// Publish sends every event, continuing past failures. The returned error
// joins the failures of all events that could not be sent.
func (p *Publisher) Publish(ctx context.Context, events ...order.DomainEvent) error {
	var errs []error
	for _, event := range events {
		if err := p.publish(ctx, event); err != nil {
			errs = append(errs, fmt.Errorf("publish %s %s: %w", event.EventName(), event.EventID(), err))
		}
	}
	return errors.Join(errs...)
}

func (p *Publisher) publish(ctx context.Context, event order.DomainEvent) error {
	body, err := Marshal(event)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	err = p.ch.PublishWithContext(ctx, p.exchange, event.EventName(), false, false, amqp.Publishing{
		ContentType:  contentType,
		DeliveryMode: amqp.Persistent,
		MessageId:    event.EventID().String(),
		Type:         event.EventName(),
		Timestamp:    event.OccurredAt(),
		Body:         body,
	})
	if err != nil {
		return err
	}

	p.logger.DebugContext(ctx, "event published",
		"event", event.EventName(),
		"event_id", event.EventID().String(),
		"size", len(body),
	)
	return nil
}

// Close closes the channel and, when the publisher dialed it, the connection.
func (p *Publisher) Close() error {
	err := p.ch.Close()
	if p.conn != nil {
		err = errors.Join(err, p.conn.Close())
	}
	return err
}

// Marshal wraps event in an Envelope and encodes it as JSON.
func Marshal(event order.DomainEvent) ([]byte, error) {
	payload, err := json.Marshal(event)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s: %w", event.EventName(), err)
	}
	return json.Marshal(Envelope{
		ID:         event.EventID().String(),
		Name:       event.EventName(),
		OccurredAt: event.OccurredAt().UTC(),
		Payload:    payload,
	})
}
