package rabbitmq

import (
	"context"
	"log/slog"

	"cafe/internal/core/domain/model/order"
)

// LogPublisher stands in for the broker when none is configured. It only
// logs the events it is given.
type LogPublisher struct {
	logger *slog.Logger
}

func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	return &LogPublisher{logger: logger.With("component", "log_publisher")}
}

func (p *LogPublisher) Publish(ctx context.Context, events ...order.DomainEvent) error {
	for _, event := range events {
		p.logger.InfoContext(ctx, "event recorded",
			"event", event.EventName(),
			"event_id", event.EventID().String(),
		)
	}
	return nil
}

func (p *LogPublisher) Close() error {
	return nil
}
