package ports

import (
	"context"

	"cafe/internal/core/domain/model/order"
)

// EventPublisher delivers domain events recorded by committed aggregates.
type EventPublisher interface {
	Publish(ctx context.Context, events ...order.DomainEvent) error
}
