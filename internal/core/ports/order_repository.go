// Package ports defines the contracts between the café core and its
// infrastructure: persistence of orders, read access to users and the menu,
// transactions and event publishing.
package ports

import (
	"context"

	"cafe/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates,
// header and line items together.
type OrderRepository interface {
	// Add inserts a new order and all of its items, then assigns the
	// generated keys to the aggregate. A failure after the header row was
	// written is reported as errs.PartialFailureError.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists the paid flag, the total and every item of an existing order.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get loads an order with its items ordered by item id.
	// Returns errs.ObjectNotFoundError when no such order exists.
	Get(ctx context.Context, id order.ID) (*order.Order, error)

	// GetForUpdate is Get with a row lock on the order header held until the
	// surrounding transaction ends. Concurrent mutations of the same order
	// queue behind it.
	GetForUpdate(ctx context.Context, id order.ID) (*order.Order, error)
}
