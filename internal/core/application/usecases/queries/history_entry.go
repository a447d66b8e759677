// Package queries contains the read side of the café: order details and
// item status history. Handlers read through raw SQL and never take locks.
package queries

import (
	"context"
	"database/sql"
	"time"

	"cafe/internal/core/domain/model/kernel"
	"cafe/internal/core/domain/model/order"
	"cafe/internal/pkg/retry"
	"cafe/internal/pkg/storeerr"

	"github.com/shopspring/decimal"
)

// HistoryEntry is one item status row joined with its order header.
type HistoryEntry struct {
	OrderID     order.ID
	Login       string
	Paid        bool
	Total       kernel.Money
	ItemID      order.ItemID
	ItemName    string
	Price       kernel.Money
	Status      order.Status
	LastUpdated time.Time
	Comments    string
}

const historySelect = `
	SELECT
		o.id,
		o.login,
		o.paid,
		o.total,
		i.id,
		i.item_name,
		i.price,
		i.status,
		i.last_updated,
		COALESCE(i.comments, '')
	FROM item_status i
	JOIN orders o ON o.id = i.order_id
`

// readOptions configures how a query handler talks to the store.
type readOptions struct {
	timeout time.Duration
	policy  retry.Policy
}

func defaultReadOptions(timeout time.Duration) readOptions {
	return readOptions{timeout: timeout, policy: retry.DefaultPolicy()}
}

// run executes one bounded attempt per retry and classifies store failures.
func (o readOptions) run(ctx context.Context, op string, fn func(ctx context.Context) error) error {
	return retry.Read(ctx, o.policy, func(ctx context.Context) error {
		if o.timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, o.timeout)
			defer cancel()
		}
		return storeerr.Classify(op, fn(ctx))
	})
}

func scanHistory(rows *sql.Rows) ([]HistoryEntry, error) {
	entries := make([]HistoryEntry, 0)
	for rows.Next() {
		var (
			entry        HistoryEntry
			orderID      int64
			itemID       int64
			total, price decimal.Decimal
			status       int
		)
		if err := rows.Scan(
			&orderID,
			&entry.Login,
			&entry.Paid,
			&total,
			&itemID,
			&entry.ItemName,
			&price,
			&status,
			&entry.LastUpdated,
			&entry.Comments,
		); err != nil {
			return nil, err
		}

		var err error
		if entry.Total, err = kernel.NewMoney(total); err != nil {
			return nil, storeerr.Corrupt("read history", err)
		}
		if entry.Price, err = kernel.NewMoney(price); err != nil {
			return nil, storeerr.Corrupt("read history", err)
		}
		entry.OrderID = order.ID(orderID)
		entry.ItemID = order.ItemID(itemID)
		entry.Status = order.Status(status)
		entry.LastUpdated = entry.LastUpdated.UTC()
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}
