package queries

import (
	"context"
	"time"

	"cafe/internal/core/domain/model/user"
	"cafe/internal/core/domain/services"

	"gorm.io/gorm"
)

// GetWindowHistoryQueryHandler reads the item rows touched in a time window,
// across all logins. Staff only.
type GetWindowHistoryQueryHandler struct {
	db   *gorm.DB
	read readOptions
	gate services.AccessGate
}

func NewGetWindowHistoryQueryHandler(db *gorm.DB, timeout time.Duration) GetWindowHistoryQueryHandler {
	return GetWindowHistoryQueryHandler{
		db:   db,
		read: defaultReadOptions(timeout),
		gate: services.NewAccessGate(),
	}
}

func (h GetWindowHistoryQueryHandler) Handle(ctx context.Context, query GetWindowHistoryQuery) ([]HistoryEntry, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	if err := h.gate.Authorize(query.Session(), user.ViewWindowHistory); err != nil {
		return nil, err
	}

	var entries []HistoryEntry
	err := h.read.run(ctx, "get window history", func(ctx context.Context) error {
		rows, err := h.db.WithContext(ctx).Raw(historySelect+`
		WHERE i.last_updated >= ? AND i.last_updated < ?
		ORDER BY i.last_updated, i.id
	`, query.From(), query.To()).Rows()
		if err != nil {
			return err
		}
		defer rows.Close()

		entries, err = scanHistory(rows)
		return err
	})
	if err != nil {
		return nil, err
	}

	return entries, nil
}
