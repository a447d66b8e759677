package queries

import (
	"context"
	"time"

	"cafe/internal/core/domain/services"

	"gorm.io/gorm"
)

// GetRecentHistoryQueryHandler reads a login's latest item rows. Rows of
// other logins are never returned, whatever the caller's role.
type GetRecentHistoryQueryHandler struct {
	db   *gorm.DB
	read readOptions
	gate services.AccessGate
}

// NewGetRecentHistoryQueryHandler bounds every attempt by timeout; transient
// failures are retried with backoff.
func NewGetRecentHistoryQueryHandler(db *gorm.DB, timeout time.Duration) GetRecentHistoryQueryHandler {
	return GetRecentHistoryQueryHandler{
		db:   db,
		read: defaultReadOptions(timeout),
		gate: services.NewAccessGate(),
	}
}

func (h GetRecentHistoryQueryHandler) Handle(ctx context.Context, query GetRecentHistoryQuery) ([]HistoryEntry, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	if err := h.gate.AuthorizeHistory(query.Session(), query.Login()); err != nil {
		return nil, err
	}

	var entries []HistoryEntry
	err := h.read.run(ctx, "get recent history", func(ctx context.Context) error {
		rows, err := h.db.WithContext(ctx).Raw(historySelect+`
		WHERE o.login = ?
		ORDER BY o.id DESC, i.id DESC
		LIMIT ?
	`, query.Login().String(), query.Limit()).Rows()
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
