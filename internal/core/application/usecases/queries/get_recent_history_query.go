package queries

import (
	"errors"

	"cafe/internal/core/domain/model/kernel"
	"cafe/internal/core/domain/model/user"
	"cafe/internal/pkg/guard"
)

const (
	DefaultHistoryLimit = 5
	MaxHistoryLimit     = 50
)

var ErrGetRecentHistoryQueryIsNotConstructed = errors.New(
	"GetRecentHistoryQuery must be created via NewGetRecentHistoryQuery constructor",
)

// GetRecentHistoryQuery asks for the latest item rows of one login, newest
// order first.
//
// Example:
//
//	query, err := NewGetRecentHistoryQuery(session, session.Login(), 0)
//	entries, err := handler.Handle(ctx, query) // at most 5 rows
type GetRecentHistoryQuery struct {
	session user.Session
	login   kernel.Login
	limit   int

	guard guard.ConstructorGuard
}

// NewGetRecentHistoryQuery normalizes limit: zero or negative means
// DefaultHistoryLimit and anything above MaxHistoryLimit is capped.
func NewGetRecentHistoryQuery(session user.Session, login kernel.Login, limit int) (GetRecentHistoryQuery, error) {
	if err := errors.Join(session.Validate(), login.Validate()); err != nil {
		return GetRecentHistoryQuery{}, err
	}

	switch {
	case limit <= 0:
		limit = DefaultHistoryLimit
	case limit > MaxHistoryLimit:
		limit = MaxHistoryLimit
	}

	return GetRecentHistoryQuery{
		session: session,
		login:   login,
		limit:   limit,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (q GetRecentHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetRecentHistoryQueryIsNotConstructed)
}

func (q GetRecentHistoryQuery) Session() user.Session { return q.session }
func (q GetRecentHistoryQuery) Login() kernel.Login   { return q.login }
func (q GetRecentHistoryQuery) Limit() int            { return q.limit }
