package queries

import (
	"errors"
	"fmt"
	"time"

	"cafe/internal/core/domain/model/user"
	"cafe/internal/pkg/errs"
	"cafe/internal/pkg/guard"
)

// DefaultHistoryWindow is used when the caller gives no bounds.
const DefaultHistoryWindow = 24 * time.Hour

var ErrGetWindowHistoryQueryIsNotConstructed = errors.New(
	"GetWindowHistoryQuery must be created via NewGetWindowHistoryQuery constructor",
)

// GetWindowHistoryQuery asks for every item row last updated in [from, to).
type GetWindowHistoryQuery struct {
	session user.Session
	from    time.Time
	to      time.Time

	guard guard.ConstructorGuard
}

// NewGetWindowHistoryQuery fills missing bounds relative to now: a zero to
// becomes now and a zero from becomes to minus DefaultHistoryWindow.
func NewGetWindowHistoryQuery(session user.Session, from, to, now time.Time) (GetWindowHistoryQuery, error) {
	if err := session.Validate(); err != nil {
		return GetWindowHistoryQuery{}, err
	}

	if to.IsZero() {
		to = now
	}
	if from.IsZero() {
		from = to.Add(-DefaultHistoryWindow)
	}
	if !from.Before(to) {
		return GetWindowHistoryQuery{}, errs.NewValueIsInvalidErrorWithCause(
			"from", fmt.Errorf("%s is not before %s", from.Format(time.RFC3339), to.Format(time.RFC3339)))
	}

	return GetWindowHistoryQuery{
		session: session,
		from:    from.UTC(),
		to:      to.UTC(),
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (q GetWindowHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetWindowHistoryQueryIsNotConstructed)
}

func (q GetWindowHistoryQuery) Session() user.Session { return q.session }
func (q GetWindowHistoryQuery) From() time.Time       { return q.from }
func (q GetWindowHistoryQuery) To() time.Time         { return q.to }
