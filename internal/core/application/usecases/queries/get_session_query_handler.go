package queries

import (
	"context"
	"time"

	"cafe/internal/core/domain/model/user"
	"cafe/internal/core/ports"
)

type GetSessionQueryHandler struct {
	users ports.UserRepository
	read  readOptions
}

func NewGetSessionQueryHandler(users ports.UserRepository, timeout time.Duration) GetSessionQueryHandler {
	return GetSessionQueryHandler{users: users, read: defaultReadOptions(timeout)}
}

// Handle returns errs.ObjectNotFoundError for an unknown login.
func (h GetSessionQueryHandler) Handle(ctx context.Context, query GetSessionQuery) (user.Session, error) {
	if err := query.Validate(); err != nil {
		return user.Session{}, err
	}

	var u *user.User
	err := h.read.run(ctx, "get user", func(ctx context.Context) error {
		var err error
		u, err = h.users.Get(ctx, query.Login())
		return err
	})
	if err != nil {
		return user.Session{}, err
	}

	return user.SessionFor(u)
}
