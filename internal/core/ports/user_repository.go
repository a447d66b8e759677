package ports

import (
	"context"

	"cafe/internal/core/domain/model/kernel"
	"cafe/internal/core/domain/model/user"
)

// UserRepository is read-only access to accounts.
type UserRepository interface {
	// Get returns errs.ObjectNotFoundError when login has no account.
	Get(ctx context.Context, login kernel.Login) (*user.User, error)
}
