package queries

import (
	"errors"

	"cafe/internal/core/domain/model/kernel"
	"cafe/internal/pkg/guard"
)

var ErrGetSessionQueryIsNotConstructed = errors.New(
	"GetSessionQuery must be created via NewGetSessionQuery constructor",
)

// GetSessionQuery resolves a login to the session it acts under.
type GetSessionQuery struct {
	login kernel.Login
	guard guard.ConstructorGuard
}

func NewGetSessionQuery(login string) (GetSessionQuery, error) {
	l, err := kernel.NewLogin(login)
	if err != nil {
		return GetSessionQuery{}, err
	}
	return GetSessionQuery{login: l, guard: guard.NewConstructorGuard()}, nil
}

func (q GetSessionQuery) Validate() error {
	return q.guard.Validate(ErrGetSessionQueryIsNotConstructed)
}

func (q GetSessionQuery) Login() kernel.Login {
	return q.login
}
