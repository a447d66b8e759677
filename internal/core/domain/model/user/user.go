// Package user holds the acting user of every café operation: the read-only
// User record, its Role and the capabilities each role grants.
package user

import (
	"errors"

	"cafe/internal/core/domain/model/kernel"
	"cafe/internal/pkg/errs"
	"cafe/internal/pkg/guard"
)

var ErrSessionIsNotConstructed = errors.New("Session must be created via NewSession")

// User is an account as stored by account management. The order core never
// mutates it.
type User struct {
	login    kernel.Login
	role     Role
	phoneNum string
	favItems string
}

func NewUser(login kernel.Login, role Role, phoneNum, favItems string) (*User, error) {
	if err := errors.Join(login.Validate(), role.Validate()); err != nil {
		return nil, err
	}
	return &User{login: login, role: role, phoneNum: phoneNum, favItems: favItems}, nil
}

func (u *User) Login() kernel.Login { return u.login }
func (u *User) Role() Role { return u.role }
func (u *User) PhoneNum() string { return u.phoneNum }
func (u *User) FavItems() string { return u.favItems }

// Session identifies who performs an operation. Every command and query
// carries one explicitly.
type Session struct { //nolint:recvcheck //using for validation
	login kernel.Login
	role  Role
	guard guard.ConstructorGuard
}

func NewSession(login kernel.Login, role Role) (Session, error) {
	if err := errors.Join(login.Validate(), role.Validate()); err != nil {
		return Session{}, err
	}
	return Session{login: login, role: role, guard: guard.NewConstructorGuard()}, nil
}

// SessionFor opens a session acting as u.
func SessionFor(u *User) (Session, error) {
	if u == nil {
		return Session{}, errs.NewValueIsRequiredError("user")
	}
	return NewSession(u.login, u.role)
}

func (s Session) Validate() error {
	return s.guard.Validate(ErrSessionIsNotConstructed)
}

func (s Session) Login() kernel.Login {
	return s.login
}

func (s Session) Role() Role {
	return s.role
}

// Can reports whether the session's role holds capability.
func (s Session) Can(capability Capability) bool {
	return s.role.Can(capability)
}
