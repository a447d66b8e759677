package kernel

import (
	"fmt"
	"strings"

	"cafe/internal/pkg/errs"
	"cafe/internal/pkg/guard"
)

// LoginMaxLength matches the width of the users.login column.
const LoginMaxLength = 50

var ErrLoginIsNotConstructed = errs.NewValueIsRequiredError("login must be created via NewLogin")

// Login identifies a user. It owns orders and is the key the session carries.
type Login struct { //nolint:recvcheck //using for validation
	value string
	guard guard.ConstructorGuard
}

// NewLogin trims surrounding whitespace and rejects empty or over-long values.
func NewLogin(value string) (Login, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return Login{}, errs.NewValueIsRequiredError("login")
	}
	if len(value) > LoginMaxLength {
		return Login{}, errs.NewValueIsInvalidErrorWithCause(
			"login", fmt.Errorf("length %d exceeds %d", len(value), LoginMaxLength))
	}
	return Login{value: value, guard: guard.NewConstructorGuard()}, nil
}

func (l Login) Validate() error {
	return l.guard.Validate(ErrLoginIsNotConstructed)
}

func (l Login) String() string {
	return l.value
}

func (l Login) IsEqual(other Login) bool {
	return l.value == other.value
}
