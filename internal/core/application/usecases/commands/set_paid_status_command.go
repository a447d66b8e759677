package commands

import (
	"errors"
	"fmt"

	"cafe/internal/core/domain/model/order"
	"cafe/internal/core/domain/model/user"
	"cafe/internal/pkg/errs"
	"cafe/internal/pkg/guard"
)

var ErrSetPaidStatusCommandIsNotConstructed = errors.New(
	"SetPaidStatusCommand must be created via NewSetPaidStatusCommand constructor",
)

type SetPaidStatusCommand struct { //nolint:recvcheck //using for validation
	session user.Session
	orderID order.ID
	paid    bool

	guard guard.ConstructorGuard
}

func NewSetPaidStatusCommand(session user.Session, orderID order.ID, paid bool) (SetPaidStatusCommand, error) {
	if err := session.Validate(); err != nil {
		return SetPaidStatusCommand{}, err
	}
	if orderID <= 0 {
		return SetPaidStatusCommand{}, errs.NewValueIsInvalidErrorWithCause(
			"orderID", fmt.Errorf("%d is not greater than 0", orderID))
	}

	return SetPaidStatusCommand{
		session: session,
		orderID: orderID,
		paid:    paid,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c SetPaidStatusCommand) Validate() error {
	return c.guard.Validate(ErrSetPaidStatusCommandIsNotConstructed)
}

func (c SetPaidStatusCommand) Session() user.Session {
	return c.session
}

func (c SetPaidStatusCommand) OrderID() order.ID {
	return c.orderID
}

func (c SetPaidStatusCommand) Paid() bool {
	return c.paid
}
