package commands

import (
	"errors"
	"fmt"
	"strings"

	"cafe/internal/core/domain/model/order"
	"cafe/internal/core/domain/model/user"
	"cafe/internal/pkg/errs"
	"cafe/internal/pkg/guard"
)

var ErrAdvanceItemStatusCommandIsNotConstructed = errors.New(
	"AdvanceItemStatusCommand must be created via NewAdvanceItemStatusCommand constructor",
)

// AdvanceItemStatusCommand moves one item of an order to Started or Finished.
// Force lets a manager finish an item from any state.
type AdvanceItemStatusCommand struct { //nolint:recvcheck //using for validation
	session  user.Session
	orderID  order.ID
	itemName string
	target   order.Status
	force    bool

	guard guard.ConstructorGuard
}

func NewAdvanceItemStatusCommand(
	session user.Session,
	orderID order.ID,
	itemName string,
	target order.Status,
	force bool,
) (AdvanceItemStatusCommand, error) {
	cmd := AdvanceItemStatusCommand{
		force: force,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setSession(session),
		cmd.setOrderID(orderID),
		cmd.setItemName(itemName),
		cmd.setTarget(target),
	); err != nil {
		return AdvanceItemStatusCommand{}, err
	}

	return cmd, nil
}

func (c AdvanceItemStatusCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceItemStatusCommandIsNotConstructed)
}

func (c AdvanceItemStatusCommand) Session() user.Session {
	return c.session
}

func (c AdvanceItemStatusCommand) OrderID() order.ID {
	return c.orderID
}

func (c AdvanceItemStatusCommand) ItemName() string {
	return c.itemName
}

func (c AdvanceItemStatusCommand) Target() order.Status {
	return c.target
}

func (c AdvanceItemStatusCommand) Force() bool {
	return c.force
}

func (c *AdvanceItemStatusCommand) setSession(session user.Session) error {
	if err := session.Validate(); err != nil {
		return err
	}
	c.session = session
	return nil
}

func (c *AdvanceItemStatusCommand) setOrderID(orderID order.ID) error {
	if orderID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("orderID", fmt.Errorf("%d is not greater than 0", orderID))
	}
	c.orderID = orderID
	return nil
}

func (c *AdvanceItemStatusCommand) setItemName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("itemName")
	}
	c.itemName = name
	return nil
}

func (c *AdvanceItemStatusCommand) setTarget(target order.Status) error {
	// Moving back to NotStarted is a valid value but a rejected transition,
	// so it is left to the state machine.
	if err := target.Validate(); err != nil {
		return err
	}
	c.target = target
	return nil
}
