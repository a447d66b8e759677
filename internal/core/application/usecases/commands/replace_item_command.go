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

var ErrReplaceItemCommandIsNotConstructed = errors.New(
	"ReplaceItemCommand must be created via NewReplaceItemCommand constructor",
)

// ReplaceItemCommand asks to swap one not yet started item of the session's
// own unpaid order for another menu item.
type ReplaceItemCommand struct { //nolint:recvcheck //using for validation
	session user.Session
	orderID order.ID
	oldName string
	newName string

	guard guard.ConstructorGuard
}

func NewReplaceItemCommand(session user.Session, orderID order.ID, oldName, newName string) (ReplaceItemCommand, error) {
	cmd := ReplaceItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setSession(session),
		cmd.setOrderID(orderID),
		cmd.setNames(oldName, newName),
	); err != nil {
		return ReplaceItemCommand{}, err
	}

	return cmd, nil
}

func (c ReplaceItemCommand) Validate() error {
	return c.guard.Validate(ErrReplaceItemCommandIsNotConstructed)
}

func (c ReplaceItemCommand) Session() user.Session {
	return c.session
}

func (c ReplaceItemCommand) OrderID() order.ID {
	return c.orderID
}

func (c ReplaceItemCommand) OldName() string {
	return c.oldName
}

func (c ReplaceItemCommand) NewName() string {
	return c.newName
}

func (c *ReplaceItemCommand) setSession(session user.Session) error {
	if err := session.Validate(); err != nil {
		return err
	}
	c.session = session
	return nil
}

func (c *ReplaceItemCommand) setOrderID(orderID order.ID) error {
	if orderID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("orderID", fmt.Errorf("%d is not greater than 0", orderID))
	}
	c.orderID = orderID
	return nil
}

func (c *ReplaceItemCommand) setNames(oldName, newName string) error {
	oldName, newName = strings.TrimSpace(oldName), strings.TrimSpace(newName)
	var err error
	if oldName == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("oldItemName"))
	}
	if newName == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("newItemName"))
	}
	if err != nil {
		return err
	}
	c.oldName, c.newName = oldName, newName
	return nil
}
