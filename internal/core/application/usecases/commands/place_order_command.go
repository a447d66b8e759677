package commands

import (
	"errors"

	"cafe/internal/core/domain/model/user"
	"cafe/internal/pkg/guard"
)

// MaxItemsPerOrder caps how many selections one order may carry.
const MaxItemsPerOrder = 50

var (
	ErrPlaceOrderCommandIsNotConstructed = errors.New(
		"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
	)
	ErrItemsAreRequired = errors.New("at least one item is required")
	ErrTooManyItems     = errors.New("too many items in one order")
)

// PlaceOrderCommand asks to create an order for the session's user from a
// list of menu item names. Repeating a name orders the item again.
//
// Example:
//
//	cmd, err := NewPlaceOrderCommand(session, []string{"Latte", "Bagel"}, false)
//	if err != nil {
//	    return fmt.Errorf("invalid order: %w", err)
//	}
//
//	result, err := handler.Handle(ctx, cmd)
//	// result.OrderID, result.Total, result.RejectedItems
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	session   user.Session
	itemNames []string
	paid      bool

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand validates the session and the number of selections.
// Whether each name is on the menu is decided by the handler.
func NewPlaceOrderCommand(session user.Session, itemNames []string, paid bool) (PlaceOrderCommand, error) {
	cmd := PlaceOrderCommand{
		paid:  paid,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setSession(session),
		cmd.setItemNames(itemNames),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return cmd, nil
}

func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

func (c PlaceOrderCommand) Session() user.Session {
	return c.session
}

// ItemNames returns a copy of the selections in the order given.
func (c PlaceOrderCommand) ItemNames() []string {
	names := make([]string, len(c.itemNames))
	copy(names, c.itemNames)
	return names
}

// Paid is the payment choice made at the counter when ordering.
func (c PlaceOrderCommand) Paid() bool {
	return c.paid
}

func (c *PlaceOrderCommand) setSession(session user.Session) error {
	if err := session.Validate(); err != nil {
		return err
	}
	c.session = session
	return nil
}

func (c *PlaceOrderCommand) setItemNames(itemNames []string) error {
	if len(itemNames) == 0 {
		return ErrItemsAreRequired
	}
	if len(itemNames) > MaxItemsPerOrder {
		return ErrTooManyItems
	}
	c.itemNames = make([]string, len(itemNames))
	copy(c.itemNames, itemNames)
	return nil
}
