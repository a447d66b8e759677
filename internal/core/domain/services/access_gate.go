package services

import (
	"errors"

	"cafe/internal/core/domain/model/kernel"
	"cafe/internal/core/domain/model/order"
	"cafe/internal/core/domain/model/user"
	"cafe/internal/pkg/errs"
)

// ErrOrderNotOwned is the cause attached when a session asks for an order it
// may not see. Existence of other users' orders is not revealed.
var ErrOrderNotOwned = errors.New("order not found or not owned")

// AccessGate is the single place where payment state, item state and role
// capabilities decide whether an operation may proceed.
//
// Checks for a replacement run in a fixed order so that each failure has its
// own reason:
//  1. the order belongs to the session (ObjectNotFoundError)
//  2. the order is unpaid (ConflictError "order already paid")
//  3. an item with the old name exists (ObjectNotFoundError)
//  4. that item has not started (ConflictError "item already started or finished")
//
// The menu check for the replacement name comes after the gate.
type AccessGate struct{}

func NewAccessGate() AccessGate {
	return AccessGate{}
}

// CanModifyItems reports whether o's line items may still change.
func (AccessGate) CanModifyItems(o *order.Order) bool {
	return o.CanModifyItems()
}

// CanReplace reports whether item may be swapped for another menu item.
func (AccessGate) CanReplace(item *order.Item) bool {
	return item.CanReplace()
}

// Authorize fails with AccessDeniedError when the session's role lacks capability.
func (AccessGate) Authorize(session user.Session, capability user.Capability) error {
	if err := session.Validate(); err != nil {
		return err
	}
	if !session.Can(capability) {
		return errs.NewAccessDeniedError(session.Login().String(), capability.String())
	}
	return nil
}

// AuthorizeOwner fails unless o belongs to the session.
func (g AccessGate) AuthorizeOwner(session user.Session, o *order.Order) error {
	if err := session.Validate(); err != nil {
		return err
	}
	if !o.BelongsTo(session.Login()) {
		return errs.NewObjectNotFoundErrorWithCause("orderID", o.ID(), ErrOrderNotOwned)
	}
	return nil
}

// AuthorizeView lets owners and staff read an order.
func (g AccessGate) AuthorizeView(session user.Session, o *order.Order) error {
	if err := session.Validate(); err != nil {
		return err
	}
	if o.BelongsTo(session.Login()) || session.Can(user.ViewOrderOfOthers) {
		return nil
	}
	return errs.NewObjectNotFoundErrorWithCause("orderID", o.ID(), ErrOrderNotOwned)
}

// AuthorizeReplace runs steps 1 to 4 and returns the item that would be replaced.
func (g AccessGate) AuthorizeReplace(session user.Session, o *order.Order, oldName string) (*order.Item, error) {
	if err := g.Authorize(session, user.ReplaceOwnItems); err != nil {
		return nil, err
	}
	if err := g.AuthorizeOwner(session, o); err != nil {
		return nil, err
	}
	return o.ReplaceableItem(oldName)
}

// AuthorizeAdvance checks the capabilities an item status change needs.
func (g AccessGate) AuthorizeAdvance(session user.Session, force bool) error {
	if err := g.Authorize(session, user.AdvanceItemStatus); err != nil {
		return err
	}
	if force {
		return g.Authorize(session, user.ForceFinishItem)
	}
	return nil
}

// AuthorizeHistory lets a session read its own history, and staff read anyone's.
func (g AccessGate) AuthorizeHistory(session user.Session, login kernel.Login) error {
	if err := g.Authorize(session, user.ViewOwnHistory); err != nil {
		return err
	}
	if session.Login().IsEqual(login) {
		return nil
	}
	return g.Authorize(session, user.ViewHistoryOfOthers)
}
