package order

import (
	"errors"
	"fmt"
	"time"

	"cafe/internal/core/domain/model/kernel"
	"cafe/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// ID is the database-generated identifier of an order. It is zero until the
// order is first persisted.
type ID int64

// Order is the aggregate root of a café order: the header (owner, paid flag,
// total) and its line items with their fulfillment status.
//
// Order follows these invariants:
//   - Must belong to a valid login
//   - Must hold at least one line item
//   - Total equals the sum of the line items' captured prices
//   - Items of a paid order cannot be replaced
//   - Only NotStarted items can be replaced
//   - Item statuses move forward only (see Status)
type Order struct {
	id        ID
	login     kernel.Login
	paid      bool
	total     kernel.Money
	createdAt time.Time
	items     []*Item

	// events recorded since the aggregate was loaded or created
	events []DomainEvent

	isConstructed bool
}

// NewOrder creates an unpersisted order for login with one NotStarted item
// per line. Duplicate lines are kept as separate items. The total is the sum
// of the line prices.
//
// Example:
//
//	latte, _ := kernel.MoneyFromString("4.50")
//	bagel, _ := kernel.MoneyFromString("3.00")
//	o, err := order.NewOrder(login, []order.Line{
//	    {Name: "Latte", Price: latte},
//	    {Name: "Bagel", Price: bagel},
//	}, false, time.Now())
//	// o.Total().String() == "7.50"
func NewOrder(login kernel.Login, lines []Line, paid bool, now time.Time) (*Order, error) {
	o := &Order{
		paid:          paid,
		createdAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(o.setLogin(login), o.setLines(lines, now)); err != nil {
		return nil, err
	}
	if err := o.recalculateTotal(); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder rebuilds a persisted order. The stored total is kept as is so
// drift from the item prices can be detected and corrected by the next mutation.
func RestoreOrder(
	id ID,
	login kernel.Login,
	paid bool,
	total kernel.Money,
	createdAt time.Time,
	items []*Item,
) (*Order, error) {
	o := &Order{
		id:            id,
		paid:          paid,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if id <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("order id", fmt.Errorf("%d is not greater than 0", id))
	}
	if err := errors.Join(o.setLogin(login), o.setTotal(total), o.setItems(items)); err != nil {
		return nil, err
	}

	return o, nil
}

func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

func (o *Order) ID() ID { return o.id }
func (o *Order) Login() kernel.Login { return o.login }
func (o *Order) IsPaid() bool { return o.paid }
func (o *Order) Total() kernel.Money { return o.total }
func (o *Order) CreatedAt() time.Time { return o.createdAt }
func (o *Order) IsPersisted() bool { return o.id > 0 }

// Items returns the line items ordered by id. The slice is a copy; the items
// are not.
func (o *Order) Items() []*Item {
	items := make([]*Item, len(o.items))
	copy(items, o.items)
	return items
}

// BelongsTo reports whether login owns the order.
func (o *Order) BelongsTo(login kernel.Login) bool {
	return o.login.IsEqual(login)
}

// CanModifyItems reports whether the line items may still be changed.
func (o *Order) CanModifyItems() bool {
	return !o.paid
}

// FindItem returns every item named name, lowest id first.
func (o *Order) FindItem(name string) []*Item {
	var found []*Item
	for _, item := range o.items {
		if item.name == name {
			found = append(found, item)
		}
	}
	return found
}

// ReplaceableItem returns the first item named name that can still be
// replaced.
//
// Errors:
//   - ConflictError "order already paid" if the order is paid
//   - ObjectNotFoundError if no item has that name
//   - ConflictError "item already started or finished" if none is NotStarted
func (o *Order) ReplaceableItem(name string) (*Item, error) {
	if !o.CanModifyItems() {
		return nil, errs.NewConflictError("order already paid")
	}

	candidates := o.FindItem(name)
	if len(candidates) == 0 {
		return nil, errs.NewObjectNotFoundError("item name", name)
	}
	for _, item := range candidates {
		if item.CanReplace() {
			return item, nil
		}
	}

	return nil, errs.NewConflictErrorWithCause(
		"item already started or finished",
		fmt.Errorf("%s is %s", name, candidates[0].status),
	)
}

// ReplaceItem swaps the first replaceable item named oldName for replacement
// and recomputes the total from all line items.
func (o *Order) ReplaceItem(oldName string, replacement Line, now time.Time) (*Item, error) {
	item, err := o.ReplaceableItem(oldName)
	if err != nil {
		return nil, err
	}

	oldTotal := o.total
	if err := item.replaceWith(replacement, now); err != nil {
		return nil, err
	}
	if err := o.recalculateTotal(); err != nil {
		return nil, err
	}

	o.raise(ItemReplaced{
		eventMeta: newEventMeta(now),
		OrderID:   o.id,
		ItemID:    item.id,
		OldName:   oldName,
		NewName:   item.name,
		OldTotal:  oldTotal.String(),
		NewTotal:  o.total.String(),
	})
	return item, nil
}

// AdvanceItem moves the first item named name that accepts the transition to
// target. Paid orders still progress: payment only freezes the item list.
func (o *Order) AdvanceItem(name string, target Status, force bool, now time.Time) (*Item, error) {
	candidates := o.FindItem(name)
	if len(candidates) == 0 {
		return nil, errs.NewObjectNotFoundError("item name", name)
	}

	var firstErr error
	for _, item := range candidates {
		from := item.status
		err := item.advance(target, force, now)
		if err == nil {
			o.raise(ItemStatusChanged{
				eventMeta: newEventMeta(now),
				OrderID:   o.id,
				ItemID:    item.id,
				Name:      item.name,
				From:      from.String(),
				To:        item.status.String(),
				Forced:    force,
			})
			return item, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}

	return nil, firstErr
}

// SetPaid sets the paid flag. Items and total are left untouched.
func (o *Order) SetPaid(paid bool, now time.Time) {
	o.paid = paid
	o.raise(PaidStatusChanged{eventMeta: newEventMeta(now), OrderID: o.id, Paid: paid})
}

// AssignIdentity stores the keys generated on first insert and records
// OrderPlaced. itemIDs must follow the order of Items().
func (o *Order) AssignIdentity(id ID, itemIDs []ItemID) error {
	if o.IsPersisted() {
		return errs.NewConflictErrorWithCause("order already persisted", fmt.Errorf("order %d", o.id))
	}
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("order id", fmt.Errorf("%d is not greater than 0", id))
	}
	if len(itemIDs) != len(o.items) {
		return errs.NewValueIsInvalidErrorWithCause(
			"item ids", fmt.Errorf("got %d ids for %d items", len(itemIDs), len(o.items)))
	}

	o.id = id
	names := make([]string, len(o.items))
	for i, item := range o.items {
		item.id = itemIDs[i]
		names[i] = item.name
	}

	o.raise(OrderPlaced{
		eventMeta: newEventMeta(o.createdAt),
		OrderID:   o.id,
		Login:     o.login.String(),
		Items:     names,
		Total:     o.total.String(),
		Paid:      o.paid,
	})
	return nil
}

func (o *Order) DomainEvents() []DomainEvent {
	events := make([]DomainEvent, len(o.events))
	copy(events, o.events)
	return events
}

func (o *Order) ClearDomainEvents() {
	o.events = nil
}

func (o *Order) raise(event DomainEvent) {
	o.events = append(o.events, event)
}

// recalculateTotal re-sums the captured prices of every line item.
func (o *Order) recalculateTotal() error {
	prices := make([]kernel.Money, len(o.items))
	for i, item := range o.items {
		prices[i] = item.price
	}
	total, err := kernel.SumMoney(prices...)
	if err != nil {
		return err
	}
	o.total = total
	return nil
}

func (o *Order) setLogin(login kernel.Login) error {
	if err := login.Validate(); err != nil {
		return err
	}
	o.login = login
	return nil
}

func (o *Order) setTotal(total kernel.Money) error {
	if err := total.Validate(); err != nil {
		return err
	}
	o.total = total
	return nil
}

func (o *Order) setLines(lines []Line, now time.Time) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	items := make([]*Item, 0, len(lines))
	var lineErrs error
	for _, line := range lines {
		item, err := NewItem(line, now)
		if err != nil {
			lineErrs = errors.Join(lineErrs, err)
			continue
		}
		items = append(items, item)
	}
	if lineErrs != nil {
		return lineErrs
	}
	o.items = items
	return nil
}

func (o *Order) setItems(items []*Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	o.items = items
	return nil
}
