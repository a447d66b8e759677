package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"cafe/internal/core/domain/model/kernel"
	"cafe/internal/pkg/errs"
	"cafe/internal/pkg/guard"
)

// ItemNameMaxLength matches the width of the menu.item_name column.
const ItemNameMaxLength = 50

var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem or RestoreItem")

// ItemID is the surrogate key of a line item row. It is zero until the
// item is persisted.
type ItemID int64

// Line is a menu selection resolved to its current catalog price.
type Line struct {
	Name  string
	Price kernel.Money
}

// Item is one line item of an order together with its fulfillment status.
// An order may hold several items with the same name; each is tracked
// separately.
type Item struct {
	id          ItemID
	name        string
	price       kernel.Money
	status      Status
	lastUpdated time.Time
	comments    string
	guard       guard.ConstructorGuard
}

// NewItem creates a NotStarted item for line, stamped with now.
func NewItem(line Line, now time.Time) (*Item, error) {
	item := &Item{
		status:      NotStarted,
		lastUpdated: now,
		guard:       guard.NewConstructorGuard(),
	}
	if err := errors.Join(item.setName(line.Name), item.setPrice(line.Price)); err != nil {
		return nil, err
	}
	return item, nil
}

// RestoreItem rebuilds a persisted item.
func RestoreItem(
	id ItemID,
	line Line,
	status Status,
	lastUpdated time.Time,
	comments string,
) (*Item, error) {
	item := &Item{
		id:          id,
		lastUpdated: lastUpdated,
		comments:    comments,
		guard:       guard.NewConstructorGuard(),
	}
	if err := errors.Join(
		item.setName(line.Name),
		item.setPrice(line.Price),
		item.setStatus(status),
	); err != nil {
		return nil, err
	}
	return item, nil
}

func (i *Item) Validate() error {
	if i == nil {
		return ErrItemIsNotConstructed
	}
	return i.guard.Validate(ErrItemIsNotConstructed)
}

func (i *Item) ID() ItemID { return i.id }
func (i *Item) Name() string { return i.name }
func (i *Item) Price() kernel.Money { return i.price }
func (i *Item) Status() Status { return i.status }
func (i *Item) LastUpdated() time.Time { return i.lastUpdated }
func (i *Item) Comments() string { return i.comments }

// CanReplace reports whether the item may still be swapped for another menu item.
func (i *Item) CanReplace() bool {
	return i.status.IsReplaceable()
}

func (i *Item) replaceWith(line Line, now time.Time) error {
	if !i.CanReplace() {
		return errs.NewConflictErrorWithCause(
			"item already started or finished",
			fmt.Errorf("%s is %s", i.name, i.status),
		)
	}
	if err := errors.Join(i.setName(line.Name), i.setPrice(line.Price)); err != nil {
		return err
	}
	i.lastUpdated = now
	return nil
}

func (i *Item) advance(target Status, force bool, now time.Time) error {
	next, err := i.status.AdvanceTo(target, force)
	if err != nil {
		return err
	}
	i.status = next
	i.lastUpdated = now
	return nil
}

func (i *Item) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("item name")
	}
	if len(name) > ItemNameMaxLength {
		return errs.NewValueIsInvalidErrorWithCause(
			"item name", fmt.Errorf("length %d exceeds %d", len(name), ItemNameMaxLength))
	}
	i.name = name
	return nil
}

func (i *Item) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}
	i.price = price
	return nil
}

func (i *Item) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	i.status = status
	return nil
}
