// Package menu models the café catalog as the order core reads it. Catalog
// maintenance happens elsewhere; entries are only looked up by name.
package menu

import (
	"errors"
	"strings"

	"cafe/internal/core/domain/model/kernel"
	"cafe/internal/core/domain/model/order"
	"cafe/internal/pkg/errs"
	"cafe/internal/pkg/guard"
)

var ErrItemIsNotConstructed = errors.New("menu Item must be created via NewItem")

// Item is a catalog entry keyed by its unique name.
type Item struct {
	name        string
	kind        string
	price       kernel.Money
	description string
	imageURL    string
	guard       guard.ConstructorGuard
}

func NewItem(name, kind string, price kernel.Money, description, imageURL string) (*Item, error) {
	item := &Item{
		kind:        kind,
		description: description,
		imageURL:    imageURL,
		guard:       guard.NewConstructorGuard(),
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errs.NewValueIsRequiredError("menu item name")
	}
	if err := price.Validate(); err != nil {
		return nil, err
	}
	item.name = name
	item.price = price

	return item, nil
}

func (i *Item) Validate() error {
	if i == nil {
		return ErrItemIsNotConstructed
	}
	return i.guard.Validate(ErrItemIsNotConstructed)
}

func (i *Item) Name() string {
	return i.name
}

func (i *Item) Kind() string {
	return i.kind
}

func (i *Item) Price() kernel.Money {
	return i.price
}

func (i *Item) Description() string {
	return i.description
}

func (i *Item) ImageURL() string {
	return i.imageURL
}

// Line captures the entry's current price for an order.
func (i *Item) Line() order.Line {
	return order.Line{Name: i.name, Price: i.price}
}
