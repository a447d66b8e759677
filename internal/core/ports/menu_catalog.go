package ports

import (
	"context"

	"cafe/internal/core/domain/model/menu"
)

// MenuCatalog is read-only access to the menu.
type MenuCatalog interface {
	// Lookup returns the entry named name. found is false, with a nil error,
	// when the menu has no such entry.
	Lookup(ctx context.Context, name string) (item *menu.Item, found bool, err error)
}
