// Package commands contains the café operations that modify state.
// Every command follows the same pattern: guarded construction, capability
// check, one transaction around load, mutate and save.
package commands

import (
	"context"

	"cafe/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// MenuCatalogFactory provides access to the menu within a transaction.
	MenuCatalogFactory interface {
		MenuCatalog() ports.MenuCatalog
	}

	// OrderUoW manages transactions that only touch orders.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// OrderMenuUoW manages transactions that price order lines from the menu.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   item, found, err := uow.MenuCatalog().Lookup(ctx, "Latte")
	//   // ... build or change the order
	//   err = uow.OrderRepository().Update(ctx, o)
	//
	//   err = uow.Commit(ctx)
	OrderMenuUoW interface {
		TxManager
		OrderRepoFactory
		MenuCatalogFactory
	}

	// OrderMenuUoWFactory creates new order and menu unit of work instances.
	OrderMenuUoWFactory interface {
		Create() OrderMenuUoW
	}
)
