package postgres

import (
	"context"

	"cafe/internal/core/domain/model/kernel"
	"cafe/internal/core/domain/model/menu"
	"cafe/internal/core/domain/model/order"
	"cafe/internal/core/domain/model/user"
	"cafe/internal/core/ports"
)

// binder narrows a caller context to the lifetime of the unit of work.
type binder func(ctx context.Context) (context.Context, context.CancelFunc)

type boundOrderRepository struct {
	inner ports.OrderRepository
	bound binder
}

func (r boundOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	ctx, cancel := r.bound(ctx)
	defer cancel()
	return r.inner.Add(ctx, aggregate)
}

func (r boundOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	ctx, cancel := r.bound(ctx)
	defer cancel()
	return r.inner.Update(ctx, aggregate)
}

func (r boundOrderRepository) Get(ctx context.Context, id order.ID) (*order.Order, error) {
	ctx, cancel := r.bound(ctx)
	defer cancel()
	return r.inner.Get(ctx, id)
}

func (r boundOrderRepository) GetForUpdate(ctx context.Context, id order.ID) (*order.Order, error) {
	ctx, cancel := r.bound(ctx)
	defer cancel()
	return r.inner.GetForUpdate(ctx, id)
}

type boundMenuCatalog struct {
	inner ports.MenuCatalog
	bound binder
}

func (c boundMenuCatalog) Lookup(ctx context.Context, name string) (*menu.Item, bool, error) {
	ctx, cancel := c.bound(ctx)
	defer cancel()
	return c.inner.Lookup(ctx, name)
}

type boundUserRepository struct {
	inner ports.UserRepository
	bound binder
}

func (r boundUserRepository) Get(ctx context.Context, login kernel.Login) (*user.User, error) {
	ctx, cancel := r.bound(ctx)
	defer cancel()
	return r.inner.Get(ctx, login)
}
