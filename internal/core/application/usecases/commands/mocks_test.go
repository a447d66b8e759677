package commands_test

import (
	"context"
	"testing"
	"time"

	"cafe/internal/core/application/usecases/commands"
	"cafe/internal/core/domain/model/kernel"
	"cafe/internal/core/domain/model/menu"
	"cafe/internal/core/domain/model/order"
	"cafe/internal/core/domain/model/user"
	"cafe/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id order.ID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) GetForUpdate(ctx context.Context, id order.ID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

type MockMenuCatalog struct{ mock.Mock }

func (m *MockMenuCatalog) Lookup(ctx context.Context, name string) (*menu.Item, bool, error) {
	args := m.Called(ctx, name)
	item, _ := args.Get(0).(*menu.Item)
	return item, args.Bool(1), args.Error(2)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockOrderMenuUoW struct {
	MockOrderUoW
}

func (m *MockOrderMenuUoW) MenuCatalog() ports.MenuCatalog {
	args := m.Called()
	return args.Get(0).(ports.MenuCatalog)
}

type MockOrderMenuUoWFactory struct{ mock.Mock }

func (m *MockOrderMenuUoWFactory) Create() commands.OrderMenuUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderMenuUoW)
}

var orderTime = time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)

func session(t *testing.T, login string, role user.Role) user.Session {
	t.Helper()
	l, err := kernel.NewLogin(login)
	require.NoError(t, err)
	s, err := user.NewSession(l, role)
	require.NoError(t, err)
	return s
}

func money(t *testing.T, s string) kernel.Money {
	t.Helper()
	m, err := kernel.MoneyFromString(s)
	require.NoError(t, err)
	return m
}

func menuItem(t *testing.T, name, price string) *menu.Item {
	t.Helper()
	item, err := menu.NewItem(name, "drink", money(t, price), "", "")
	require.NoError(t, err)
	return item
}

// storedOrder rebuilds alice's order 42: Latte 4.50 (item 1) and Bagel 3.00
// (item 2), with the given statuses.
func storedOrder(t *testing.T, paid bool, latte, bagel order.Status) *order.Order {
	t.Helper()
	l, err := kernel.NewLogin("alice")
	require.NoError(t, err)
	i1, err := order.RestoreItem(1, order.Line{Name: "Latte", Price: money(t, "4.50")}, latte, orderTime, "")
	require.NoError(t, err)
	i2, err := order.RestoreItem(2, order.Line{Name: "Bagel", Price: money(t, "3.00")}, bagel, orderTime, "")
	require.NoError(t, err)
	o, err := order.RestoreOrder(42, l, paid, money(t, "7.50"), orderTime, []*order.Item{i1, i2})
	require.NoError(t, err)
	return o
}
