package http_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	httpadapter "cafe/internal/adapters/in/http"
	"cafe/internal/core/application/usecases/commands"
	"cafe/internal/core/application/usecases/queries"
	"cafe/internal/core/domain/model/kernel"
	"cafe/internal/core/domain/model/menu"
	"cafe/internal/core/domain/model/order"
	"cafe/internal/core/domain/model/user"
	"cafe/internal/core/ports"
	"cafe/internal/generated/servers"
	"cafe/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryStore is an in-memory stand-in for one database, serving every
// repository port. Transactions are no-ops.
type memoryStore struct {
	mu     sync.Mutex
	nextID order.ID
	orders map[order.ID]*order.Order
	menu   map[string]*menu.Item
	users  map[string]*user.User
}

func (s *memoryStore) Begin(context.Context) error    { return nil }
func (s *memoryStore) Commit(context.Context) error   { return nil }
func (s *memoryStore) Rollback(context.Context) error { return nil }

func (s *memoryStore) OrderRepository() ports.OrderRepository { return s }
func (s *memoryStore) MenuCatalog() ports.MenuCatalog         { return s }

func (s *memoryStore) Add(_ context.Context, o *order.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	ids := make([]order.ItemID, len(o.Items()))
	for i := range ids {
		ids[i] = order.ItemID(i + 1)
	}
	if err := o.AssignIdentity(s.nextID, ids); err != nil {
		return err
	}
	s.orders[o.ID()] = o
	return nil
}

func (s *memoryStore) Update(context.Context, *order.Order) error { return nil }

func (s *memoryStore) Get(_ context.Context, id order.ID) (*order.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.orders[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("orderID", id)
	}
	return o, nil
}

func (s *memoryStore) GetForUpdate(ctx context.Context, id order.ID) (*order.Order, error) {
	return s.Get(ctx, id)
}

func (s *memoryStore) Lookup(_ context.Context, name string) (*menu.Item, bool, error) {
	item, ok := s.menu[name]
	return item, ok, nil
}

type userRepository struct{ store *memoryStore }

func (r userRepository) Get(_ context.Context, login kernel.Login) (*user.User, error) {
	u, ok := r.store.users[login.String()]
	if !ok {
		return nil, errs.NewObjectNotFoundError("login", login.String())
	}
	return u, nil
}

type orderMenuFactory struct{ store *memoryStore }

func (f orderMenuFactory) Create() commands.OrderMenuUoW { return f.store }

type orderFactory struct{ store *memoryStore }

func (f orderFactory) Create() commands.OrderUoW { return f.store }

func newStore(t *testing.T) *memoryStore {
	t.Helper()
	store := &memoryStore{
		orders: map[order.ID]*order.Order{},
		menu:   map[string]*menu.Item{},
		users:  map[string]*user.User{},
	}
	for name, price := range map[string]string{"Latte": "4.50", "Bagel": "3.00", "Mocha": "5.00"} {
		p, err := kernel.MoneyFromString(price)
		require.NoError(t, err)
		item, err := menu.NewItem(name, "food", p, "", "")
		require.NoError(t, err)
		store.menu[name] = item
	}
	for login, role := range map[string]user.Role{"alice": user.Customer, "eve": user.Employee, "carol": user.Manager} {
		l, err := kernel.NewLogin(login)
		require.NoError(t, err)
		u, err := user.NewUser(l, role, "", "")
		require.NoError(t, err)
		store.users[login] = u
	}
	return store
}

func newTestRouter(t *testing.T, store *memoryStore) *echo.Echo {
	t.Helper()
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	server := httpadapter.NewServer(httpadapter.Handlers{
		PlaceOrder:        commands.NewPlaceOrderCommandHandler(orderMenuFactory{store}),
		ReplaceItem:       commands.NewReplaceItemCommandHandler(orderMenuFactory{store}),
		AdvanceItemStatus: commands.NewAdvanceItemStatusCommandHandler(orderFactory{store}),
		SetPaidStatus:     commands.NewSetPaidStatusCommandHandler(orderFactory{store}),
		GetSession:        queries.NewGetSessionQueryHandler(userRepository{store}, time.Second),
		GetOrder:          queries.NewGetOrderQueryHandler(store, time.Second),
	}, logger)

	e, err := httpadapter.NewRouter(server, logger)
	require.NoError(t, err)
	return e
}

func do(e *echo.Echo, method, path, login, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if login != "" {
		req.Header.Set("X-User-Login", login)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) servers.Error {
	t.Helper()
	var e servers.Error
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &e))
	return e
}

func TestRouter_Health(t *testing.T) {
	e := newTestRouter(t, newStore(t))
	rec := do(e, http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Healthy", rec.Body.String())
}

func TestRouter_SwaggerDocument(t *testing.T) {
	e := newTestRouter(t, newStore(t))
	rec := do(e, http.MethodGet, "/swagger/doc.json", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Cafe orders")
}

func TestRouter_PlaceOrder(t *testing.T) {
	store := newStore(t)
	e := newTestRouter(t, store)

	rec := do(e, http.MethodPost, "/api/v1/orders", "alice", `{"items":["Latte","Unicorn","Bagel"]}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var placed servers.PlacedOrder
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &placed))
	assert.Equal(t, int64(1), placed.OrderId)
	assert.Equal(t, "7.50", placed.Total)
	assert.Equal(t, []string{"Unicorn"}, placed.RejectedItems)
	assert.False(t, store.orders[1].IsPaid())
}

func TestRouter_GetOrder(t *testing.T) {
	store := newStore(t)
	e := newTestRouter(t, store)

	rec := do(e, http.MethodPost, "/api/v1/orders", "alice", `{"items":["Latte","Latte"]}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = do(e, http.MethodGet, "/api/v1/orders/1", "eve", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var got servers.Order
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "alice", got.Login)
	assert.Equal(t, "9.00", got.Total)
	assert.Len(t, got.Items, 2)

	rec = do(e, http.MethodGet, "/api/v1/orders/99", "alice", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouter_RequestValidation(t *testing.T) {
	e := newTestRouter(t, newStore(t))

	tests := []struct {
		name   string
		method string
		path   string
		login  string
		body   string
	}{
		{name: "missing login header", method: http.MethodPost, path: "/api/v1/orders", body: `{"items":["Latte"]}`},
		{name: "empty item list", method: http.MethodPost, path: "/api/v1/orders", login: "alice", body: `{"items":[]}`},
		{name: "unknown status", method: http.MethodPost, path: "/api/v1/orders/1/items/Latte/status",
			login: "eve", body: `{"status":"Cooking"}`},
		{name: "non numeric order id", method: http.MethodGet, path: "/api/v1/orders/abc", login: "alice"},
		{name: "bad window bound", method: http.MethodGet, path: "/api/v1/history/window?from=yesterday", login: "eve"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(e, tt.method, tt.path, tt.login, tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
			assert.Equal(t, http.StatusBadRequest, decodeError(t, rec).Code)
		})
	}
}

func TestRouter_UnknownUser(t *testing.T) {
	e := newTestRouter(t, newStore(t))
	rec := do(e, http.MethodPost, "/api/v1/orders", "mallory", `{"items":["Latte"]}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRouter_OrderLifecycle(t *testing.T) {
	store := newStore(t)
	e := newTestRouter(t, store)

	rec := do(e, http.MethodPost, "/api/v1/orders", "alice", `{"items":["Latte","Bagel"]}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = do(e, http.MethodPut, "/api/v1/orders/1/items/Latte", "alice", `{"newItemName":"Mocha"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var replaced servers.ReplacedItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &replaced))
	assert.Equal(t, "8.00", replaced.Total)

	rec = do(e, http.MethodPut, "/api/v1/orders/1/items/Mocha", "bob", `{"newItemName":"Latte"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = do(e, http.MethodPost, "/api/v1/orders/1/items/Mocha/status", "alice", `{"status":"Started"}`)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = do(e, http.MethodPost, "/api/v1/orders/1/items/Mocha/status", "eve", `{"status":"Started"}`)
	require.Equal(t, http.StatusNoContent, rec.Code, rec.Body.String())

	rec = do(e, http.MethodPut, "/api/v1/orders/1/items/Mocha", "alice", `{"newItemName":"Latte"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, decodeError(t, rec).Message, "item already started or finished")

	rec = do(e, http.MethodPost, "/api/v1/orders/1/items/Bagel/status", "eve", `{"status":"Finished","force":true}`)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = do(e, http.MethodPost, "/api/v1/orders/1/items/Bagel/status", "carol", `{"status":"Finished","force":true}`)
	require.Equal(t, http.StatusNoContent, rec.Code, rec.Body.String())

	rec = do(e, http.MethodPut, "/api/v1/orders/1/paid", "alice", `{"paid":true}`)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = do(e, http.MethodPut, "/api/v1/orders/1/paid", "eve", `{"paid":true}`)
	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.True(t, store.orders[1].IsPaid())

	rec = do(e, http.MethodPut, "/api/v1/orders/1/items/Bagel", "alice", `{"newItemName":"Latte"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, decodeError(t, rec).Message, "order already paid")

	rec = do(e, http.MethodPut, "/api/v1/orders/99/paid", "eve", `{"paid":true}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
