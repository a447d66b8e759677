package services_test

import (
	"testing"
	"time"

	"cafe/internal/core/domain/model/kernel"
	"cafe/internal/core/domain/model/order"
	"cafe/internal/core/domain/model/user"
	"cafe/internal/core/domain/services"
	"cafe/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSession(t *testing.T, name string, role user.Role) user.Session {
	t.Helper()
	login, err := kernel.NewLogin(name)
	require.NoError(t, err)
	s, err := user.NewSession(login, role)
	require.NoError(t, err)
	return s
}

func alicesOrder(t *testing.T) *order.Order {
	t.Helper()
	login, _ := kernel.NewLogin("alice")
	latte, _ := kernel.MoneyFromString("4.50")
	bagel, _ := kernel.MoneyFromString("3.00")
	o, err := order.NewOrder(login, []order.Line{
		{Name: "Latte", Price: latte},
		{Name: "Bagel", Price: bagel},
	}, false, time.Now())
	require.NoError(t, err)
	require.NoError(t, o.AssignIdentity(1, []order.ItemID{1, 2}))
	return o
}

func TestAccessGate_Predicates(t *testing.T) {
	gate := services.NewAccessGate()
	o := alicesOrder(t)

	assert.True(t, gate.CanModifyItems(o))
	assert.True(t, gate.CanReplace(o.Items()[0]))

	_, err := o.AdvanceItem("Latte", order.Started, false, time.Now())
	require.NoError(t, err)
	assert.False(t, gate.CanReplace(o.Items()[0]))

	o.SetPaid(true, time.Now())
	assert.False(t, gate.CanModifyItems(o))
}

func TestAccessGate_AuthorizeReplace(t *testing.T) {
	gate := services.NewAccessGate()
	alice := newSession(t, "alice", user.Customer)

	t.Run("owner of unpaid order", func(t *testing.T) {
		item, err := gate.AuthorizeReplace(alice, alicesOrder(t), "Latte")

		require.NoError(t, err)
		assert.Equal(t, "Latte", item.Name())
	})

	t.Run("other customer sees not found", func(t *testing.T) {
		_, err := gate.AuthorizeReplace(newSession(t, "bob", user.Customer), alicesOrder(t), "Latte")

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		assert.Contains(t, err.Error(), "order not found or not owned")
	})

	t.Run("ownership is checked before payment", func(t *testing.T) {
		o := alicesOrder(t)
		o.SetPaid(true, time.Now())

		_, err := gate.AuthorizeReplace(newSession(t, "bob", user.Manager), o, "Latte")

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("paid order", func(t *testing.T) {
		o := alicesOrder(t)
		o.SetPaid(true, time.Now())

		_, err := gate.AuthorizeReplace(alice, o, "Latte")

		require.ErrorIs(t, err, errs.ErrConflict)
		assert.Contains(t, err.Error(), "order already paid")
	})

	t.Run("payment is checked before item lookup", func(t *testing.T) {
		o := alicesOrder(t)
		o.SetPaid(true, time.Now())

		_, err := gate.AuthorizeReplace(alice, o, "Scone")

		require.ErrorIs(t, err, errs.ErrConflict)
	})

	t.Run("missing item", func(t *testing.T) {
		_, err := gate.AuthorizeReplace(alice, alicesOrder(t), "Scone")

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("finished item", func(t *testing.T) {
		o := alicesOrder(t)
		_, err := o.AdvanceItem("Bagel", order.Finished, true, time.Now())
		require.NoError(t, err)

		_, err = gate.AuthorizeReplace(alice, o, "Bagel")

		require.ErrorIs(t, err, errs.ErrConflict)
		assert.Contains(t, err.Error(), "item already started or finished")
	})

	t.Run("zero session", func(t *testing.T) {
		_, err := gate.AuthorizeReplace(user.Session{}, alicesOrder(t), "Latte")

		require.ErrorIs(t, err, user.ErrSessionIsNotConstructed)
	})
}

func TestAccessGate_AuthorizeAdvance(t *testing.T) {
	gate := services.NewAccessGate()

	tests := []struct {
		name    string
		role    user.Role
		force   bool
		allowed bool
	}{
		{"customer", user.Customer, false, false},
		{"employee", user.Employee, false, true},
		{"employee force", user.Employee, true, false},
		{"manager", user.Manager, false, true},
		{"manager force", user.Manager, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := gate.AuthorizeAdvance(newSession(t, "staff", tt.role), tt.force)

			if tt.allowed {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, errs.ErrAccessDenied)
		})
	}
}

func TestAccessGate_AuthorizeHistoryAndView(t *testing.T) {
	gate := services.NewAccessGate()
	alice, _ := kernel.NewLogin("alice")
	o := alicesOrder(t)

	require.NoError(t, gate.AuthorizeHistory(newSession(t, "alice", user.Customer), alice))
	require.ErrorIs(t, gate.AuthorizeHistory(newSession(t, "bob", user.Customer), alice), errs.ErrAccessDenied)
	require.NoError(t, gate.AuthorizeHistory(newSession(t, "eve", user.Employee), alice))

	require.NoError(t, gate.AuthorizeView(newSession(t, "alice", user.Customer), o))
	require.NoError(t, gate.AuthorizeView(newSession(t, "eve", user.Employee), o))
	require.ErrorIs(t, gate.AuthorizeView(newSession(t, "bob", user.Customer), o), errs.ErrObjectNotFound)

	require.ErrorIs(t, gate.Authorize(newSession(t, "bob", user.Customer), user.ChangePaidStatus), errs.ErrAccessDenied)
}
