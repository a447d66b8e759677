package order_test

import (
	"strings"
	"testing"
	"time"

	"cafe/internal/core/domain/model/kernel"
	"cafe/internal/core/domain/model/order"
	"cafe/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewItem(t *testing.T) {
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	price, _ := kernel.MoneyFromString("4.50")

	t.Run("should start NotStarted", func(t *testing.T) {
		item, err := order.NewItem(order.Line{Name: " Latte ", Price: price}, now)

		require.NoError(t, err)
		require.NoError(t, item.Validate())
		assert.Equal(t, "Latte", item.Name())
		assert.Equal(t, order.NotStarted, item.Status())
		assert.Equal(t, now, item.LastUpdated())
		assert.True(t, item.CanReplace())
		assert.Equal(t, order.ItemID(0), item.ID())
	})

	t.Run("should reject empty name and zero price together", func(t *testing.T) {
		_, err := order.NewItem(order.Line{Name: ""}, now)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		require.ErrorIs(t, err, kernel.ErrMoneyIsNotConstructed)
	})

	t.Run("should reject long name", func(t *testing.T) {
		_, err := order.NewItem(order.Line{Name: strings.Repeat("a", order.ItemNameMaxLength+1), Price: price}, now)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestRestoreItem(t *testing.T) {
	price, _ := kernel.MoneyFromString("3.00")

	t.Run("keeps persisted fields", func(t *testing.T) {
		at := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)
		item, err := order.RestoreItem(7, order.Line{Name: "Bagel", Price: price}, order.Started, at, "toasted")

		require.NoError(t, err)
		assert.Equal(t, order.ItemID(7), item.ID())
		assert.Equal(t, order.Started, item.Status())
		assert.Equal(t, "toasted", item.Comments())
		assert.False(t, item.CanReplace())
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		_, err := order.RestoreItem(7, order.Line{Name: "Bagel", Price: price}, order.Unknown, time.Now(), "")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("nil item is not constructed", func(t *testing.T) {
		var item *order.Item

		require.ErrorIs(t, item.Validate(), order.ErrItemIsNotConstructed)
	})
}
