package menu_test

import (
	"testing"

	"cafe/internal/core/domain/model/kernel"
	"cafe/internal/core/domain/model/menu"
	"cafe/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewItem(t *testing.T) {
	price, err := kernel.MoneyFromString("4.50")
	require.NoError(t, err)

	t.Run("builds an order line", func(t *testing.T) {
		item, err := menu.NewItem("Latte", "drink", price, "espresso and milk", "https://img/latte.png")

		require.NoError(t, err)
		require.NoError(t, item.Validate())
		line := item.Line()
		assert.Equal(t, "Latte", line.Name)
		assert.Equal(t, "4.50", line.Price.String())
		assert.Equal(t, "drink", item.Kind())
	})

	t.Run("requires a name", func(t *testing.T) {
		_, err := menu.NewItem(" ", "drink", price, "", "")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("requires a price", func(t *testing.T) {
		_, err := menu.NewItem("Latte", "drink", kernel.Money{}, "", "")

		require.ErrorIs(t, err, kernel.ErrMoneyIsNotConstructed)
	})
}
