package commands_test

import (
	"testing"

	"cafe/internal/core/application/usecases/commands"
	"cafe/internal/core/domain/model/order"
	"cafe/internal/core/domain/model/user"
	"cafe/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReplaceItemCommand_ValidInput(t *testing.T) {
	cmd, err := commands.NewReplaceItemCommand(session(t, "alice", user.Customer), 42, " Latte ", "Mocha")
	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, order.ID(42), cmd.OrderID())
	assert.Equal(t, "Latte", cmd.OldName())
	assert.Equal(t, "Mocha", cmd.NewName())
}

func TestNewReplaceItemCommand_InvalidInput(t *testing.T) {
	s := session(t, "alice", user.Customer)

	t.Run("non positive order id", func(t *testing.T) {
		_, err := commands.NewReplaceItemCommand(s, 0, "Latte", "Mocha")
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("both names missing", func(t *testing.T) {
		_, err := commands.NewReplaceItemCommand(s, 42, "", "  ")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "oldItemName")
		assert.Contains(t, err.Error(), "newItemName")
	})

	t.Run("missing session", func(t *testing.T) {
		_, err := commands.NewReplaceItemCommand(user.Session{}, 42, "Latte", "Mocha")
		assert.ErrorIs(t, err, user.ErrSessionIsNotConstructed)
	})
}
