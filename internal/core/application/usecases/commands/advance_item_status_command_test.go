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

func TestNewAdvanceItemStatusCommand_ValidInput(t *testing.T) {
	cmd, err := commands.NewAdvanceItemStatusCommand(session(t, "carol", user.Manager), 42, "Latte", order.Finished, true)
	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, order.ID(42), cmd.OrderID())
	assert.Equal(t, "Latte", cmd.ItemName())
	assert.Equal(t, order.Finished, cmd.Target())
	assert.True(t, cmd.Force())
}

func TestNewAdvanceItemStatusCommand_InvalidInput(t *testing.T) {
	s := session(t, "eve", user.Employee)

	_, err := commands.NewAdvanceItemStatusCommand(s, 42, "Latte", order.Unknown, false)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = commands.NewAdvanceItemStatusCommand(s, 42, " ", order.Started, false)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = commands.NewAdvanceItemStatusCommand(s, -1, "Latte", order.Started, false)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
