package commands_test

import (
	"strings"
	"testing"

	"cafe/internal/core/application/usecases/commands"
	"cafe/internal/core/domain/model/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPlaceOrderCommand_ValidInput(t *testing.T) {
	s := session(t, "alice", user.Customer)
	names := []string{"Latte", "Bagel", "Latte"}

	cmd, err := commands.NewPlaceOrderCommand(s, names, true)
	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, "alice", cmd.Session().Login().String())
	assert.Equal(t, names, cmd.ItemNames())
	assert.True(t, cmd.Paid())

	names[0] = "Tea"
	assert.Equal(t, "Latte", cmd.ItemNames()[0])
}

func TestNewPlaceOrderCommand_NoItems(t *testing.T) {
	_, err := commands.NewPlaceOrderCommand(session(t, "alice", user.Customer), nil, false)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrItemsAreRequired)
}

func TestNewPlaceOrderCommand_TooManyItems(t *testing.T) {
	names := strings.Split(strings.Repeat("Latte,", commands.MaxItemsPerOrder+1), ",")
	_, err := commands.NewPlaceOrderCommand(session(t, "alice", user.Customer), names, false)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrTooManyItems)
}

func TestNewPlaceOrderCommand_MissingSession(t *testing.T) {
	_, err := commands.NewPlaceOrderCommand(user.Session{}, []string{"Latte"}, false)
	require.Error(t, err)
	assert.ErrorIs(t, err, user.ErrSessionIsNotConstructed)
}

func TestPlaceOrderCommand_NotConstructed(t *testing.T) {
	cmd := commands.PlaceOrderCommand{}
	assert.ErrorIs(t, cmd.Validate(), commands.ErrPlaceOrderCommandIsNotConstructed)
}
