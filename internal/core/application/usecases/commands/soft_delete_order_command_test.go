package commands_test

import (
	"testing"
	"time"

	"orderadmin/internal/core/application/usecases/commands"
	"orderadmin/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSoftDeleteOrderCommand(t *testing.T) {
	at := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)

	cmd, err := commands.NewSoftDeleteOrderCommand(kernel.MustNewID(42), at)

	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, "42", cmd.OrderID().String())
	assert.Equal(t, at, cmd.At())
}

func TestNewSoftDeleteOrderCommand_Invalid(t *testing.T) {
	_, err := commands.NewSoftDeleteOrderCommand(kernel.ID{}, time.Time{})

	require.ErrorIs(t, err, kernel.ErrIDIsNotConstructed)
	require.ErrorIs(t, err, commands.ErrDeletionTimeIsRequired)
}

func TestSoftDeleteOrderCommand_ZeroValueIsNotConstructed(t *testing.T) {
	var cmd commands.SoftDeleteOrderCommand

	require.ErrorIs(t, cmd.Validate(), commands.ErrSoftDeleteOrderCommandIsNotConstructed)
}
