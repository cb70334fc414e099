package commands_test

import (
	"testing"
	"time"

	"orderadmin/internal/core/application/usecases/commands"
	"orderadmin/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPurgeSoftDeletedOrdersCommand(t *testing.T) {
	cutoff := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	cmd, err := commands.NewPurgeSoftDeletedOrdersCommand(cutoff, 50)

	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, cutoff, cmd.Cutoff())
	assert.Equal(t, 50, cmd.BatchSize())
}

func TestNewPurgeSoftDeletedOrdersCommand_Invalid(t *testing.T) {
	tests := []struct {
		name      string
		cutoff    time.Time
		batchSize int
		wantErr   error
	}{
		{"zero cutoff", time.Time{}, 10, errs.ErrValueIsRequired},
		{"zero batch", time.Now(), 0, errs.ErrValueIsOutOfRange},
		{"batch too large", time.Now(), commands.MaxPurgeBatchSize + 1, errs.ErrValueIsOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := commands.NewPurgeSoftDeletedOrdersCommand(tt.cutoff, tt.batchSize)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestPurgeSoftDeletedOrdersCommand_ZeroValueIsNotConstructed(t *testing.T) {
	var cmd commands.PurgeSoftDeletedOrdersCommand

	require.ErrorIs(t, cmd.Validate(), commands.ErrPurgeSoftDeletedOrdersCommandIsNotConstructed)
}
