package guard_test

import (
	"errors"
	"sync"
	"testing"

	"orderadmin/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("properly_constructed_guard_returns_nil", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errors.New("not constructed")))
		require.NoError(t, g.Validate(nil))
	})

	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		var g guard.ConstructorGuard
		expectedError := errors.New("ListOrdersQuery must be created via NewListOrdersQuery")

		err := g.Validate(expectedError)

		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(nil)

		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
		assert.Equal(t, "object must be created via its constructor", err.Error())
	})
}

// TestConstructorGuardUsageExample shows the guard embedded in a command value.
func TestConstructorGuardUsageExample(t *testing.T) {
	type purgeCommand struct {
		limit int
		guard guard.ConstructorGuard
	}

	errPurgeNotConstructed := errors.New("purge command must be created via its constructor")

	newPurge := func(limit int) (purgeCommand, error) {
		if limit <= 0 {
			return purgeCommand{}, errors.New("limit must be positive")
		}
		return purgeCommand{limit: limit, guard: guard.NewConstructorGuard()}, nil
	}

	t.Run("valid_construction_through_constructor", func(t *testing.T) {
		cmd, err := newPurge(10)

		require.NoError(t, err)
		require.NoError(t, cmd.guard.Validate(errPurgeNotConstructed))
		assert.Equal(t, 10, cmd.limit)
	})

	t.Run("failed_constructor_returns_zero_value", func(t *testing.T) {
		cmd, err := newPurge(0)

		require.Error(t, err)
		assert.Equal(t, errPurgeNotConstructed, cmd.guard.Validate(errPurgeNotConstructed))
	})

	t.Run("guard_survives_copy_by_value", func(t *testing.T) {
		cmd, _ := newPurge(3)
		cmdCopy := cmd

		require.NoError(t, cmdCopy.guard.Validate(errPurgeNotConstructed))
	})
}

func TestConstructorGuardConcurrency(t *testing.T) {
	g := guard.NewConstructorGuard()
	validationError := errors.New("not constructed")

	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				assert.NoError(t, g.Validate(validationError))
			}
		}()
	}
	wg.Wait()
}

func BenchmarkConstructorGuard(b *testing.B) {
	g := guard.NewConstructorGuard()
	err := errors.New("not constructed")
	b.ResetTimer()
	for range b.N {
		_ = g.Validate(err)
	}
}
