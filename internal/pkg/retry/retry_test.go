package retry_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"cafe/internal/pkg/errs"
	"cafe/internal/pkg/retry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastPolicy() retry.Policy {
	return retry.Policy{InitialInterval: time.Millisecond, MaxInterval: 2 * time.Millisecond, MaxRetries: 2}
}

func TestRead(t *testing.T) {
	t.Run("retries transient failures", func(t *testing.T) {
		calls := 0
		err := retry.Read(t.Context(), fastPolicy(), func(context.Context) error {
			calls++
			if calls < 3 {
				return errs.NewStoreUnavailableError("history", errors.New("reset by peer"))
			}
			return nil
		})

		require.NoError(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("gives up after max retries", func(t *testing.T) {
		calls := 0
		err := retry.Read(t.Context(), fastPolicy(), func(context.Context) error {
			calls++
			return errs.NewStoreUnavailableError("history", errors.New("reset by peer"))
		})

		require.ErrorIs(t, err, errs.ErrStoreUnavailable)
		assert.Equal(t, 3, calls)
	})

	t.Run("does not retry permanent failures", func(t *testing.T) {
		calls := 0
		err := retry.Read(t.Context(), fastPolicy(), func(context.Context) error {
			calls++
			return errs.NewValueIsInvalidError("window")
		})

		var invalid *errs.ValueIsInvalidError
		require.ErrorAs(t, err, &invalid)
		assert.Equal(t, 1, calls)
	})

	t.Run("stops when context is canceled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(t.Context())
		cancel()
		calls := 0

		err := retry.Read(ctx, fastPolicy(), func(context.Context) error {
			calls++
			return errs.NewStoreUnavailableError("history", errors.New("reset by peer"))
		})

		require.Error(t, err)
		assert.LessOrEqual(t, calls, 1)
	})
}
