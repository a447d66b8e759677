package storeerr_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"cafe/internal/pkg/errs"
	"cafe/internal/pkg/storeerr"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{
			name: "unique violation",
			err:  fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505", ConstraintName: "menu_pkey"}),
			want: errs.ErrConflict,
		},
		{
			name: "foreign key violation",
			err:  &pgconn.PgError{Code: "23503"},
			want: errs.ErrConflict,
		},
		{
			name: "translated duplicate key",
			err:  gorm.ErrDuplicatedKey,
			want: errs.ErrConflict,
		},
		{
			name: "query canceled by statement timeout",
			err:  &pgconn.PgError{Code: "57014"},
			want: errs.ErrStoreUnavailable,
		},
		{
			name: "deadline",
			err:  context.DeadlineExceeded,
			want: errs.ErrStoreUnavailable,
		},
		{
			name: "already classified",
			err:  errs.NewObjectNotFoundError("orderID", 1),
			want: errs.ErrObjectNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := storeerr.Classify("save order", tt.err)

			require.ErrorIs(t, got, tt.want)
		})
	}

	t.Run("nil", func(t *testing.T) {
		require.NoError(t, storeerr.Classify("save order", nil))
	})

	t.Run("keeps the driver error as cause", func(t *testing.T) {
		cause := errors.New("connection refused")

		var unavailable *errs.StoreUnavailableError
		require.ErrorAs(t, storeerr.Classify("get order", cause), &unavailable)
		assert.Equal(t, "get order", unavailable.Operation)
		assert.Equal(t, cause, unavailable.Cause)
	})
}

func TestIsTransient(t *testing.T) {
	assert.True(t, storeerr.IsTransient(errs.NewStoreUnavailableError("read", errors.New("eof"))))
	assert.True(t, storeerr.IsTransient(context.DeadlineExceeded))
	assert.False(t, storeerr.IsTransient(context.Canceled))
	assert.False(t, storeerr.IsTransient(errs.NewConflictError("order already paid")))
	assert.False(t, storeerr.IsTransient(nil))
}

func TestCorrupt(t *testing.T) {
	invalid := errs.NewValueIsInvalidErrorWithCause("amount", errors.New("-1 is negative"))

	err := storeerr.Corrupt("get order", invalid)

	require.ErrorIs(t, err, storeerr.ErrCorruptData)
	assert.NotErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Contains(t, err.Error(), "-1 is negative")
	assert.Same(t, err, storeerr.Classify("get order", err))
	assert.False(t, storeerr.IsTransient(err))
	assert.NoError(t, storeerr.Corrupt("get order", nil))
}
