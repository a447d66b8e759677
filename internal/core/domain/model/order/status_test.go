package order_test

import (
	"fmt"
	"testing"

	"cafe/internal/core/domain/model/order"
	"cafe/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Constants(t *testing.T) {
	t.Run("should have correct enum values", func(t *testing.T) {
		assert.Equal(t, 0, int(order.Unknown))
		assert.Equal(t, 1, int(order.NotStarted))
		assert.Equal(t, 2, int(order.Started))
		assert.Equal(t, 3, int(order.Finished))
	})
}

func TestStatus_Validate(t *testing.T) {
	t.Run("should validate valid statuses", func(t *testing.T) {
		for _, status := range []order.Status{order.NotStarted, order.Started, order.Finished} {
			t.Run(status.String(), func(t *testing.T) {
				require.NoError(t, status.Validate())
			})
		}
	})

	t.Run("should reject invalid status values", func(t *testing.T) {
		for _, status := range []order.Status{order.Unknown, order.Status(-1), order.Status(4)} {
			t.Run(fmt.Sprintf("value %d", int(status)), func(t *testing.T) {
				err := status.Validate()

				require.Error(t, err)
				assert.IsType(t, &errs.ValueIsInvalidError{}, err)
				assert.Contains(t, err.Error(), "status is invalid")
			})
		}
	})
}

func TestParseStatus(t *testing.T) {
	t.Run("round trips every valid status", func(t *testing.T) {
		for _, status := range []order.Status{order.NotStarted, order.Started, order.Finished} {
			parsed, err := order.ParseStatus(status.String())

			require.NoError(t, err)
			assert.Equal(t, status, parsed)
		}
	})

	t.Run("rejects loose spellings", func(t *testing.T) {
		for _, s := range []string{"Hasn't started", "Hasn’t started", "started", "Unknown", ""} {
			_, err := order.ParseStatus(s)

			require.ErrorIs(t, err, errs.ErrValueIsInvalid, s)
		}
	})
}

func TestStatus_AdvanceTo(t *testing.T) {
	tests := []struct {
		name    string
		from    order.Status
		target  order.Status
		force   bool
		want    order.Status
		wantErr bool
	}{
		{name: "start", from: order.NotStarted, target: order.Started, want: order.Started},
		{name: "finish", from: order.Started, target: order.Finished, want: order.Finished},
		{name: "skip to finished", from: order.NotStarted, target: order.Finished, wantErr: true},
		{name: "forced skip to finished", from: order.NotStarted, target: order.Finished, force: true, want: order.Finished},
		{name: "forced finish from started", from: order.Started, target: order.Finished, force: true, want: order.Finished},
		{name: "restart", from: order.Started, target: order.Started, wantErr: true},
		{name: "backward", from: order.Finished, target: order.Started, wantErr: true},
		{name: "finished is terminal", from: order.Finished, target: order.Finished, wantErr: true},
		{name: "forced finish of finished", from: order.Finished, target: order.Finished, force: true, wantErr: true},
		{name: "back to not started", from: order.Started, target: order.NotStarted, wantErr: true},
		{name: "force ignored for start", from: order.Started, target: order.Started, force: true, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.from.AdvanceTo(tt.target, tt.force)

			if tt.wantErr {
				require.ErrorIs(t, err, errs.ErrConflict)
				assert.Equal(t, order.Unknown, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStatus_IsReplaceable(t *testing.T) {
	assert.True(t, order.NotStarted.IsReplaceable())
	assert.False(t, order.Started.IsReplaceable())
	assert.False(t, order.Finished.IsReplaceable())
	assert.False(t, order.Unknown.IsReplaceable())
}
