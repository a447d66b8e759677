// Package retry repeats read-only store operations that failed transiently.
// Writes are never passed through it.
package retry

import (
	"context"
	"time"

	"cafe/internal/pkg/storeerr"

	"github.com/cenkalti/backoff/v4"
)

// Policy bounds how long and how often a read is repeated.
type Policy struct {
	InitialInterval time.Duration
	MaxInterval     time.Duration
	MaxRetries      uint64
}

// DefaultPolicy retries twice within roughly half a second.
func DefaultPolicy() Policy {
	return Policy{
		InitialInterval: 100 * time.Millisecond,
		MaxInterval:     400 * time.Millisecond,
		MaxRetries:      2,
	}
}

// Read calls op until it succeeds, fails with a non-transient error, the
// policy is exhausted or ctx is done. The last error from op is returned.
func Read(ctx context.Context, policy Policy, op func(ctx context.Context) error) error {
	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = policy.InitialInterval
	exp.MaxInterval = policy.MaxInterval
	exp.MaxElapsedTime = 0

	b := backoff.WithContext(backoff.WithMaxRetries(exp, policy.MaxRetries), ctx)

	var lastErr error
	err := backoff.Retry(func() error {
		lastErr = op(ctx)
		if lastErr != nil && !storeerr.IsTransient(lastErr) {
			return backoff.Permanent(lastErr)
		}
		return lastErr
	}, b)
	if err != nil && lastErr != nil {
		return lastErr
	}
	return err
}
