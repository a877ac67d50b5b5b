// Package clock provides helpers for time-related operations.
package clock

import (
	"context"
	"time"
)

// SleepWithContext waits for the duration or returns early if the context is canceled.
func SleepWithContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Every calls fn immediately and then after each interval until ctx is canceled. The interval
// is measured from the end of one call to the start of the next, so calls never overlap.
func Every(ctx context.Context, interval time.Duration, fn func(context.Context)) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		fn(ctx)
		if err := SleepWithContext(ctx, interval); err != nil {
			return err
		}
	}
}
