// Package delay provides the simulated processing cost used by the built-in processors.
package delay

import (
	"context"
	"time"
)

// Func waits for d or until ctx is done, whichever comes first.
// It returns ctx.Err() when the wait was interrupted.
type Func func(ctx context.Context, d time.Duration) error

// Sleep is the default Func. A non-positive d returns immediately.
func Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// None never waits. It still reports a cancelled context.
func None(ctx context.Context, _ time.Duration) error {
	return ctx.Err()
}
