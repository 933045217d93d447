package services

import (
	"context"
	"time"
)

// simulateLatency suspends the caller for d, emulating the round trip of the
// real backend this demo stands in for. The operation itself stays a plain
// synchronous value transformation: nothing is observable in a
// partially-applied state while the caller is suspended.
func simulateLatency(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
