// Package latency simulates the round trip a form submission would take
// against a real backend.
package latency

import (
	"context"
	"time"
)

// Delayer blocks for the simulated duration. It returns ctx.Err() when the
// caller goes away first.
type Delayer interface {
	Wait(ctx context.Context) error
}

// Fixed waits for a constant duration.
type Fixed time.Duration

func (f Fixed) Wait(ctx context.Context) error {
	if f <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(time.Duration(f))
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// None never waits.
var None Delayer = Fixed(0)
