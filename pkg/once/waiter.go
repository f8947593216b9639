package once

import (
	"runtime"
	"time"

	"github.com/buildbarn/bb-atomic/pkg/clock"
	"github.com/cenkalti/backoff/v4"
)

// Waiter is used by Guard to wait for a concurrent initialization to
// complete.
type Waiter interface {
	// Block until done() returns true. Implementations may not
	// give up.
	Wait(done func() bool)
}

type spinWaiter struct {
	clock      clock.Clock
	newBackOff func() backoff.BackOff
}

// NewSpinWaiter creates a Waiter that repeatedly polls for completion.
// The interval between polls is determined by a BackOff policy that is
// created for every call to Wait(). Intervals of zero cause the
// goroutine to yield, as opposed to sleeping. When the policy is
// exhausted, it is reset.
func NewSpinWaiter(clock clock.Clock, newBackOff func() backoff.BackOff) Waiter {
	return &spinWaiter{
		clock:      clock,
		newBackOff: newBackOff,
	}
}

func (w *spinWaiter) Wait(done func() bool) {
	if done() {
		return
	}
	b := w.newBackOff()
	for {
		if d := b.NextBackOff(); d == backoff.Stop {
			b.Reset()
			runtime.Gosched()
		} else if d <= 0 {
			runtime.Gosched()
		} else {
			_, t := w.clock.NewTimer(d)
			<-t
		}
		if done() {
			return
		}
	}
}

// NewExponentialBackOffFactory returns a function that creates
// exponential BackOff policies that never expire. It can be provided
// to NewSpinWaiter().
func NewExponentialBackOffFactory(initialInterval, maximumInterval time.Duration, multiplier float64) func() backoff.BackOff {
	return func() backoff.BackOff {
		b := backoff.NewExponentialBackOff()
		b.InitialInterval = initialInterval
		b.MaxInterval = maximumInterval
		b.Multiplier = multiplier
		b.MaxElapsedTime = 0
		b.Reset()
		return b
	}
}

// DefaultWaiter is the Waiter that is used by Guard.Enter(). It polls
// at exponentially increasing intervals, starting at one microsecond
// and capped at one millisecond.
var DefaultWaiter = NewSpinWaiter(
	clock.SystemClock,
	NewExponentialBackOffFactory(time.Microsecond, time.Millisecond, 2))
