//go:build !windows || !bb_atomic_initonce

package once

import (
	"github.com/buildbarn/bb-atomic/pkg/atomic"
)

const (
	stateUninitialized int32 = iota
	stateInitializing
	stateInitialized
)

// Guard of a lazy initialization. It progresses from uninitialized, to
// initializing, to initialized. Only the goroutine that caused the
// transition to initializing may cause the transition to initialized.
type Guard struct {
	state atomic.Int
}

// Enter the guard, using DefaultWaiter to wait for a concurrent
// initialization to complete. See EnterWith().
func (g *Guard) Enter() bool {
	return g.EnterWith(DefaultWaiter)
}

// EnterWith enters the guard. If it returns true, the caller is the
// only goroutine that performs the initialization, and MUST call
// Leave() once completed. If it returns false, initialization has been
// completed by another goroutine.
//
// If another goroutine is performing the initialization, the provided
// Waiter is used to block until it completes. There is no way to cancel
// this. Initialization code must therefore be short and guaranteed to
// terminate.
func (g *Guard) EnterWith(waiter Waiter) bool {
	if g.state.GetRelaxed() == stateInitialized && g.state.Get() == stateInitialized {
		return false
	}
	if g.state.CompareAndSwap(stateUninitialized, stateInitializing) {
		return true
	}
	waiter.Wait(g.isInitialized)
	return false
}

func (g *Guard) isInitialized() bool {
	return g.state.Get() == stateInitialized
}

// Leave the guard, marking initialization as completed. This function
// may only be called by the goroutine for which Enter() returned true.
func (g *Guard) Leave() {
	if !g.state.CompareAndSwap(stateInitializing, stateInitialized) {
		panic("Attempted to leave a once guard that is not being initialized")
	}
}
