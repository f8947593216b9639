package once

import (
	"github.com/buildbarn/bb-atomic/pkg/atomic"
)

// Value holds a lazily constructed object, such as a process-wide
// singleton. The zero value is ready for use.
type Value[T any] struct {
	guard Guard
	value atomic.Pointer[T]
}

// Get the object, constructing it if this is the first call. The
// constructor is called at most once, even if Get() is called
// concurrently. Callers that lose the race wait for the constructor to
// complete.
//
// If the constructor panics, the Value remains in the initializing
// state indefinitely, causing all subsequent calls to block.
func (v *Value[T]) Get(construct func() *T) *T {
	if p := v.value.Get(); p != nil {
		return p
	}
	if v.guard.Enter() {
		v.value.CompareAndSwap(nil, construct())
		v.guard.Leave()
	}
	return v.value.Get()
}
