package atomic

import (
	"sync/atomic"
)

// StandardInt holds an int32 that can only be accessed through atomic
// operations, implemented using the typed atomics of package
// sync/atomic. Instances of this type cannot be moved to a different
// location in memory.
type StandardInt struct {
	v atomic.Int32
}

// Initialize the atomic variable with a given value. The atomic
// variable will be zero initialized when not called.
func (i *StandardInt) Initialize(val int32) {
	i.v.Store(val)
}

// Get the current value.
func (i *StandardInt) Get() int32 {
	return i.v.Load()
}

// GetRelaxed gets the current value. The Go memory model has no
// relaxed loads, so this is identical to Get().
func (i *StandardInt) GetRelaxed() int32 {
	return i.v.Load()
}

// SetRelaxed stores a value.
func (i *StandardInt) SetRelaxed(val int32) {
	i.v.Store(val)
}

// Inc increments the value by one.
func (i *StandardInt) Inc() {
	i.v.Add(1)
}

// Dec decrements the value by one.
func (i *StandardInt) Dec() {
	i.v.Add(-1)
}

// DecAndTest decrements the value by one, returning whether it was one
// before decrementing.
func (i *StandardInt) DecAndTest() bool {
	return i.v.Add(-1) == 0
}

// CompareAndSwap executes a compare-and-swap, similar to
// atomic.Int32.CompareAndSwap().
func (i *StandardInt) CompareAndSwap(old, new int32) bool {
	return i.v.CompareAndSwap(old, new)
}

// CompareAndSwapReturnOld executes a compare-and-swap, returning the
// value observed while comparing.
func (i *StandardInt) CompareAndSwapReturnOld(old, new int32) int32 {
	return compareAndSwapReturnOldFromCompareAndSwap(i.v.Load, i.v.CompareAndSwap, old, new)
}

// StandardPointer holds a pointer that can only be accessed through
// atomic operations, implemented using atomic.Pointer.
type StandardPointer[T any] struct {
	p atomic.Pointer[T]
}

// Initialize the atomic variable with a given value. The atomic
// variable will be nil initialized when not called.
func (p *StandardPointer[T]) Initialize(val *T) {
	p.p.Store(val)
}

// Get the current value.
func (p *StandardPointer[T]) Get() *T {
	return p.p.Load()
}

// CompareAndSwap executes a compare-and-swap, similar to
// atomic.Pointer.CompareAndSwap().
func (p *StandardPointer[T]) CompareAndSwap(old, new *T) bool {
	return p.p.CompareAndSwap(old, new)
}

// CompareAndSwapReturnOld executes a compare-and-swap, returning the
// value observed while comparing.
func (p *StandardPointer[T]) CompareAndSwapReturnOld(old, new *T) *T {
	return compareAndSwapReturnOldFromCompareAndSwap(p.p.Load, p.p.CompareAndSwap, old, new)
}
