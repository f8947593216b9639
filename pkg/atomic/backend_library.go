package atomic

import (
	uber_atomic "go.uber.org/atomic"
)

// LibraryInt holds an int32 that can only be accessed through atomic
// operations, implemented using go.uber.org/atomic.
type LibraryInt struct {
	v uber_atomic.Int32
}

// Initialize the atomic variable with a given value. The atomic
// variable will be zero initialized when not called.
func (i *LibraryInt) Initialize(val int32) {
	i.v.Store(val)
}

// Get the current value.
func (i *LibraryInt) Get() int32 {
	return i.v.Load()
}

// GetRelaxed gets the current value.
func (i *LibraryInt) GetRelaxed() int32 {
	return i.v.Load()
}

// SetRelaxed stores a value.
func (i *LibraryInt) SetRelaxed(val int32) {
	i.v.Store(val)
}

// Inc increments the value by one.
func (i *LibraryInt) Inc() {
	i.v.Inc()
}

// Dec decrements the value by one.
func (i *LibraryInt) Dec() {
	i.v.Dec()
}

// DecAndTest decrements the value by one, returning whether it was one
// before decrementing. Int32.Dec() returns the new value.
func (i *LibraryInt) DecAndTest() bool {
	return i.v.Dec() == 0
}

// CompareAndSwap executes a compare-and-swap.
func (i *LibraryInt) CompareAndSwap(old, new int32) bool {
	return i.v.CompareAndSwap(old, new)
}

// CompareAndSwapReturnOld executes a compare-and-swap, returning the
// value observed while comparing.
func (i *LibraryInt) CompareAndSwapReturnOld(old, new int32) int32 {
	return compareAndSwapReturnOldFromCompareAndSwap(i.v.Load, i.v.CompareAndSwap, old, new)
}

// LibraryPointer holds a pointer that can only be accessed through
// atomic operations, implemented using go.uber.org/atomic.
type LibraryPointer[T any] struct {
	p uber_atomic.Pointer[T]
}

// Initialize the atomic variable with a given value.
func (p *LibraryPointer[T]) Initialize(val *T) {
	p.p.Store(val)
}

// Get the current value.
func (p *LibraryPointer[T]) Get() *T {
	return p.p.Load()
}

// CompareAndSwap executes a compare-and-swap.
func (p *LibraryPointer[T]) CompareAndSwap(old, new *T) bool {
	return p.p.CompareAndSwap(old, new)
}

// CompareAndSwapReturnOld executes a compare-and-swap, returning the
// value observed while comparing.
func (p *LibraryPointer[T]) CompareAndSwapReturnOld(old, new *T) *T {
	return compareAndSwapReturnOldFromCompareAndSwap(p.p.Load, p.p.CompareAndSwap, old, new)
}
