package atomic

import (
	"sync/atomic"
	"unsafe"
)

// LegacyInt holds an int32 that can only be accessed through atomic
// operations. It is implemented on top of the narrowest set of
// primitives possible: atomic loads, stores and a boolean
// compare-and-swap. Arithmetic is performed using compare-and-swap
// loops.
//
// This backend is mainly useful to validate that the derived
// operations remain correct on platforms that lack fetch-and-add.
type LegacyInt struct {
	v int32
}

// Initialize the atomic variable with a given value. The atomic
// variable will be zero initialized when not called. This function
// must be called before the variable is shared with other goroutines.
func (i *LegacyInt) Initialize(val int32) {
	i.v = val
}

// Get the current value.
func (i *LegacyInt) Get() int32 {
	return atomic.LoadInt32(&i.v)
}

// GetRelaxed gets the current value.
func (i *LegacyInt) GetRelaxed() int32 {
	return atomic.LoadInt32(&i.v)
}

// SetRelaxed stores a value.
func (i *LegacyInt) SetRelaxed(val int32) {
	atomic.StoreInt32(&i.v, val)
}

// Inc increments the value by one.
func (i *LegacyInt) Inc() {
	addFromCompareAndSwap(i.Get, i.CompareAndSwap, 1)
}

// Dec decrements the value by one.
func (i *LegacyInt) Dec() {
	addFromCompareAndSwap(i.Get, i.CompareAndSwap, -1)
}

// DecAndTest decrements the value by one, returning whether it was one
// before decrementing.
func (i *LegacyInt) DecAndTest() bool {
	return addFromCompareAndSwap(i.Get, i.CompareAndSwap, -1) == 1
}

// CompareAndSwap executes a compare-and-swap.
func (i *LegacyInt) CompareAndSwap(old, new int32) bool {
	return atomic.CompareAndSwapInt32(&i.v, old, new)
}

// CompareAndSwapReturnOld executes a compare-and-swap, returning the
// value observed while comparing.
func (i *LegacyInt) CompareAndSwapReturnOld(old, new int32) int32 {
	return compareAndSwapReturnOldFromCompareAndSwap(i.Get, i.CompareAndSwap, old, new)
}

// LegacyPointer holds a pointer that can only be accessed through
// atomic operations. Like LegacyInt, it only relies on atomic loads
// and a boolean compare-and-swap.
type LegacyPointer[T any] struct {
	p unsafe.Pointer
}

// Initialize the atomic variable with a given value. This function
// must be called before the variable is shared with other goroutines.
func (p *LegacyPointer[T]) Initialize(val *T) {
	p.p = unsafe.Pointer(val)
}

// Get the current value.
func (p *LegacyPointer[T]) Get() *T {
	return (*T)(atomic.LoadPointer(&p.p))
}

// CompareAndSwap executes a compare-and-swap.
func (p *LegacyPointer[T]) CompareAndSwap(old, new *T) bool {
	return atomic.CompareAndSwapPointer(&p.p, unsafe.Pointer(old), unsafe.Pointer(new))
}

// CompareAndSwapReturnOld executes a compare-and-swap, returning the
// value observed while comparing.
func (p *LegacyPointer[T]) CompareAndSwapReturnOld(old, new *T) *T {
	return compareAndSwapReturnOldFromCompareAndSwap(p.Get, p.CompareAndSwap, old, new)
}
