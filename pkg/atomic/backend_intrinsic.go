package atomic

import (
	"sync/atomic"
	"unsafe"
)

// IntrinsicInt holds an int32 that can only be accessed through atomic
// operations, implemented using the function-form atomics of package
// sync/atomic (atomic.AddInt32(), atomic.CompareAndSwapInt32(), etc.).
// These are lowered to single instructions by the compiler.
type IntrinsicInt struct {
	v int32
}

// Initialize the atomic variable with a given value. The atomic
// variable will be zero initialized when not called. This function
// must be called before the variable is shared with other goroutines.
func (i *IntrinsicInt) Initialize(val int32) {
	i.v = val
}

// Get the current value, similar to atomic.LoadInt32().
func (i *IntrinsicInt) Get() int32 {
	return atomic.LoadInt32(&i.v)
}

// GetRelaxed gets the current value, similar to atomic.LoadInt32().
func (i *IntrinsicInt) GetRelaxed() int32 {
	return atomic.LoadInt32(&i.v)
}

// SetRelaxed stores a value, similar to atomic.StoreInt32().
func (i *IntrinsicInt) SetRelaxed(val int32) {
	atomic.StoreInt32(&i.v, val)
}

// Inc increments the value by one.
func (i *IntrinsicInt) Inc() {
	atomic.AddInt32(&i.v, 1)
}

// Dec decrements the value by one.
func (i *IntrinsicInt) Dec() {
	atomic.AddInt32(&i.v, -1)
}

// DecAndTest decrements the value by one, returning whether it was one
// before decrementing.
func (i *IntrinsicInt) DecAndTest() bool {
	return atomic.AddInt32(&i.v, -1) == 0
}

// CompareAndSwap executes a compare-and-swap, similar to
// atomic.CompareAndSwapInt32().
func (i *IntrinsicInt) CompareAndSwap(old, new int32) bool {
	return atomic.CompareAndSwapInt32(&i.v, old, new)
}

// CompareAndSwapReturnOld executes a compare-and-swap, returning the
// value observed while comparing.
func (i *IntrinsicInt) CompareAndSwapReturnOld(old, new int32) int32 {
	return compareAndSwapReturnOldFromCompareAndSwap(i.Get, i.CompareAndSwap, old, new)
}

// IntrinsicPointer holds a pointer that can only be accessed through
// atomic operations, implemented using atomic.LoadPointer() and
// atomic.CompareAndSwapPointer().
type IntrinsicPointer[T any] struct {
	p unsafe.Pointer
}

// Initialize the atomic variable with a given value. The atomic
// variable will be nil initialized when not called. This function
// must be called before the variable is shared with other goroutines.
func (p *IntrinsicPointer[T]) Initialize(val *T) {
	p.p = unsafe.Pointer(val)
}

// Get the current value, similar to atomic.LoadPointer().
func (p *IntrinsicPointer[T]) Get() *T {
	return (*T)(atomic.LoadPointer(&p.p))
}

// CompareAndSwap executes a compare-and-swap, similar to
// atomic.CompareAndSwapPointer().
func (p *IntrinsicPointer[T]) CompareAndSwap(old, new *T) bool {
	return atomic.CompareAndSwapPointer(&p.p, unsafe.Pointer(old), unsafe.Pointer(new))
}

// CompareAndSwapReturnOld executes a compare-and-swap, returning the
// value observed while comparing.
func (p *IntrinsicPointer[T]) CompareAndSwapReturnOld(old, new *T) *T {
	return compareAndSwapReturnOldFromCompareAndSwap(p.Get, p.CompareAndSwap, old, new)
}
