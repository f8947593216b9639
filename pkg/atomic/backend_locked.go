package atomic

import (
	"sync"
)

// lockedMutex serializes all operations on LockedInt and LockedPointer
// cells in the process, regardless of which cell they operate on.
var lockedMutex sync.Mutex

// LockedInt holds an int32 whose operations are made atomic by
// acquiring a single process-wide mutex. This backend is a drop-in
// replacement for the native ones, at the cost of contention between
// unrelated cells.
//
// Relaxed operations acquire the mutex as well, as plain memory
// accesses racing with locked ones are not permitted by the Go memory
// model.
type LockedInt struct {
	v int32
}

// Initialize the atomic variable with a given value. The atomic
// variable will be zero initialized when not called.
func (i *LockedInt) Initialize(val int32) {
	lockedMutex.Lock()
	defer lockedMutex.Unlock()
	i.v = val
}

// Get the current value.
func (i *LockedInt) Get() int32 {
	lockedMutex.Lock()
	defer lockedMutex.Unlock()
	return i.v
}

// GetRelaxed gets the current value.
func (i *LockedInt) GetRelaxed() int32 {
	return i.Get()
}

// SetRelaxed stores a value.
func (i *LockedInt) SetRelaxed(val int32) {
	i.Initialize(val)
}

func (i *LockedInt) add(delta int32) int32 {
	lockedMutex.Lock()
	defer lockedMutex.Unlock()
	old := i.v
	i.v = old + delta
	return old
}

// Inc increments the value by one.
func (i *LockedInt) Inc() {
	i.add(1)
}

// Dec decrements the value by one.
func (i *LockedInt) Dec() {
	i.add(-1)
}

// DecAndTest decrements the value by one, returning whether it was one
// before decrementing.
func (i *LockedInt) DecAndTest() bool {
	return i.add(-1) == 1
}

// CompareAndSwap executes a compare-and-swap.
func (i *LockedInt) CompareAndSwap(old, new int32) bool {
	return compareAndSwapFromReturnOld(i.CompareAndSwapReturnOld, old, new)
}

// CompareAndSwapReturnOld executes a compare-and-swap, returning the
// value observed while comparing.
func (i *LockedInt) CompareAndSwapReturnOld(old, new int32) int32 {
	lockedMutex.Lock()
	defer lockedMutex.Unlock()
	current := i.v
	if current == old {
		i.v = new
	}
	return current
}

// LockedPointer holds a pointer whose operations are made atomic by
// acquiring the same process-wide mutex as LockedInt.
type LockedPointer[T any] struct {
	p *T
}

// Initialize the atomic variable with a given value.
func (p *LockedPointer[T]) Initialize(val *T) {
	lockedMutex.Lock()
	defer lockedMutex.Unlock()
	p.p = val
}

// Get the current value.
func (p *LockedPointer[T]) Get() *T {
	lockedMutex.Lock()
	defer lockedMutex.Unlock()
	return p.p
}

// CompareAndSwap executes a compare-and-swap.
func (p *LockedPointer[T]) CompareAndSwap(old, new *T) bool {
	return compareAndSwapFromReturnOld(p.CompareAndSwapReturnOld, old, new)
}

// CompareAndSwapReturnOld executes a compare-and-swap, returning the
// value observed while comparing.
func (p *LockedPointer[T]) CompareAndSwapReturnOld(old, new *T) *T {
	lockedMutex.Lock()
	defer lockedMutex.Unlock()
	current := p.p
	if current == old {
		p.p = new
	}
	return current
}
