// Package atomic provides integer and pointer cells that can only be
// accessed through atomic operations.
//
// Multiple implementations (backends) of these cells are provided.
// Every backend is compiled into every build, so that they can be
// compared and tested side by side. The Int, Uint and Pointer types
// that the rest of the code base uses are aliases of the backend that
// is selected at build time:
//
//   - Default: StandardInt and StandardPointer, using the typed
//     atomics of package sync/atomic.
//   - bb_atomic_intrinsic: IntrinsicInt and IntrinsicPointer, using the
//     function-form atomics of package sync/atomic.
//   - bb_atomic_legacy: LegacyInt and LegacyPointer, which only rely
//     on atomic loads, stores and boolean compare-and-swap.
//   - bb_atomic_library: LibraryInt and LibraryPointer, backed by
//     go.uber.org/atomic.
//   - bb_atomic_locked: LockedInt and LockedPointer, which serialize
//     all operations through a single process-wide mutex.
//
// All operations that are not explicitly relaxed are sequentially
// consistent. Relaxed operations are still atomic with respect to the
// cell they operate on, but callers must not depend on them for
// ordering any other memory accesses.
//
// Cells are embedded by value into the structures of callers. They
// must not be copied after first use.
package atomic

// IntOps is the set of operations that every backend provides on an
// integer cell.
type IntOps interface {
	// Seed the value before the cell is shared with other
	// goroutines.
	Initialize(v int32)

	// Return the current value. Sequentially consistent.
	Get() int32
	// Return the current value without any ordering guarantees.
	GetRelaxed() int32
	// Store a value without any ordering guarantees.
	SetRelaxed(v int32)

	Inc()
	Dec()
	// Decrement the value, returning true if the value was one
	// prior to decrementing. This is the signal that the last
	// reference to an object was released.
	DecAndTest() bool

	// Replace the value with new if it is equal to old. Returns
	// whether the swap took place.
	CompareAndSwap(old, new int32) bool
	// Like CompareAndSwap(), but return the value that was observed
	// while comparing. The swap took place if and only if the
	// returned value is equal to old.
	CompareAndSwapReturnOld(old, new int32) int32
}

// PointerOps is the set of operations that every backend provides on a
// pointer cell.
type PointerOps[T any] interface {
	Initialize(v *T)
	Get() *T
	CompareAndSwap(old, new *T) bool
	CompareAndSwapReturnOld(old, new *T) *T
}

var (
	_ IntOps = (*StandardInt)(nil)
	_ IntOps = (*IntrinsicInt)(nil)
	_ IntOps = (*LegacyInt)(nil)
	_ IntOps = (*LibraryInt)(nil)
	_ IntOps = (*LockedInt)(nil)

	_ PointerOps[struct{}] = (*StandardPointer[struct{}])(nil)
	_ PointerOps[struct{}] = (*IntrinsicPointer[struct{}])(nil)
	_ PointerOps[struct{}] = (*LegacyPointer[struct{}])(nil)
	_ PointerOps[struct{}] = (*LibraryPointer[struct{}])(nil)
	_ PointerOps[struct{}] = (*LockedPointer[struct{}])(nil)
)
