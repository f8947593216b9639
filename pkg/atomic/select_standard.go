//go:build !bb_atomic_intrinsic && !bb_atomic_legacy && !bb_atomic_library && !bb_atomic_locked

package atomic

// Backend is the name of the backend that is used by Int and Pointer.
const Backend = "standard"

// Int holds an int32 that can only be accessed through atomic
// operations.
//
// This build uses the typed atomics of package sync/atomic.
type Int = StandardInt

// Pointer holds a pointer that can only be accessed through atomic
// operations.
//
// This build uses the typed atomics of package sync/atomic.
type Pointer[T any] = StandardPointer[T]
