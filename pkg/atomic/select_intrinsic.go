//go:build bb_atomic_intrinsic

package atomic

// Backend is the name of the backend that is used by Int and Pointer.
const Backend = "intrinsic"

// Int holds an int32 that can only be accessed through atomic
// operations.
//
// This build uses the function-form atomics of package
// sync/atomic.
type Int = IntrinsicInt

// Pointer holds a pointer that can only be accessed through atomic
// operations.
//
// This build uses the function-form atomics of package
// sync/atomic.
type Pointer[T any] = IntrinsicPointer[T]
