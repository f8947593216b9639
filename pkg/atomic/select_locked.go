//go:build bb_atomic_locked

package atomic

// Backend is the name of the backend that is used by Int and Pointer.
const Backend = "locked"

// Int holds an int32 that can only be accessed through atomic
// operations.
//
// This build serializes all operations through a process-wide
// mutex.
type Int = LockedInt

// Pointer holds a pointer that can only be accessed through atomic
// operations.
//
// This build serializes all operations through a process-wide
// mutex.
type Pointer[T any] = LockedPointer[T]
