//go:build bb_atomic_library

package atomic

// Backend is the name of the backend that is used by Int and Pointer.
const Backend = "library"

// Int holds an int32 that can only be accessed through atomic
// operations.
//
// This build uses go.uber.org/atomic.
type Int = LibraryInt

// Pointer holds a pointer that can only be accessed through atomic
// operations.
//
// This build uses go.uber.org/atomic.
type Pointer[T any] = LibraryPointer[T]
