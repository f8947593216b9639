//go:build bb_atomic_legacy

package atomic

// Backend is the name of the backend that is used by Int and Pointer.
const Backend = "legacy"

// Int holds an int32 that can only be accessed through atomic
// operations.
//
// This build only relies on atomic loads, stores and
// compare-and-swap.
type Int = LegacyInt

// Pointer holds a pointer that can only be accessed through atomic
// operations.
//
// This build only relies on atomic loads, stores and
// compare-and-swap.
type Pointer[T any] = LegacyPointer[T]
