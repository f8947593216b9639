// Package once provides Guard, a synchronization primitive that allows
// exactly one of many racing goroutines to perform a lazy
// initialization, while the others wait for it to complete.
//
// Unlike sync.Once, Guard does not take a function. The caller that
// obtains the right to initialize brackets the initialization with
// calls to Enter() and Leave():
//
//	var guard once.Guard
//
//	if guard.Enter() {
//		// Initialize shared state.
//		guard.Leave()
//	}
//
// The zero value of Guard is uninitialized. Guards are typically
// declared as global variables.
package once
