//go:build windows && bb_atomic_initonce

package once

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	modkernel32                 = windows.NewLazySystemDLL("kernel32.dll")
	procInitOnceBeginInitialize = modkernel32.NewProc("InitOnceBeginInitialize")
	procInitOnceComplete        = modkernel32.NewProc("InitOnceComplete")
)

// Guard of a lazy initialization, backed by the one-time
// initialization facility of the Windows kernel. The zero value
// corresponds to INIT_ONCE_STATIC_INIT.
//
// The state of an INIT_ONCE is pointer sized, but must not be visible
// to the garbage collector as a pointer. It is therefore stored as a
// uintptr.
type Guard struct {
	initOnce uintptr
}

// Enter the guard. See EnterWith().
func (g *Guard) Enter() bool {
	return g.EnterWith(DefaultWaiter)
}

// EnterWith enters the guard. If it returns true, the caller is the
// only goroutine that performs the initialization, and MUST call
// Leave() once completed. If it returns false, initialization has been
// completed by another goroutine.
//
// InitOnceBeginInitialize() blocks the calling thread until a
// concurrent initialization completes, meaning the Waiter is not used.
func (g *Guard) EnterWith(waiter Waiter) bool {
	var pending int32
	if r, _, err := procInitOnceBeginInitialize.Call(
		uintptr(unsafe.Pointer(&g.initOnce)),
		0,
		uintptr(unsafe.Pointer(&pending)),
		0,
	); r == 0 {
		panic(fmt.Sprintf("InitOnceBeginInitialize() failed: %s", err))
	}
	return pending != 0
}

// Leave the guard, marking initialization as completed. This function
// may only be called by the goroutine for which Enter() returned true.
func (g *Guard) Leave() {
	if r, _, err := procInitOnceComplete.Call(
		uintptr(unsafe.Pointer(&g.initOnce)),
		0,
		0,
	); r == 0 {
		panic(fmt.Sprintf("Attempted to leave a once guard that is not being initialized: %s", err))
	}
}
