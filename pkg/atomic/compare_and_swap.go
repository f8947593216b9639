package atomic

// compareAndSwapFromReturnOld derives a boolean compare-and-swap from
// one that returns the value observed while comparing.
func compareAndSwapFromReturnOld[T comparable](compareAndSwapReturnOld func(old, new T) T, old, new T) bool {
	return compareAndSwapReturnOld(old, new) == old
}

// compareAndSwapReturnOldFromCompareAndSwap derives a compare-and-swap
// that returns the observed value from a boolean one.
//
// A failing compare-and-swap only tells us that the value differed from
// old at that point in time. The value is loaded afterwards, which may
// have been changed back to old in the meantime. Retry in that case.
// The loop terminates as soon as either the swap succeeds, or a value
// other than old is observed.
func compareAndSwapReturnOldFromCompareAndSwap[T comparable](load func() T, compareAndSwap func(old, new T) bool, old, new T) T {
	for {
		if compareAndSwap(old, new) {
			return old
		}
		if current := load(); current != old {
			return current
		}
	}
}

// addFromCompareAndSwap atomically adds delta to a value for which
// only loads and boolean compare-and-swap are available. It returns
// the value prior to the addition.
func addFromCompareAndSwap(load func() int32, compareAndSwap func(old, new int32) bool, delta int32) int32 {
	for {
		old := load()
		if compareAndSwap(old, old+delta) {
			return old
		}
	}
}
