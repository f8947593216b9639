package atomic

// Uint holds a uint32 that can only be accessed through atomic
// operations. It is stored in an Int, reinterpreting values between
// signed and unsigned representations. The bit pattern stored in the
// cell is preserved in both directions.
type Uint struct {
	v Int
}

// Initialize the atomic variable with a given value. The atomic
// variable will be zero initialized when not called.
func (i *Uint) Initialize(val uint32) {
	i.v.Initialize(int32(val))
}

// Get the current value.
func (i *Uint) Get() uint32 {
	return uint32(i.v.Get())
}

// CompareAndSwap executes a compare-and-swap.
func (i *Uint) CompareAndSwap(old, new uint32) bool {
	return i.v.CompareAndSwap(int32(old), int32(new))
}

// CompareAndSwapReturnOld executes a compare-and-swap, returning the
// value observed while comparing.
func (i *Uint) CompareAndSwapReturnOld(old, new uint32) uint32 {
	return uint32(i.v.CompareAndSwapReturnOld(int32(old), int32(new)))
}
