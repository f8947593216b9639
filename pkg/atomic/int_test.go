package atomic_test

import (
	"sync"
	"testing"

	"github.com/buildbarn/bb-atomic/pkg/atomic"
	"github.com/stretchr/testify/require"
)

var intBackends = map[string]func() atomic.IntOps{
	"Standard":  func() atomic.IntOps { return &atomic.StandardInt{} },
	"Intrinsic": func() atomic.IntOps { return &atomic.IntrinsicInt{} },
	"Legacy":    func() atomic.IntOps { return &atomic.LegacyInt{} },
	"Library":   func() atomic.IntOps { return &atomic.LibraryInt{} },
	"Locked":    func() atomic.IntOps { return &atomic.LockedInt{} },
	"Selected":  func() atomic.IntOps { return &atomic.Int{} },
}

const (
	testGoroutines = 16
	testIterations = 2000
)

func TestIntSequential(t *testing.T) {
	for name, newInt := range intBackends {
		t.Run(name, func(t *testing.T) {
			t.Run("ZeroValue", func(t *testing.T) {
				i := newInt()
				require.Equal(t, int32(0), i.Get())
				require.Equal(t, int32(0), i.GetRelaxed())
			})

			t.Run("SetRelaxed", func(t *testing.T) {
				i := newInt()
				i.Initialize(12)
				require.Equal(t, int32(12), i.Get())
				i.SetRelaxed(-5)
				require.Equal(t, int32(-5), i.GetRelaxed())
				require.Equal(t, int32(-5), i.Get())
			})

			t.Run("IncDec", func(t *testing.T) {
				i := newInt()
				i.Inc()
				i.Inc()
				i.Inc()
				i.Dec()
				require.Equal(t, int32(2), i.Get())
			})

			t.Run("DecAndTest", func(t *testing.T) {
				// Only the transition from one to zero
				// should be reported.
				i := newInt()
				i.Initialize(2)
				require.False(t, i.DecAndTest())
				require.Equal(t, int32(1), i.Get())
				require.True(t, i.DecAndTest())
				require.Equal(t, int32(0), i.Get())
				require.False(t, i.DecAndTest())
				require.Equal(t, int32(-1), i.Get())
			})

			t.Run("CompareAndSwapSuccess", func(t *testing.T) {
				i := newInt()
				i.Initialize(7)
				require.True(t, i.CompareAndSwap(7, 8))
				require.Equal(t, int32(8), i.Get())
			})

			t.Run("CompareAndSwapFailure", func(t *testing.T) {
				i := newInt()
				i.Initialize(7)
				require.False(t, i.CompareAndSwap(6, 8))
				require.Equal(t, int32(7), i.Get())
			})

			t.Run("CompareAndSwapReturnOldSuccess", func(t *testing.T) {
				i := newInt()
				i.Initialize(7)
				require.Equal(t, int32(7), i.CompareAndSwapReturnOld(7, 9))
				require.Equal(t, int32(9), i.Get())
			})

			t.Run("CompareAndSwapReturnOldFailure", func(t *testing.T) {
				i := newInt()
				i.Initialize(7)
				require.Equal(t, int32(7), i.CompareAndSwapReturnOld(3, 9))
				require.Equal(t, int32(7), i.Get())
			})
		})
	}
}

func TestIntConcurrent(t *testing.T) {
	for name, newInt := range intBackends {
		t.Run(name, func(t *testing.T) {
			t.Run("IncDec", func(t *testing.T) {
				// Even goroutines increment twice per
				// iteration, odd ones decrement once. No
				// updates may get lost.
				i := newInt()
				var wg sync.WaitGroup
				for g := 0; g < testGoroutines; g++ {
					wg.Add(1)
					go func() {
						defer wg.Done()
						for n := 0; n < testIterations; n++ {
							if g%2 == 0 {
								i.Inc()
								i.Inc()
							} else {
								i.Dec()
							}
						}
					}()
				}
				wg.Wait()
				require.Equal(t, int32(testGoroutines/2*testIterations), i.Get())
			})

			t.Run("DecAndTest", func(t *testing.T) {
				// Many goroutines race to release the
				// last reference. Exactly one of them may
				// observe the transition to zero.
				for round := 0; round < 100; round++ {
					i := newInt()
					i.Initialize(testGoroutines)
					var lastReleases atomic.StandardInt
					var wg sync.WaitGroup
					for g := 0; g < testGoroutines; g++ {
						wg.Add(1)
						go func() {
							defer wg.Done()
							if i.DecAndTest() {
								lastReleases.Inc()
							}
						}()
					}
					wg.Wait()
					require.Equal(t, int32(1), lastReleases.Get())
					require.Equal(t, int32(0), i.Get())
				}
			})

			t.Run("CompareAndSwap", func(t *testing.T) {
				// Increment the counter using
				// compare-and-swap loops. Every successful
				// swap accounts for exactly one increment.
				i := newInt()
				var successes atomic.StandardInt
				var wg sync.WaitGroup
				for g := 0; g < testGoroutines; g++ {
					wg.Add(1)
					go func() {
						defer wg.Done()
						for n := 0; n < testIterations; n++ {
							for {
								old := i.Get()
								if i.CompareAndSwap(old, old+1) {
									successes.Inc()
									break
								}
							}
						}
					}()
				}
				wg.Wait()
				require.Equal(t, int32(testGoroutines*testIterations), i.Get())
				require.Equal(t, successes.Get(), i.Get())
			})

			t.Run("CompareAndSwapReturnOld", func(t *testing.T) {
				// The value returned must be consistent
				// with whether the swap took place. Use
				// the returned value to retry without an
				// additional load.
				i := newInt()
				var wg sync.WaitGroup
				for g := 0; g < testGoroutines; g++ {
					wg.Add(1)
					go func() {
						defer wg.Done()
						expected := int32(0)
						for n := 0; n < testIterations; n++ {
							for {
								observed := i.CompareAndSwapReturnOld(expected, expected+1)
								if observed == expected {
									expected++
									break
								}
								expected = observed
							}
						}
					}()
				}
				wg.Wait()
				require.Equal(t, int32(testGoroutines*testIterations), i.Get())
			})
		})
	}
}
