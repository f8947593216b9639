package refcount_test

import (
	"sync"
	"testing"

	"github.com/buildbarn/bb-atomic/pkg/atomic"
	"github.com/buildbarn/bb-atomic/pkg/refcount"
	"github.com/stretchr/testify/require"
)

func TestReferenceCount(t *testing.T) {
	t.Run("Sequential", func(t *testing.T) {
		var rc refcount.ReferenceCount
		rc.Init(1)
		require.True(t, rc.HasReference())
		rc.Inc()
		require.Equal(t, int32(2), rc.Get())
		require.False(t, rc.Dec())
		require.True(t, rc.Dec())
		require.False(t, rc.HasReference())
	})

	t.Run("Invalid", func(t *testing.T) {
		var rc refcount.ReferenceCount
		rc.Init(refcount.Invalid)
		require.True(t, rc.IsInvalid())
		require.Panics(t, rc.Inc)
		require.Panics(t, func() { rc.Dec() })
		require.Equal(t, int32(refcount.Invalid), rc.Get())
	})

	t.Run("ReleasedObject", func(t *testing.T) {
		var rc refcount.ReferenceCount
		require.PanicsWithValue(t, "Attempted to acquire a reference on an object with reference count 0", rc.Inc)
	})

	t.Run("ConcurrentRelease", func(t *testing.T) {
		// Goroutines all acquire a reference and release it
		// again. Only the final release by the original owner
		// may report that the object needs to be released.
		var rc refcount.ReferenceCount
		rc.Init(1)
		var releases atomic.Int
		var wg sync.WaitGroup
		for g := 0; g < 16; g++ {
			rc.Inc()
			wg.Add(1)
			go func() {
				defer wg.Done()
				for n := 0; n < 1000; n++ {
					rc.Inc()
					if rc.Dec() {
						releases.Inc()
					}
				}
				if rc.Dec() {
					releases.Inc()
				}
			}()
		}
		if rc.Dec() {
			releases.Inc()
		}
		wg.Wait()
		require.Equal(t, int32(1), releases.Get())
		require.Equal(t, int32(0), rc.Get())
	})
}
