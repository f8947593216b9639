package once_test

import (
	"testing"
	"time"

	"github.com/buildbarn/bb-atomic/internal/mock"
	"github.com/buildbarn/bb-atomic/pkg/clock"
	"github.com/buildbarn/bb-atomic/pkg/once"
	"github.com/cenkalti/backoff/v4"
	"github.com/stretchr/testify/require"

	"go.uber.org/mock/gomock"
)

func TestSpinWaiter(t *testing.T) {
	ctrl := gomock.NewController(t)

	t.Run("AlreadyDone", func(t *testing.T) {
		// No BackOff should be created if the condition is
		// already satisfied.
		waiter := once.NewSpinWaiter(mock.NewMockClock(ctrl), func() backoff.BackOff {
			t.Fatal("BackOff should not be created")
			return nil
		})
		waiter.Wait(func() bool { return true })
	})

	t.Run("Polling", func(t *testing.T) {
		mockClock := mock.NewMockClock(ctrl)
		b := mock.NewMockBackOff(ctrl)
		waiter := once.NewSpinWaiter(mockClock, func() backoff.BackOff { return b })

		// A zero interval should yield. A positive interval
		// should sleep. An exhausted policy should be reset,
		// as waiting may not be abandoned.
		gomock.InOrder(
			b.EXPECT().NextBackOff().Return(time.Duration(0)),
			b.EXPECT().NextBackOff().Return(5*time.Millisecond),
			mockClock.EXPECT().NewTimer(5*time.Millisecond).DoAndReturn(func(d time.Duration) (clock.Timer, <-chan time.Time) {
				c := make(chan time.Time, 1)
				c <- time.Unix(1000, 0)
				return mock.NewMockTimer(ctrl), c
			}),
			b.EXPECT().NextBackOff().Return(backoff.Stop),
			b.EXPECT().Reset(),
		)

		polls := 0
		waiter.Wait(func() bool {
			polls++
			return polls == 4
		})
		require.Equal(t, 4, polls)
	})
}

func TestExponentialBackOffFactory(t *testing.T) {
	newBackOff := once.NewExponentialBackOffFactory(time.Microsecond, 4*time.Microsecond, 2)

	// Every call should yield a fresh policy that never expires.
	for i := 0; i < 2; i++ {
		b := newBackOff()
		for n := 0; n < 100; n++ {
			d := b.NextBackOff()
			require.NotEqual(t, backoff.Stop, d)
			require.LessOrEqual(t, d, 6*time.Microsecond)
		}
	}
}

func TestMetricsWaiter(t *testing.T) {
	ctrl := gomock.NewController(t)

	base := mock.NewMockWaiter(ctrl)
	mockClock := mock.NewMockClock(ctrl)
	waiter := once.NewMetricsWaiter(base, mockClock, "test")

	done := func() bool { return true }
	gomock.InOrder(
		mockClock.EXPECT().Now().Return(time.Unix(1000, 0)),
		base.EXPECT().Wait(gomock.Any()),
		mockClock.EXPECT().Now().Return(time.Unix(1000, 500)),
	)
	waiter.Wait(done)
}
