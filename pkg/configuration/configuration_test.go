package configuration_test

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/buildbarn/bb-atomic/pkg/configuration"
	"github.com/cenkalti/backoff/v4"
	"github.com/stretchr/testify/require"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func writeConfiguration(t *testing.T, contents string) string {
	path := filepath.Join(t.TempDir(), "bb_atomic_stress.jsonnet")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestGetApplicationConfiguration(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		c, err := configuration.GetApplicationConfiguration(writeConfiguration(t, `{}`))
		require.NoError(t, err)
		require.Equal(t, &configuration.ApplicationConfiguration{
			Workers:    runtime.GOMAXPROCS(0),
			Iterations: 10000,
			Scenarios:  configuration.AllScenarios,
			SpinWaiter: &configuration.SpinWaiterConfiguration{
				InitialIntervalNanoseconds: 1000,
				MaximumIntervalNanoseconds: 1000000,
				Multiplier:                 2,
			},
		}, c)
	})

	t.Run("Explicit", func(t *testing.T) {
		c, err := configuration.GetApplicationConfiguration(writeConfiguration(t, `{
			diagnosticsHttpListenAddress: ':9980',
			workers: 4,
			iterations: 100,
			scenarios: ['once_guard'],
			spinWaiter: {
				initialIntervalNanoseconds: 0,
				maximumIntervalNanoseconds: 0,
				multiplier: 1,
			},
		}`))
		require.NoError(t, err)
		require.Equal(t, ":9980", c.DiagnosticsHTTPListenAddress)
		require.Equal(t, 4, c.Workers)
		require.Equal(t, 100, c.Iterations)
		require.Equal(t, []string{"once_guard"}, c.Scenarios)
		require.Equal(t, time.Duration(0), c.SpinWaiter.NewBackOffFactory()().NextBackOff())
	})

	t.Run("UnknownScenario", func(t *testing.T) {
		_, err := configuration.GetApplicationConfiguration(writeConfiguration(t, `{ scenarios: ['nonexistent'] }`))
		require.Equal(t, status.Error(codes.InvalidArgument, "Unknown scenario \"nonexistent\"").Error(), err.Error())
	})

	t.Run("NegativeWorkers", func(t *testing.T) {
		_, err := configuration.GetApplicationConfiguration(writeConfiguration(t, `{ workers: -1 }`))
		require.Equal(t, codes.InvalidArgument, status.Code(err))
	})

	t.Run("TooManyTotalIterations", func(t *testing.T) {
		_, err := configuration.GetApplicationConfiguration(writeConfiguration(t, `{ workers: 2, iterations: 2147483648 }`))
		require.Equal(t, status.Error(codes.InvalidArgument, "Workers multiplied by iterations exceeds 2147483647").Error(), err.Error())
	})

	t.Run("MaximumTotalIterations", func(t *testing.T) {
		c, err := configuration.GetApplicationConfiguration(writeConfiguration(t, `{ workers: 1, iterations: 2147483647 }`))
		require.NoError(t, err)
		require.Equal(t, 2147483647, c.Iterations)
	})

	t.Run("InvalidSpinWaiter", func(t *testing.T) {
		_, err := configuration.GetApplicationConfiguration(writeConfiguration(t, `{
			spinWaiter: {
				initialIntervalNanoseconds: 1000,
				maximumIntervalNanoseconds: 10,
				multiplier: 2,
			},
		}`))
		require.Equal(t, codes.InvalidArgument, status.Code(err))
	})
}

func TestSpinWaiterConfigurationExponential(t *testing.T) {
	c := configuration.SpinWaiterConfiguration{
		InitialIntervalNanoseconds: 1000,
		MaximumIntervalNanoseconds: 2000,
		Multiplier:                 2,
	}
	b := c.NewBackOffFactory()()
	for i := 0; i < 10; i++ {
		d := b.NextBackOff()
		require.NotEqual(t, backoff.Stop, d)
		require.Greater(t, d, time.Duration(0))
	}
}
