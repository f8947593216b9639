// Package configuration contains the schema of the configuration file
// of bb_atomic_stress, and functions for loading it.
package configuration

import (
	"math"
	"runtime"
	"time"

	"github.com/buildbarn/bb-atomic/pkg/once"
	"github.com/buildbarn/bb-atomic/pkg/util"
	"github.com/cenkalti/backoff/v4"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Names of the scenarios that may be listed in the configuration.
const (
	ScenarioCounter        = "counter"
	ScenarioLastRelease    = "last_release"
	ScenarioCompareAndSwap = "compare_and_swap"
	ScenarioOnceGuard      = "once_guard"
	ScenarioFirstErrorWins = "first_error_wins"
)

// MaximumTotalIterations is the upper bound of the number of workers
// multiplied by the number of iterations. Scenarios keep their tallies
// in atomic.Int, which is 32 bits wide.
const MaximumTotalIterations = math.MaxInt32

// AllScenarios lists all scenarios, in the order in which they are run
// when the configuration does not list any.
var AllScenarios = []string{
	ScenarioCounter,
	ScenarioLastRelease,
	ScenarioCompareAndSwap,
	ScenarioOnceGuard,
	ScenarioFirstErrorWins,
}

// SpinWaiterConfiguration controls how goroutines wait for a
// concurrent initialization to complete.
type SpinWaiterConfiguration struct {
	// Interval between the first two polls. Zero causes the
	// goroutine to yield instead of sleeping.
	InitialIntervalNanoseconds int64 `json:"initialIntervalNanoseconds"`
	// Upper bound for the interval between polls.
	MaximumIntervalNanoseconds int64 `json:"maximumIntervalNanoseconds"`
	// Factor by which the interval grows after every poll.
	Multiplier float64 `json:"multiplier"`
}

// ApplicationConfiguration is the top-level configuration message of
// bb_atomic_stress.
type ApplicationConfiguration struct {
	// Address on which to expose Prometheus metrics. Disabled if
	// empty.
	DiagnosticsHTTPListenAddress string `json:"diagnosticsHttpListenAddress"`
	// Number of goroutines that run concurrently in every scenario.
	// Defaults to GOMAXPROCS.
	Workers int `json:"workers"`
	// Number of operations performed by every worker.
	Iterations int `json:"iterations"`
	// Names of the scenarios to run. Defaults to all scenarios.
	Scenarios []string `json:"scenarios"`
	// Wait strategy used by the once guard scenario.
	SpinWaiter *SpinWaiterConfiguration `json:"spinWaiter"`
}

// GetApplicationConfiguration loads the configuration of
// bb_atomic_stress from a Jsonnet file, applying defaults and
// validating it.
func GetApplicationConfiguration(path string) (*ApplicationConfiguration, error) {
	var configuration ApplicationConfiguration
	if err := util.UnmarshalConfigurationFromFile(path, &configuration); err != nil {
		return nil, err
	}
	if err := configuration.setDefaultsAndValidate(); err != nil {
		return nil, err
	}
	return &configuration, nil
}

func (c *ApplicationConfiguration) setDefaultsAndValidate() error {
	if c.Workers == 0 {
		c.Workers = runtime.GOMAXPROCS(0)
	}
	if c.Workers < 1 {
		return status.Errorf(codes.InvalidArgument, "Invalid number of workers: %d", c.Workers)
	}
	if c.Iterations == 0 {
		c.Iterations = 10000
	}
	if c.Iterations < 1 {
		return status.Errorf(codes.InvalidArgument, "Invalid number of iterations: %d", c.Iterations)
	}
	if int64(c.Workers) > MaximumTotalIterations/int64(c.Iterations) {
		return status.Errorf(codes.InvalidArgument, "Workers multiplied by iterations exceeds %d", MaximumTotalIterations)
	}
	if len(c.Scenarios) == 0 {
		c.Scenarios = AllScenarios
	}
	for _, scenario := range c.Scenarios {
		found := false
		for _, known := range AllScenarios {
			if scenario == known {
				found = true
				break
			}
		}
		if !found {
			return status.Errorf(codes.InvalidArgument, "Unknown scenario %#v", scenario)
		}
	}
	if c.SpinWaiter == nil {
		c.SpinWaiter = &SpinWaiterConfiguration{
			InitialIntervalNanoseconds: int64(time.Microsecond),
			MaximumIntervalNanoseconds: int64(time.Millisecond),
			Multiplier:                 2,
		}
	}
	return c.SpinWaiter.validate()
}

func (c *SpinWaiterConfiguration) validate() error {
	if c.InitialIntervalNanoseconds < 0 {
		return status.Errorf(codes.InvalidArgument, "Invalid initial interval: %d", c.InitialIntervalNanoseconds)
	}
	if c.MaximumIntervalNanoseconds < c.InitialIntervalNanoseconds {
		return status.Errorf(codes.InvalidArgument, "Maximum interval %d is smaller than initial interval %d", c.MaximumIntervalNanoseconds, c.InitialIntervalNanoseconds)
	}
	if c.Multiplier < 1 {
		return status.Errorf(codes.InvalidArgument, "Invalid multiplier: %g", c.Multiplier)
	}
	return nil
}

// NewBackOffFactory creates a factory of BackOff policies that can be
// provided to once.NewSpinWaiter(). An initial interval of zero yields
// a policy that never sleeps.
func (c *SpinWaiterConfiguration) NewBackOffFactory() func() backoff.BackOff {
	if c.InitialIntervalNanoseconds == 0 {
		return func() backoff.BackOff {
			return &backoff.ZeroBackOff{}
		}
	}
	return once.NewExponentialBackOffFactory(
		time.Duration(c.InitialIntervalNanoseconds),
		time.Duration(c.MaximumIntervalNanoseconds),
		c.Multiplier)
}
