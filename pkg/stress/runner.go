// Package stress contains scenarios that hammer the atomic primitives
// and once guards from many goroutines, validating that no updates get
// lost and that initialization happens exactly once.
package stress

import (
	"context"
	"time"

	"github.com/buildbarn/bb-atomic/pkg/atomic"
	"github.com/buildbarn/bb-atomic/pkg/clock"
	"github.com/buildbarn/bb-atomic/pkg/configuration"
	"github.com/buildbarn/bb-atomic/pkg/once"
	"github.com/buildbarn/bb-atomic/pkg/util"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var (
	runnerPrometheusMetrics once.Guard

	runnerScenarioDurationSeconds = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "buildbarn",
			Subsystem: "atomic_stress",
			Name:      "scenario_duration_seconds",
			Help:      "Amount of time spent running stress test scenarios, in seconds.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 2, 16),
		},
		[]string{"backend", "scenario", "grpc_code"})
)

// Runner of stress test scenarios.
type Runner struct {
	clock      clock.Clock
	waiter     once.Waiter
	workers    int
	iterations int
}

// NewRunner creates a Runner that runs every scenario with a given
// number of concurrent workers, each performing a given number of
// iterations. The Waiter is used by goroutines that lose the race to
// initialize a once guard.
func NewRunner(clock clock.Clock, waiter once.Waiter, workers, iterations int) *Runner {
	if runnerPrometheusMetrics.Enter() {
		prometheus.MustRegister(runnerScenarioDurationSeconds)
		runnerPrometheusMetrics.Leave()
	}
	return &Runner{
		clock:      clock,
		waiter:     waiter,
		workers:    workers,
		iterations: iterations,
	}
}

// Run a scenario by name. An error is returned if the scenario is
// unknown, if it got interrupted, or if an invariant was violated.
func (r *Runner) Run(ctx context.Context, scenario string) (time.Duration, error) {
	var run func(ctx context.Context) error
	switch scenario {
	case configuration.ScenarioCounter:
		run = r.runCounter
	case configuration.ScenarioLastRelease:
		run = r.runLastRelease
	case configuration.ScenarioCompareAndSwap:
		run = r.runCompareAndSwap
	case configuration.ScenarioOnceGuard:
		run = r.runOnceGuard
	case configuration.ScenarioFirstErrorWins:
		run = r.runFirstErrorWins
	default:
		return 0, status.Errorf(codes.InvalidArgument, "Unknown scenario %#v", scenario)
	}

	start := r.clock.Now()
	err := run(ctx)
	duration := r.clock.Now().Sub(start)
	runnerScenarioDurationSeconds.WithLabelValues(atomic.Backend, scenario, status.Code(err).String()).Observe(duration.Seconds())
	if err != nil {
		return duration, util.StatusWrapf(err, "Scenario %#v", scenario)
	}
	return duration, nil
}

// runWorkers runs a function for every worker concurrently, returning
// the first error.
func (r *Runner) runWorkers(ctx context.Context, worker func(ctx context.Context, id int) error) error {
	group, groupCtx := errgroup.WithContext(ctx)
	for id := 0; id < r.workers; id++ {
		group.Go(func() error {
			return worker(groupCtx, id)
		})
	}
	return group.Wait()
}

func (r *Runner) rounds() int {
	return r.iterations/100 + 1
}

func checkContext(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return status.FromContextError(err).Err()
	}
	return nil
}
