package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/buildbarn/bb-atomic/pkg/atomic"
	"github.com/buildbarn/bb-atomic/pkg/clock"
	"github.com/buildbarn/bb-atomic/pkg/configuration"
	"github.com/buildbarn/bb-atomic/pkg/once"
	"github.com/buildbarn/bb-atomic/pkg/program"
	"github.com/buildbarn/bb-atomic/pkg/stress"
	"github.com/buildbarn/bb-atomic/pkg/util"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// A utility for validating the atomic primitives and once guards that
// are compiled into this binary. Each configured scenario is run by a
// pool of concurrent workers. The program terminates with a non-zero
// exit code if any scenario observes lost updates, duplicate
// initialization or other invariant violations.
//
// The backend under test is selected at build time, e.g.:
//
//	go build -tags bb_atomic_locked ./cmd/bb_atomic_stress

func main() {
	program.RunMain(func(ctx context.Context, siblingsGroup, dependenciesGroup program.Group) error {
		if len(os.Args) != 2 {
			return status.Error(codes.InvalidArgument, "Usage: bb_atomic_stress bb_atomic_stress.jsonnet")
		}
		applicationConfiguration, err := configuration.GetApplicationConfiguration(os.Args[1])
		if err != nil {
			return util.StatusWrapf(err, "Failed to read configuration from %s", os.Args[1])
		}

		if listenAddress := applicationConfiguration.DiagnosticsHTTPListenAddress; listenAddress != "" {
			dependenciesGroup.Go(func(ctx context.Context, siblingsGroup, dependenciesGroup program.Group) error {
				server := &http.Server{
					Addr:    listenAddress,
					Handler: util.NewDiagnosticsRouter(),
				}
				go func() {
					<-ctx.Done()
					server.Close()
				}()
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					return util.StatusWrap(err, "Diagnostics HTTP server")
				}
				return nil
			})
		}

		waiter := once.NewMetricsWaiter(
			once.NewSpinWaiter(clock.SystemClock, applicationConfiguration.SpinWaiter.NewBackOffFactory()),
			clock.SystemClock,
			"bb_atomic_stress")
		runner := stress.NewRunner(clock.SystemClock, waiter, applicationConfiguration.Workers, applicationConfiguration.Iterations)

		log.Printf("Running %d scenarios against backend %#v with %d workers", len(applicationConfiguration.Scenarios), atomic.Backend, applicationConfiguration.Workers)
		for _, scenario := range applicationConfiguration.Scenarios {
			duration, err := runner.Run(ctx, scenario)
			if err != nil {
				return err
			}
			log.Printf("Scenario %#v passed in %s", scenario, duration)
		}
		return nil
	})
}
