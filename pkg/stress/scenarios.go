package stress

import (
	"context"

	"github.com/buildbarn/bb-atomic/pkg/atomic"
	"github.com/buildbarn/bb-atomic/pkg/configuration"
	"github.com/buildbarn/bb-atomic/pkg/once"
	"github.com/buildbarn/bb-atomic/pkg/refcount"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// runCounter lets even workers increment and odd workers decrement a
// shared counter. The final value must equal the net sum of all
// operations.
func (r *Runner) runCounter(ctx context.Context) error {
	var counter atomic.Int
	tallies := make([]atomic.PaddedInt, r.workers)
	if err := r.runWorkers(ctx, func(ctx context.Context, id int) error {
		for n := 0; n < r.iterations; n++ {
			if id%2 == 0 {
				counter.Inc()
				tallies[id].Inc()
			} else {
				counter.Dec()
				tallies[id].Dec()
			}
		}
		return checkContext(ctx)
	}); err != nil {
		return err
	}

	expected := int32(0)
	for i := range tallies {
		expected += tallies[i].Get()
	}
	if actual := counter.Get(); actual != expected {
		return status.Errorf(codes.Internal, "Counter has value %d, while %d was expected", actual, expected)
	}
	return nil
}

// runLastRelease lets all workers drop references to a shared object.
// Exactly one of them must observe the release of the last reference.
func (r *Runner) runLastRelease(ctx context.Context) error {
	if r.iterations > 0 && int64(r.workers) > configuration.MaximumTotalIterations/int64(r.iterations) {
		return status.Errorf(codes.InvalidArgument, "Cannot hold %d references per worker for %d workers", r.iterations, r.workers)
	}
	var rc refcount.ReferenceCount
	rc.Init(int32(r.workers * r.iterations))
	var lastReleases atomic.Int
	if err := r.runWorkers(ctx, func(ctx context.Context, id int) error {
		for n := 0; n < r.iterations; n++ {
			if rc.Dec() {
				lastReleases.Inc()
			}
		}
		return nil
	}); err != nil {
		return err
	}

	if n := lastReleases.Get(); n != 1 {
		return status.Errorf(codes.Internal, "Last reference was released %d times", n)
	}
	if n := rc.Get(); n != 0 {
		return status.Errorf(codes.Internal, "Reference count has value %d after all references were released", n)
	}
	return nil
}

// runCompareAndSwap lets workers increment a shared counter using
// compare-and-swap loops. Half of the workers use the boolean flavor,
// while the others use the flavor that returns the observed value. As
// the counter only increases, a failed swap must always observe a value
// larger than the one that was expected.
func (r *Runner) runCompareAndSwap(ctx context.Context) error {
	var counter atomic.Int
	successes := make([]atomic.PaddedInt, r.workers)
	if err := r.runWorkers(ctx, func(ctx context.Context, id int) error {
		if id%2 == 0 {
			for n := 0; n < r.iterations; n++ {
				for {
					old := counter.Get()
					if counter.CompareAndSwap(old, old+1) {
						break
					}
				}
				successes[id].Inc()
			}
		} else {
			expected := counter.Get()
			for n := 0; n < r.iterations; n++ {
				for {
					observed := counter.CompareAndSwapReturnOld(expected, expected+1)
					if observed == expected {
						expected++
						break
					}
					if observed < expected {
						return status.Errorf(codes.Internal, "Compare-and-swap observed value %d, while the counter was already at %d", observed, expected)
					}
					expected = observed
				}
				successes[id].Inc()
			}
		}
		return checkContext(ctx)
	}); err != nil {
		return err
	}

	expected := int32(0)
	for i := range successes {
		expected += successes[i].Get()
	}
	if actual := counter.Get(); actual != expected {
		return status.Errorf(codes.Internal, "Counter has value %d after %d successful swaps", actual, expected)
	}
	return nil
}

// runOnceGuard lets all workers race to initialize a value guarded by
// a fresh once guard, for a number of rounds. Exactly one worker may
// initialize it, and all workers must observe the initialized value.
func (r *Runner) runOnceGuard(ctx context.Context) error {
	for round := 1; round <= r.rounds(); round++ {
		var guard once.Guard
		var value int
		var initializers atomic.Int
		if err := r.runWorkers(ctx, func(ctx context.Context, id int) error {
			if guard.EnterWith(r.waiter) {
				initializers.Inc()
				value = round
				guard.Leave()
			}
			if value != round {
				return status.Errorf(codes.Internal, "Worker %d observed value %d after initialization, while %d was expected", id, value, round)
			}
			return nil
		}); err != nil {
			return err
		}
		if n := initializers.Get(); n != 1 {
			return status.Errorf(codes.Internal, "Round %d was initialized %d times", round, n)
		}
		if err := checkContext(ctx); err != nil {
			return err
		}
	}
	return nil
}

// runFirstErrorWins lets all workers report a distinct error code to a
// shared status, for a number of rounds. Exactly one of the reported
// codes must be retained.
func (r *Runner) runFirstErrorWins(ctx context.Context) error {
	for round := 0; round < r.rounds(); round++ {
		var code atomic.Status
		var firstError atomic.FirstError
		var errorsStored atomic.Int
		if err := r.runWorkers(ctx, func(ctx context.Context, id int) error {
			code.SetError(workerCode(id))
			if firstError.SetError(status.Errorf(workerCode(id), "Worker %d", id)) {
				errorsStored.Inc()
			}
			return nil
		}); err != nil {
			return err
		}

		retained := code.Code()
		found := false
		for id := 0; id < r.workers; id++ {
			if workerCode(id) == retained {
				found = true
				break
			}
		}
		if !found {
			return status.Errorf(codes.Internal, "Status retained code %s, which was not reported by any worker", retained)
		}
		if n := errorsStored.Get(); n != 1 {
			return status.Errorf(codes.Internal, "%d errors were stored, while only the first one should have been", n)
		}
		if firstError.Err() == nil {
			return status.Error(codes.Internal, "No error was retained")
		}
		if err := checkContext(ctx); err != nil {
			return err
		}
	}
	return nil
}

// workerCode returns the non-OK gRPC status code reported by a worker.
func workerCode(id int) codes.Code {
	return codes.Code(1 + id%16)
}
