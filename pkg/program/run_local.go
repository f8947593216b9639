package program

import (
	"context"

	"github.com/buildbarn/bb-atomic/pkg/atomic"
)

type runLocalErrorLogger struct {
	firstError atomic.FirstError
	cancel     context.CancelFunc
}

func (el *runLocalErrorLogger) Log(err error) {
	if el.firstError.SetError(err) {
		el.cancel()
	}
}

// RunLocal runs a set of goroutines until completion. This function
// provides the same functionality as errgroup.Group, except that
// routines are placed in a hierarchy of siblings and dependencies. The
// first error returned by any routine cancels all others, and is
// returned.
func RunLocal(ctx context.Context, routine Routine) error {
	innerCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	errorLogger := &runLocalErrorLogger{
		cancel: cancel,
	}
	run(innerCtx, errorLogger, routine)
	return errorLogger.firstError.Err()
}
