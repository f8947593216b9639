package once

import (
	"github.com/buildbarn/bb-atomic/pkg/clock"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	waiterPrometheusMetrics Guard

	waiterWaitDurationSeconds = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "buildbarn",
			Subsystem: "once",
			Name:      "waiter_wait_duration_seconds",
			Help:      "Amount of time spent waiting for concurrent initialization to complete, in seconds.",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 10, 8),
		},
		[]string{"name"})
)

type metricsWaiter struct {
	base  Waiter
	clock clock.Clock

	waitDurationSeconds prometheus.Observer
}

// NewMetricsWaiter creates a decorator for Waiter that exposes the
// duration of waits through a Prometheus histogram. The histogram's
// _count series provides the number of waits.
func NewMetricsWaiter(base Waiter, clock clock.Clock, name string) Waiter {
	if waiterPrometheusMetrics.Enter() {
		prometheus.MustRegister(waiterWaitDurationSeconds)
		waiterPrometheusMetrics.Leave()
	}

	return &metricsWaiter{
		base:  base,
		clock: clock,

		waitDurationSeconds: waiterWaitDurationSeconds.WithLabelValues(name),
	}
}

func (w *metricsWaiter) Wait(done func() bool) {
	start := w.clock.Now()
	w.base.Wait(done)
	w.waitDurationSeconds.Observe(w.clock.Now().Sub(start).Seconds())
}
