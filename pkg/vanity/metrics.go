package vanity

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// searchAttempts counts published attempts across all searches.
	searchAttempts = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "vanity",
		Subsystem: "search",
		Name:      "attempts_total",
		Help:      "Total candidate keys generated and tested",
	})

	// searchMatches counts searches that ended with a match.
	searchMatches = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "vanity",
		Subsystem: "search",
		Name:      "matches_total",
		Help:      "Total matching keys found",
	})

	// workerFailures counts workers stopped by a generator error.
	workerFailures = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "vanity",
		Subsystem: "search",
		Name:      "worker_failures_total",
		Help:      "Total workers stopped because candidate generation failed",
	})

	// workersActive tracks running workers.
	workersActive = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "vanity",
		Subsystem: "search",
		Name:      "workers_active",
		Help:      "Number of workers currently searching",
	})

	// searchDuration measures wall time per search.
	// Labels: outcome (matched, cancelled, failed)
	searchDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "vanity",
		Subsystem: "search",
		Name:      "duration_seconds",
		Help:      "Search wall time in seconds",
		Buckets:   []float64{0.1, 1, 5, 15, 60, 300, 900, 3600, 14400, 86400},
	}, []string{"outcome"})
)
