// Package metrics exposes the swarmsim planning loop's Prometheus metrics.
// Each Metrics value owns a private prometheus.Registry — callers that want
// process-wide default-registry metrics (e.g. exposing /metrics) register
// one Metrics into their own http.Handler; the library packages never touch
// prometheus.DefaultRegisterer, so embedding swarmsim in another service
// never collides with its metrics.
package metrics

import "github.com/prometheus/client_golang/prometheus"

// Metrics holds the counters and histograms BinRouter.Solve (and whatever
// embeds it) feeds during a solve. MultiPathPlanner itself stays free of any
// metrics dependency — it is the caller's job to wrap each Plan call.
type Metrics struct {
	Registry *prometheus.Registry

	// PlanRounds counts every MultiPathPlanner.Plan invocation, across
	// both the bin and robot phases.
	PlanRounds prometheus.Counter
	// PlanFatal counts Plan invocations whose results the calling phase
	// rejected (a search error above FallbackDiverted or an unacceptable
	// sync error for some agent), labeled by the phase ("bin" or "robot")
	// that failed. Both label values are created at zero by New.
	PlanFatal *prometheus.CounterVec
	// ChunkBinsMoved observes the number of bins moved per robot-phase
	// chunk.
	ChunkBinsMoved prometheus.Histogram
	// SolveDuration observes the wall-clock time of a full Solve call.
	SolveDuration prometheus.Histogram
}

// New builds a Metrics value with a fresh private registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()

	m := &Metrics{
		Registry: reg,
		PlanRounds: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "swarmsim_plan_rounds_total",
			Help: "Number of MultiPathPlanner.Plan invocations.",
		}),
		PlanFatal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "swarmsim_plan_fatal_total",
			Help: "Number of MultiPathPlanner.Plan invocations whose results the phase rejected, by phase.",
		}, []string{"phase"}),
		ChunkBinsMoved: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "swarmsim_chunk_bins_moved",
			Help:    "Bins moved per robot-phase chunk.",
			Buckets: prometheus.LinearBuckets(0, 2, 10),
		}),
		SolveDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "swarmsim_solve_duration_seconds",
			Help:    "Wall-clock duration of a BinRouter.Solve call.",
			Buckets: prometheus.DefBuckets,
		}),
	}
	reg.MustRegister(m.PlanRounds, m.PlanFatal, m.ChunkBinsMoved, m.SolveDuration)
	m.PlanFatal.WithLabelValues("bin")
	m.PlanFatal.WithLabelValues("robot")
	return m
}
