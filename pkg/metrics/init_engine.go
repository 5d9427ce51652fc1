package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initEngineMetrics() {
	r.CommunitiesProcessedTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "fastbc_communities_processed_total",
			Help: "Communities whose centrality contribution has been folded",
		},
	)

	r.CommunitySize = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "fastbc_community_size",
			Help:    "Member count per processed community",
			Buckets: prometheus.ExponentialBuckets(1, 4, 12),
		},
	)

	r.CommunityBorders = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "fastbc_community_border_vertices",
			Help:    "Border vertex count per processed community",
			Buckets: prometheus.ExponentialBuckets(1, 2, 16),
		},
	)

	r.RelaxationSweeps = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "fastbc_relaxation_sweeps",
			Help:    "Relaxation sweeps until border-distance vectors converged",
			Buckets: prometheus.ExponentialBuckets(1, 2, 12),
		},
	)

	r.CommunityDuration = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "fastbc_community_duration_seconds",
			Help:    "Wall time per community centrality pass",
			Buckets: []float64{0.0001, 0.001, 0.01, 0.1, 1, 10, 60},
		},
	)
}

func (r *Registry) initPipelineMetrics() {
	r.RunsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "fastbc_runs_total",
			Help: "Completed centrality runs by status",
		},
		[]string{"status"},
	)

	r.RunDuration = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "fastbc_run_duration_seconds",
			Help:    "End-to-end pipeline duration",
			Buckets: []float64{0.01, 0.1, 1, 10, 60, 300, 1800},
		},
	)
}
