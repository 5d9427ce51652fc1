package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initPartitionerMetrics() {
	r.PartitionLevelsTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "fastbc_partition_levels_total",
			Help: "Total number of coarsening levels processed",
		},
	)

	r.PartitionModularity = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "fastbc_partition_modularity",
			Help: "Modularity of the most recently accepted partition level",
		},
	)

	r.PartitionCommunities = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "fastbc_partition_communities",
			Help: "Community count after the most recent level",
		},
	)

	r.PartitionLevelDuration = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "fastbc_partition_level_duration_seconds",
			Help:    "Wall time per partition level",
			Buckets: []float64{0.001, 0.01, 0.1, 0.5, 1, 5, 30, 120},
		},
	)
}
