// Package metrics exposes prometheus instrumentation for the partitioning
// and centrality stages. All metrics live on a Registry so tests and
// embedders can run isolated instances; DefaultRegistry serves the common
// single-process case.
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Registry bundles every metric the pipeline records.
type Registry struct {
	// Partitioner metrics
	PartitionLevelsTotal   prometheus.Counter
	PartitionModularity    prometheus.Gauge
	PartitionCommunities   prometheus.Gauge
	PartitionLevelDuration prometheus.Histogram

	// Centrality engine metrics
	CommunitiesProcessedTotal prometheus.Counter
	CommunitySize             prometheus.Histogram
	CommunityBorders          prometheus.Histogram
	RelaxationSweeps          prometheus.Histogram
	CommunityDuration         prometheus.Histogram

	// Pipeline metrics
	RunsTotal   *prometheus.CounterVec
	RunDuration prometheus.Histogram

	registry *prometheus.Registry
}

var (
	defaultRegistry *Registry
	once            sync.Once
)

// DefaultRegistry returns the process-wide metrics registry.
func DefaultRegistry() *Registry {
	once.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// NewRegistry creates a registry with all metrics initialized.
func NewRegistry() *Registry {
	r := &Registry{registry: prometheus.NewRegistry()}
	r.initPartitionerMetrics()
	r.initEngineMetrics()
	r.initPipelineMetrics()
	return r
}

// Gatherer exposes the underlying registry for scrape handlers.
func (r *Registry) Gatherer() prometheus.Gatherer { return r.registry }
