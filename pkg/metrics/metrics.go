package metrics

import "time"

// RecordLevel records one accepted partition level.
func (r *Registry) RecordLevel(nodes, communities int, modularity float64, duration time.Duration) {
	r.PartitionLevelsTotal.Inc()
	r.PartitionModularity.Set(modularity)
	r.PartitionCommunities.Set(float64(communities))
	r.PartitionLevelDuration.Observe(duration.Seconds())
}

// RecordCommunity records one finished community centrality pass.
func (r *Registry) RecordCommunity(size, borders, sweeps int, duration time.Duration) {
	r.CommunitiesProcessedTotal.Inc()
	r.CommunitySize.Observe(float64(size))
	r.CommunityBorders.Observe(float64(borders))
	r.RelaxationSweeps.Observe(float64(sweeps))
	r.CommunityDuration.Observe(duration.Seconds())
}

// RecordRun records a completed pipeline run with its status.
func (r *Registry) RecordRun(status string, duration time.Duration) {
	r.RunsTotal.WithLabelValues(status).Inc()
	r.RunDuration.Observe(duration.Seconds())
}
