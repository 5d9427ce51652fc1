package louvain

import (
	"sync"
	"time"

	"github.com/dd0wney/cluso-fastbc/pkg/graph"
	"github.com/dd0wney/cluso-fastbc/pkg/logging"
	"github.com/dd0wney/cluso-fastbc/pkg/metrics"
)

// Default tuning values for the evaluator.
const (
	DefaultPrecision   = 0.01
	DefaultParallelism = 4
	DefaultMaxPasses   = 100
	DefaultMaxLevels   = 64
)

// Evaluator drives the full hierarchical partitioning: per level it runs
// Parallelism independent candidate partitions from the same input graph,
// selects the one with the highest modularity (ties broken by the lowest
// candidate index), coarsens, and repeats until the winning candidate
// reports no improvement.
type Evaluator struct {
	// Precision is the minimum modularity gain a local-optimization pass
	// must produce to keep iterating.
	Precision float64
	// Parallelism is the number of concurrent candidate runs per level.
	Parallelism int
	// MaxPasses caps local-optimization passes within one level.
	MaxPasses int
	// MaxLevels caps coarsening levels.
	MaxLevels int
	// Seed derives the per-candidate node visiting orders. Fixed seed plus
	// fixed input yields an identical partition on every run.
	Seed int64

	Logger  logging.Logger
	Metrics *metrics.Registry
}

// NewEvaluator returns an evaluator with default settings and a nop logger.
func NewEvaluator() *Evaluator {
	return &Evaluator{
		Precision:   DefaultPrecision,
		Parallelism: DefaultParallelism,
		MaxPasses:   DefaultMaxPasses,
		MaxLevels:   DefaultMaxLevels,
		Logger:      logging.NewNopLogger(),
	}
}

// LevelInfo summarizes one accepted coarsening level.
type LevelInfo struct {
	Level       int
	Nodes       int
	Communities int
	Modularity  float64
	DurationMS  int64
}

// Result is the final outcome of hierarchical partitioning.
type Result struct {
	// N2C maps every original node id to its final dense community id.
	N2C []int
	// Communities is the number of distinct final communities.
	Communities int
	// Modularity of the final partition.
	Modularity float64
	// Levels describes each accepted level in order.
	Levels []LevelInfo
}

// Evaluate partitions g. The input graph is only read; all candidate state
// is private per goroutine and the best-of selection is a plain reduction
// after the level barrier.
func (e *Evaluator) Evaluate(g *graph.Graph) *Result {
	logger := e.Logger
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	parallelism := e.Parallelism
	if parallelism <= 0 {
		parallelism = DefaultParallelism
	}

	res := &Result{N2C: make([]int, g.NodeCount())}
	for v := range res.N2C {
		res.N2C[v] = v
	}

	work := g
	for level := 0; level < e.MaxLevels; level++ {
		start := time.Now()
		logger.Debug("starting level",
			logging.Int("level", level),
			logging.Int("nodes", work.NodeCount()),
			logging.Float64("total_weight", work.TotalWeight()))

		candidates := make([]*Partition, parallelism)
		improved := make([]bool, parallelism)
		mods := make([]float64, parallelism)

		var wg sync.WaitGroup
		for i := 0; i < parallelism; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				p := NewPartition(work, e.Precision, e.MaxPasses, e.Seed+int64(i))
				improved[i] = p.OneLevel()
				mods[i] = p.Modularity()
				candidates[i] = p
			}(i)
		}
		wg.Wait()

		best := 0
		for i := 1; i < parallelism; i++ {
			if mods[i] > mods[best] {
				best = i
			}
		}

		coarse, dense := candidates[best].CoarsenGraph()
		for v := range res.N2C {
			res.N2C[v] = dense[res.N2C[v]]
		}
		res.Modularity = mods[best]
		res.Communities = coarse.NodeCount()

		info := LevelInfo{
			Level:       level,
			Nodes:       work.NodeCount(),
			Communities: coarse.NodeCount(),
			Modularity:  mods[best],
			DurationMS:  time.Since(start).Milliseconds(),
		}
		res.Levels = append(res.Levels, info)
		if e.Metrics != nil {
			e.Metrics.RecordLevel(work.NodeCount(), coarse.NodeCount(), mods[best], time.Since(start))
		}
		logger.Debug("level finished",
			logging.Int("level", level),
			logging.Int("communities", coarse.NodeCount()),
			logging.Float64("modularity", mods[best]),
			logging.Bool("improved", improved[best]))

		if !improved[best] {
			break
		}
		work = coarse
	}

	return res
}
