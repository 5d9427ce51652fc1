// Package louvain implements modularity-maximizing community detection over
// the graph view. A Partition carries the local-optimization state for one
// level; the Evaluator runs several candidate partitions concurrently per
// level, keeps the best one, coarsens the graph and repeats until no level
// improves modularity.
package louvain

import (
	"math/rand"
	"sort"

	"github.com/dd0wney/cluso-fastbc/pkg/graph"
)

// Partition holds the node-to-community assignment and the per-community
// weight sums for one level of local optimization.
type Partition struct {
	g         *graph.Graph
	precision float64
	maxPasses int

	n2c []int
	// in is twice the total weight inside each community (self-loops once
	// doubled by the degree convention); tot is the summed weighted degree.
	in  []float64
	tot []float64

	order []int
	rng   *rand.Rand
}

// NewPartition creates a singleton partition (every node its own community)
// over g. The seed fixes the node visiting order for this candidate; equal
// seeds always reproduce the same local optimum.
func NewPartition(g *graph.Graph, precision float64, maxPasses int, seed int64) *Partition {
	n := g.NodeCount()
	p := &Partition{
		g:         g,
		precision: precision,
		maxPasses: maxPasses,
		n2c:       make([]int, n),
		in:        make([]float64, n),
		tot:       make([]float64, n),
		order:     make([]int, n),
		rng:       rand.New(rand.NewSource(seed)),
	}
	for v := 0; v < n; v++ {
		p.n2c[v] = v
		p.in[v] = 2 * g.SelfLoopWeight(v)
		p.tot[v] = g.Degree(v)
		p.order[v] = v
	}
	p.rng.Shuffle(n, func(i, j int) {
		p.order[i], p.order[j] = p.order[j], p.order[i]
	})
	return p
}

// Modularity returns the modularity of the current assignment.
func (p *Partition) Modularity() float64 {
	m2 := p.g.TotalWeight()
	if m2 == 0 {
		return 0
	}
	var q float64
	for c := range p.tot {
		if p.tot[c] > 0 {
			q += p.in[c]/m2 - (p.tot[c]/m2)*(p.tot[c]/m2)
		}
	}
	return q
}

// Assignment returns the current node-to-community mapping. The slice is
// shared with the partition and must not be modified.
func (p *Partition) Assignment() []int { return p.n2c }

// remove takes node out of community c. wToComm is the weight from node to
// other members of c.
func (p *Partition) remove(node, c int, wToComm float64) {
	p.tot[c] -= p.g.Degree(node)
	p.in[c] -= 2*wToComm + 2*p.g.SelfLoopWeight(node)
	p.n2c[node] = -1
}

// insert puts node into community c. wToComm is the weight from node to
// members of c.
func (p *Partition) insert(node, c int, wToComm float64) {
	p.tot[c] += p.g.Degree(node)
	p.in[c] += 2*wToComm + 2*p.g.SelfLoopWeight(node)
	p.n2c[node] = c
}

// gain is the modularity delta of inserting a removed node with the given
// degree into community c, up to a constant factor shared by all candidate
// communities of the node.
func (p *Partition) gain(c int, wToComm, degree float64) float64 {
	return wToComm - p.tot[c]*degree/p.g.TotalWeight()
}

// neighborCommunities accumulates the edge weight from node to each adjacent
// community. Keys are returned in first-encounter order, which follows the
// adjacency list and keeps candidate evaluation deterministic.
func (p *Partition) neighborCommunities(node int, weights map[int]float64, keys []int) []int {
	clear(weights)
	keys = keys[:0]

	own := p.n2c[node]
	weights[own] = 0
	keys = append(keys, own)

	for _, e := range p.g.Neighbors(node) {
		c := p.n2c[e.To]
		if _, seen := weights[c]; !seen {
			keys = append(keys, c)
		}
		weights[c] += e.Weight
	}
	return keys
}

// OneLevel runs local-optimization passes until a pass moves no node or
// gains less than the precision threshold, or the pass cap is reached.
// Hitting the cap is a forced terminate, not an error. Returns whether any
// node moved.
func (p *Partition) OneLevel() bool {
	improvement := false
	weights := make(map[int]float64)
	keys := make([]int, 0, 16)

	prevMod := p.Modularity()
	for pass := 0; pass < p.maxPasses; pass++ {
		moves := 0

		for _, node := range p.order {
			own := p.n2c[node]
			keys = p.neighborCommunities(node, weights, keys)
			degree := p.g.Degree(node)

			p.remove(node, own, weights[own])

			best := own
			bestGain := p.gain(own, weights[own], degree)
			for _, c := range keys {
				if c == own {
					continue
				}
				if g := p.gain(c, weights[c], degree); g > bestGain {
					best = c
					bestGain = g
				}
			}

			p.insert(node, best, weights[best])
			if best != own {
				moves++
			}
		}

		if moves > 0 {
			improvement = true
		}

		newMod := p.Modularity()
		if moves == 0 || newMod-prevMod < p.precision {
			break
		}
		prevMod = newMod
	}
	return improvement
}

// renumbered returns the assignment with community ids renumbered to be
// dense, in increasing order of old community id, plus the community count.
func (p *Partition) renumbered() ([]int, int) {
	relabel := make([]int, len(p.n2c))
	for i := range relabel {
		relabel[i] = -1
	}
	next := 0
	// Two passes keep the renumbering independent of node visiting order:
	// community ids stay sorted by their old value.
	seen := make([]bool, len(p.n2c))
	for _, c := range p.n2c {
		seen[c] = true
	}
	for c, ok := range seen {
		if ok {
			relabel[c] = next
			next++
		}
	}
	out := make([]int, len(p.n2c))
	for v, c := range p.n2c {
		out[v] = relabel[c]
	}
	return out, next
}

// CoarsenGraph builds the next-level graph whose nodes are this partition's
// communities: intra-community weight aggregates into self-loops,
// inter-community weight into single coarsened edges. It also returns the
// dense level assignment used to compose the accumulated mapping.
func (p *Partition) CoarsenGraph() (*graph.Graph, []int) {
	dense, count := p.renumbered()

	intra := make([]float64, count)
	inter := make(map[[2]int]float64)
	for v := 0; v < p.g.NodeCount(); v++ {
		cv := dense[v]
		intra[cv] += p.g.SelfLoopWeight(v)
		for _, e := range p.g.Neighbors(v) {
			cu := dense[e.To]
			switch {
			case cu == cv:
				// Each intra edge shows up from both endpoints.
				intra[cv] += e.Weight / 2
			case cv < cu:
				inter[[2]int{cv, cu}] += e.Weight
			}
		}
	}

	b := graph.NewBuilder(count)
	for c, w := range intra {
		if w > 0 {
			if err := b.AddEdge(c, c, w); err != nil {
				panic(err) // aggregated weights are never negative
			}
		}
	}
	pairs := make([][2]int, 0, len(inter))
	for k := range inter {
		pairs = append(pairs, k)
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i][0] != pairs[j][0] {
			return pairs[i][0] < pairs[j][0]
		}
		return pairs[i][1] < pairs[j][1]
	})
	for _, k := range pairs {
		if err := b.AddEdge(k[0], k[1], inter[k]); err != nil {
			panic(err)
		}
	}
	return b.Build(), dense
}
