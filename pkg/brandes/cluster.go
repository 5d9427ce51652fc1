package brandes

import (
	"github.com/dd0wney/cluso-fastbc/pkg/community"
	"github.com/dd0wney/cluso-fastbc/pkg/graph"
	"github.com/dd0wney/cluso-fastbc/pkg/vertexinfo"
)

// unreachable marks a border not (yet) reached during relaxation. A large
// finite value instead of +Inf keeps vector arithmetic and convergence
// checks free of NaNs.
const unreachable = 1e300

// clusterState is the per-community working set: the local subgraph, the
// border vertices, and one border-distance vector per member.
type clusterState struct {
	comm    *community.Community
	members []int       // global ids, ascending
	local   map[int]int // global id -> local index
	// borders holds local indices of members with at least one edge leaving
	// the community, ascending.
	borders []int
	// adj is the intra-community adjacency in local ids.
	adj [][]graph.Edge

	vectors []*vertexinfo.VertexInfo
	// offsets are the pre-normalization minimum lengths, kept so that two
	// members compare equal only when their raw vectors were identical.
	offsets []float64
	sweeps  int
}

// newClusterState builds the local view of one community. Border vertices
// are exactly the members incident to an inter-community edge.
func newClusterState(comm *community.Community, n2c []int) *clusterState {
	g := comm.Graph()
	cs := &clusterState{
		comm:    comm,
		members: comm.Nodes,
		local:   make(map[int]int, len(comm.Nodes)),
		adj:     make([][]graph.Edge, len(comm.Nodes)),
	}
	for i, v := range cs.members {
		cs.local[v] = i
	}
	for i, v := range cs.members {
		external := false
		for _, e := range g.Neighbors(v) {
			if n2c[e.To] == comm.ID {
				cs.adj[i] = append(cs.adj[i], graph.Edge{To: cs.local[e.To], Weight: e.Weight})
			} else {
				external = true
			}
		}
		if external {
			cs.borders = append(cs.borders, i)
		}
	}
	return cs
}

// computeVectors runs Jacobi-style relaxation sweeps until every member's
// vector stops changing (summed squared distance between successive sweeps
// reaches zero) or the sweep cap forces termination, then records each
// vector's normalization offset and normalizes it. Clusters with no borders
// get empty vectors and converge immediately.
func (cs *clusterState) computeVectors(maxSweeps int) {
	n := len(cs.members)
	nb := len(cs.borders)

	borderIdx := make([]int, n) // local id -> border position, or -1
	for i := range borderIdx {
		borderIdx[i] = -1
	}
	for bi, v := range cs.borders {
		borderIdx[v] = bi
	}

	cur := make([]*vertexinfo.VertexInfo, n)
	next := make([]*vertexinfo.VertexInfo, n)
	for v := 0; v < n; v++ {
		cur[v] = vertexinfo.New(nb)
		next[v] = vertexinfo.New(nb)
		for i := 0; i < nb; i++ {
			cur[v].SetLength(i, unreachable)
		}
		if bi := borderIdx[v]; bi >= 0 {
			cur[v].SetLength(bi, 0)
			cur[v].SetCount(bi, 1)
		}
	}

	if nb > 0 {
		for sweep := 0; sweep < maxSweeps; sweep++ {
			cs.sweeps = sweep + 1
			for v := 0; v < n; v++ {
				next[v].Reset()
				for i := 0; i < nb; i++ {
					best := unreachable
					var count int64
					if borderIdx[v] == i {
						best = 0
						count = 1
					}
					for _, e := range cs.adj[v] {
						nl := cur[e.To].Length(i)
						if nl >= unreachable {
							continue
						}
						cand := nl + e.Weight
						switch {
						case cand < best-weightEps:
							best = cand
							count = cur[e.To].Count(i)
						case cand <= best+weightEps:
							count += cur[e.To].Count(i)
						}
					}
					next[v].SetLength(i, best)
					next[v].SetCount(i, count)
				}
			}

			var change float64
			for v := 0; v < n; v++ {
				change += next[v].SquaredDistance(cur[v])
			}
			cur, next = next, cur
			if change == 0 {
				break
			}
		}
	}

	cs.vectors = cur
	cs.offsets = make([]float64, n)
	for v := 0; v < n; v++ {
		cs.offsets[v] = cur[v].MinLength()
		cur[v].Normalize()
	}
}

// sourceClass groups members whose raw border-distance vectors are
// identical: equal normalized vectors and equal normalization offsets. For
// boundary-crossing accumulation such members contribute identically, so
// one pivot run scaled by the class size replaces per-member runs.
type sourceClass struct {
	pivot   int // local id, the lowest member
	members []int
}

// sourceClasses partitions the cluster's members into equivalence classes.
// Members are scanned in ascending local id, so class pivots and ordering
// are deterministic.
func (cs *clusterState) sourceClasses() []sourceClass {
	classes := make([]sourceClass, 0, 8)
	for v := range cs.members {
		placed := false
		for ci := range classes {
			p := classes[ci].pivot
			if cs.offsets[v] == cs.offsets[p] && cs.vectors[v].Equal(cs.vectors[p]) {
				classes[ci].members = append(classes[ci].members, v)
				placed = true
				break
			}
		}
		if !placed {
			classes = append(classes, sourceClass{pivot: v, members: []int{v}})
		}
	}
	return classes
}
