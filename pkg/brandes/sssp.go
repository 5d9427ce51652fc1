package brandes

import (
	"container/heap"
	"math"

	"github.com/dd0wney/cluso-fastbc/pkg/graph"
)

// weightEps is the tolerance for comparing accumulated path lengths.
const weightEps = 1e-12

// queueItem is one pending heap entry; stale entries are skipped on pop
// (lazy decrease-key).
type queueItem struct {
	node int
	dist float64
}

type distQueue []queueItem

func (q distQueue) Len() int            { return len(q) }
func (q distQueue) Less(i, j int) bool  { return q[i].dist < q[j].dist }
func (q distQueue) Swap(i, j int)       { q[i], q[j] = q[j], q[i] }
func (q *distQueue) Push(x any)         { *q = append(*q, x.(queueItem)) }
func (q *distQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}

// ssspState holds one single-source shortest-path pass: distances, path
// counts, shortest-path predecessors and the settle order needed for the
// dependency back-propagation.
type ssspState struct {
	dist  []float64
	sigma []float64
	preds [][]int
	order []int
	delta []float64
}

// newSSSPState allocates state for graphs of n nodes, reusable across
// sources via reset.
func newSSSPState(n int) *ssspState {
	return &ssspState{
		dist:  make([]float64, n),
		sigma: make([]float64, n),
		preds: make([][]int, n),
		order: make([]int, 0, n),
		delta: make([]float64, n),
	}
}

func (s *ssspState) reset() {
	for i := range s.dist {
		s.dist[i] = math.Inf(1)
		s.sigma[i] = 0
		s.preds[i] = s.preds[i][:0]
		s.delta[i] = 0
	}
	s.order = s.order[:0]
}

// run executes a weighted Dijkstra pass from source over adj, filling
// distances, path counts, predecessor lists and the settle order.
func (s *ssspState) run(adj [][]graph.Edge, source int) {
	s.reset()
	s.dist[source] = 0
	s.sigma[source] = 1

	settled := make([]bool, len(adj))
	q := distQueue{{node: source, dist: 0}}

	for q.Len() > 0 {
		item := heap.Pop(&q).(queueItem)
		v := item.node
		if settled[v] {
			continue
		}
		settled[v] = true
		s.order = append(s.order, v)

		for _, e := range adj[v] {
			w := e.To
			nd := s.dist[v] + e.Weight
			switch {
			case nd < s.dist[w]-weightEps:
				s.dist[w] = nd
				s.sigma[w] = s.sigma[v]
				s.preds[w] = append(s.preds[w][:0], v)
				heap.Push(&q, queueItem{node: w, dist: nd})
			case !settled[w] && math.Abs(nd-s.dist[w]) <= weightEps:
				s.sigma[w] += s.sigma[v]
				s.preds[w] = append(s.preds[w], v)
			}
		}
	}
}

// accumulate back-propagates Brandes dependencies in reverse settle order.
// A target t counts toward the pair dependency only when isTarget(t) is
// true, which is how the crossing phase restricts itself to pairs that
// leave the source's cluster. The source never receives its own dependency.
// Contributions are scaled and added into buf.
func (s *ssspState) accumulate(source int, isTarget func(int) bool, scale float64, buf []float64) {
	for i := len(s.order) - 1; i > 0; i-- {
		w := s.order[i]
		credit := s.delta[w]
		if isTarget(w) {
			credit++
		}
		coeff := credit / s.sigma[w]
		for _, p := range s.preds[w] {
			s.delta[p] += s.sigma[p] * coeff
		}
		if w != source {
			buf[w] += scale * s.delta[w]
		}
	}
}
