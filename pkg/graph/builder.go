package graph

import (
	"errors"
	"fmt"
)

// ErrNegativeWeight is returned when an edge weight below zero is added.
var ErrNegativeWeight = errors.New("graph: negative edge weight")

// Builder accumulates edges for a fixed node count and produces an immutable
// Graph. AddEdge on an id outside [0, N) is a caller bug and panics, the same
// contract as Graph accessors; negative weights come from external input and
// surface as an error instead.
type Builder struct {
	n        int
	adj      [][]Edge
	selfLoop []float64
	edges    int
}

// NewBuilder creates a builder for a graph with n nodes and no edges.
func NewBuilder(n int) *Builder {
	if n < 0 {
		panic(fmt.Sprintf("graph: negative node count %d", n))
	}
	return &Builder{
		n:        n,
		adj:      make([][]Edge, n),
		selfLoop: make([]float64, n),
	}
}

// AddEdge adds an undirected edge between u and v with the given weight.
// Parallel edges accumulate; u == v records a self-loop.
func (b *Builder) AddEdge(u, v int, weight float64) error {
	if u < 0 || u >= b.n || v < 0 || v >= b.n {
		panic(fmt.Sprintf("graph: edge (%d,%d) outside [0,%d)", u, v, b.n))
	}
	if weight < 0 {
		return fmt.Errorf("%w: %g on edge (%d,%d)", ErrNegativeWeight, weight, u, v)
	}

	b.edges++
	if u == v {
		b.selfLoop[u] += weight
		return nil
	}
	b.adj[u] = append(b.adj[u], Edge{To: v, Weight: weight})
	b.adj[v] = append(b.adj[v], Edge{To: u, Weight: weight})
	return nil
}

// Build finalizes the accumulated edges into an immutable Graph.
// The builder must not be used after Build.
func (b *Builder) Build() *Graph {
	g := &Graph{
		n:         b.n,
		adj:       b.adj,
		selfLoop:  b.selfLoop,
		degree:    make([]float64, b.n),
		edgeCount: b.edges,
	}
	for v := 0; v < b.n; v++ {
		d := 2 * b.selfLoop[v]
		for _, e := range b.adj[v] {
			d += e.Weight
		}
		g.degree[v] = d
		g.totalWeight += d
	}
	return g
}
