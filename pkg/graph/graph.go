// Package graph provides the immutable weighted graph view consumed by the
// partitioner and the centrality engine. Node ids are dense integers in
// [0, N); edge weights are non-negative. A graph is built once through a
// Builder and never mutated afterwards; coarsening produces a new Graph.
package graph

import "fmt"

// Edge is a single weighted adjacency entry.
type Edge struct {
	To     int
	Weight float64
}

// Graph is a read-only undirected weighted graph.
//
// Degree(v) is the weighted degree: the sum of incident edge weights with
// self-loops counted twice, matching the convention modularity expects.
// TotalWeight is the sum of all weighted degrees (2m).
type Graph struct {
	n           int
	adj         [][]Edge
	degree      []float64
	selfLoop    []float64
	totalWeight float64
	edgeCount   int
}

// NodeCount returns the number of nodes N.
func (g *Graph) NodeCount() int { return g.n }

// EdgeCount returns the number of distinct undirected edges (self-loops included).
func (g *Graph) EdgeCount() int { return g.edgeCount }

// TotalWeight returns the sum of all weighted degrees (twice the total edge weight).
func (g *Graph) TotalWeight() float64 { return g.totalWeight }

// Neighbors returns the adjacency list of v, self-loops excluded.
// The returned slice is shared with the graph and must not be modified.
func (g *Graph) Neighbors(v int) []Edge {
	g.check(v)
	return g.adj[v]
}

// Degree returns the weighted degree of v, self-loops counted twice.
func (g *Graph) Degree(v int) float64 {
	g.check(v)
	return g.degree[v]
}

// SelfLoopWeight returns the accumulated self-loop weight of v.
func (g *Graph) SelfLoopWeight(v int) float64 {
	g.check(v)
	return g.selfLoop[v]
}

// check panics on an out-of-range node id. Passing an invalid id is a caller
// bug, not a recoverable runtime condition.
func (g *Graph) check(v int) {
	if v < 0 || v >= g.n {
		panic(fmt.Sprintf("graph: node id %d out of range [0,%d)", v, g.n))
	}
}
