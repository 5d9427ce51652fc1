package graph

import (
	"errors"
	"math"
	"testing"
)

// buildTriangle creates a unit-weight triangle 0-1-2.
func buildTriangle(t *testing.T) *Graph {
	t.Helper()

	b := NewBuilder(3)
	for _, e := range [][2]int{{0, 1}, {1, 2}, {2, 0}} {
		if err := b.AddEdge(e[0], e[1], 1.0); err != nil {
			t.Fatalf("AddEdge(%d,%d) failed: %v", e[0], e[1], err)
		}
	}
	return b.Build()
}

func TestBuilder_Triangle(t *testing.T) {
	g := buildTriangle(t)

	if g.NodeCount() != 3 {
		t.Errorf("Expected 3 nodes, got %d", g.NodeCount())
	}
	if g.EdgeCount() != 3 {
		t.Errorf("Expected 3 edges, got %d", g.EdgeCount())
	}
	if g.TotalWeight() != 6.0 {
		t.Errorf("Expected total weight 6, got %g", g.TotalWeight())
	}
	for v := 0; v < 3; v++ {
		if g.Degree(v) != 2.0 {
			t.Errorf("Expected degree 2 for node %d, got %g", v, g.Degree(v))
		}
		if len(g.Neighbors(v)) != 2 {
			t.Errorf("Expected 2 neighbors for node %d, got %d", v, len(g.Neighbors(v)))
		}
	}
}

func TestBuilder_SelfLoopDoublesDegree(t *testing.T) {
	b := NewBuilder(2)
	if err := b.AddEdge(0, 0, 1.5); err != nil {
		t.Fatalf("AddEdge self-loop failed: %v", err)
	}
	if err := b.AddEdge(0, 1, 2.0); err != nil {
		t.Fatalf("AddEdge failed: %v", err)
	}
	g := b.Build()

	if g.SelfLoopWeight(0) != 1.5 {
		t.Errorf("Expected self-loop weight 1.5, got %g", g.SelfLoopWeight(0))
	}
	// 2*1.5 for the loop plus 2.0 for the incident edge
	if g.Degree(0) != 5.0 {
		t.Errorf("Expected degree 5, got %g", g.Degree(0))
	}
	// Self-loops are not part of the adjacency list
	if len(g.Neighbors(0)) != 1 {
		t.Errorf("Expected 1 neighbor, got %d", len(g.Neighbors(0)))
	}
}

func TestBuilder_ParallelEdgesAccumulate(t *testing.T) {
	b := NewBuilder(2)
	if err := b.AddEdge(0, 1, 1.0); err != nil {
		t.Fatalf("AddEdge failed: %v", err)
	}
	if err := b.AddEdge(1, 0, 0.5); err != nil {
		t.Fatalf("AddEdge failed: %v", err)
	}
	g := b.Build()

	if math.Abs(g.Degree(0)-1.5) > 1e-12 {
		t.Errorf("Expected degree 1.5, got %g", g.Degree(0))
	}
}

func TestBuilder_NegativeWeight(t *testing.T) {
	b := NewBuilder(2)
	err := b.AddEdge(0, 1, -1.0)
	if !errors.Is(err, ErrNegativeWeight) {
		t.Errorf("Expected ErrNegativeWeight, got %v", err)
	}
}

func TestGraph_OutOfRangePanics(t *testing.T) {
	g := buildTriangle(t)

	defer func() {
		if recover() == nil {
			t.Errorf("Expected panic for out-of-range node id")
		}
	}()
	g.Degree(3)
}

func TestBuilder_EmptyGraph(t *testing.T) {
	g := NewBuilder(0).Build()

	if g.NodeCount() != 0 {
		t.Errorf("Expected 0 nodes, got %d", g.NodeCount())
	}
	if g.TotalWeight() != 0 {
		t.Errorf("Expected total weight 0, got %g", g.TotalWeight())
	}
}
