// Package community materializes the partitioner's final assignment into
// per-community member lists consumed by the centrality engine and by any
// external analysis tooling.
package community

import (
	"errors"
	"fmt"

	"github.com/dd0wney/cluso-fastbc/pkg/graph"
)

// ErrBadAssignment is returned when an assignment does not cover the graph.
var ErrBadAssignment = errors.New("community: invalid assignment")

// Community owns the original-graph node ids of one final community.
type Community struct {
	ID    int
	Nodes []int

	g *graph.Graph
}

// Size returns the number of member nodes.
func (c *Community) Size() int { return len(c.Nodes) }

// Graph returns the original graph view, needed to resolve incident edges of
// members.
func (c *Community) Graph() *graph.Graph { return c.g }

// Registry holds all communities of one finished partitioning run.
// Communities are disjoint and exhaustive over the original node set.
type Registry struct {
	communities []*Community
	n2c         []int
	g           *graph.Graph
}

// Build groups every node of g into its community in a single pass over the
// assignment. Community ids are expected to be dense already (the
// partitioner renumbers them); sparse ids still work but allocate unused
// slots. Negative ids or a length mismatch indicate a broken assignment.
func Build(g *graph.Graph, n2c []int) (*Registry, error) {
	if len(n2c) != g.NodeCount() {
		return nil, fmt.Errorf("%w: %d entries for %d nodes", ErrBadAssignment, len(n2c), g.NodeCount())
	}

	max := -1
	for v, c := range n2c {
		if c < 0 {
			return nil, fmt.Errorf("%w: node %d has community %d", ErrBadAssignment, v, c)
		}
		if c > max {
			max = c
		}
	}

	communities := make([]*Community, max+1)
	for i := range communities {
		communities[i] = &Community{ID: i, g: g}
	}
	for v, c := range n2c {
		communities[c].Nodes = append(communities[c].Nodes, v)
	}

	return &Registry{
		communities: communities,
		n2c:         append([]int(nil), n2c...),
		g:           g,
	}, nil
}

// Communities returns all communities ordered by id. Entries for unused ids
// of a sparse assignment are present but empty.
func (r *Registry) Communities() []*Community { return r.communities }

// Len returns the number of community slots.
func (r *Registry) Len() int { return len(r.communities) }

// CommunityOf returns the community id of node v.
func (r *Registry) CommunityOf(v int) int { return r.n2c[v] }

// Assignment returns the node-to-community mapping. The slice is owned by
// the registry and must not be modified.
func (r *Registry) Assignment() []int { return r.n2c }

// Graph returns the original graph view.
func (r *Registry) Graph() *graph.Graph { return r.g }
