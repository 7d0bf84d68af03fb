// Package graph animates traversals and classic graph algorithms over small
// graphs with nodes numbered 0..N-1.
package graph

import (
	"fmt"
	"slices"

	"github.com/san-kum/stepviz/internal/step"
)

// MaxNodes keeps graphs at a size a person can follow on screen.
const MaxNodes = 64

type Graph struct {
	N        int         `yaml:"n" json:"n"`
	Edges    []step.Edge `yaml:"edges" json:"edges"`
	Directed bool        `yaml:"directed" json:"directed"`
}

// adjacency returns neighbor lists sorted ascending so traversal order is a
// pure function of the input.
func (g Graph) adjacency() [][]step.Edge {
	adj := make([][]step.Edge, g.N)
	for _, e := range g.Edges {
		adj[e.From] = append(adj[e.From], e)
		if !g.Directed {
			adj[e.To] = append(adj[e.To], step.Edge{From: e.To, To: e.From, Weight: e.Weight})
		}
	}
	for i := range adj {
		slices.SortStableFunc(adj[i], func(a, b step.Edge) int { return a.To - b.To })
	}
	return adj
}

func (g Graph) transpose() Graph {
	t := Graph{N: g.N, Directed: g.Directed, Edges: make([]step.Edge, len(g.Edges))}
	for i, e := range g.Edges {
		t.Edges[i] = step.Edge{From: e.To, To: e.From, Weight: e.Weight}
	}
	return t
}

// validate reports a human-readable problem with g or start, or "".
func (g Graph) validate(start int) string {
	switch {
	case g.N <= 0:
		return fmt.Sprintf("Graph needs at least one node, got %d.", g.N)
	case g.N > MaxNodes:
		return fmt.Sprintf("Graph has %d nodes; the limit is %d.", g.N, MaxNodes)
	case start < 0 || start >= g.N:
		return fmt.Sprintf("Start node %d is not in the graph (0..%d).", start, g.N-1)
	}
	for _, e := range g.Edges {
		if e.From < 0 || e.From >= g.N || e.To < 0 || e.To >= g.N {
			return fmt.Sprintf("Edge %d->%d references a node outside 0..%d.", e.From, e.To, g.N-1)
		}
	}
	return ""
}

// tracker is the mutable traversal state snapshots are taken from.
type tracker struct {
	g        Graph
	visited  []bool
	frontier []int
	order    []int
	dist     []int
	comps    [][]int
}

func newTracker(g Graph) *tracker {
	return &tracker{g: g, visited: make([]bool, g.N)}
}

func (t *tracker) snap(line int, msg string, current int) *step.GraphStep {
	visited := make([]int, 0, t.g.N)
	for i, v := range t.visited {
		if v {
			visited = append(visited, i)
		}
	}
	return &step.GraphStep{
		Meta:       step.Meta{Message: msg, Line: line},
		N:          t.g.N,
		Edges:      t.g.Edges,
		Directed:   t.g.Directed,
		Current:    current,
		Visited:    visited,
		Frontier:   t.frontier,
		Order:      t.order,
		Distances:  t.dist,
		Components: t.comps,
	}
}

func invalid(g Graph, msg string) step.Producer {
	return step.Single(&step.GraphStep{
		Meta:     step.Meta{Message: msg},
		N:        max(g.N, 0),
		Edges:    g.Edges,
		Directed: g.Directed,
		Current:  -1,
	})
}
