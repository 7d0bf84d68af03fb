package graph

import (
	"fmt"
	"slices"

	"github.com/san-kum/stepviz/internal/step"
)

const (
	white = iota
	gray
	black
)

var TopologicalSortCode = []string{
	"visit(u): mark u as on the stack",
	"    for each edge u->v: if v on stack, cycle; else visit(v)",
	"    finish u and prepend it to order",
	"return order",
}

// TopologicalSort orders a DAG by reverse DFS finish time. A back edge ends
// the run with a Step naming the cycle edge.
func TopologicalSort(g Graph) step.Producer {
	if msg := g.validate(0); msg != "" {
		return invalid(g, msg)
	}
	if !g.Directed {
		return invalid(g, "Topological sort needs a directed graph.")
	}
	return func(yield func(step.Step) bool) {
		t := newTracker(g)
		adj := g.adjacency()
		color := make([]int, g.N)
		var finished []int

		var visit func(u int) (ok, cyclic bool)
		visit = func(u int) (bool, bool) {
			color[u] = gray
			t.visited[u] = true
			t.frontier = append(t.frontier, u)
			if !step.Emit(yield, t.snap(1, fmt.Sprintf("Enter %d.", u), u)) {
				return false, false
			}
			for _, e := range adj[u] {
				edge := e
				switch color[e.To] {
				case gray:
					st := t.snap(2, fmt.Sprintf("Edge %d->%d points back into the stack: the graph has a cycle, so no topological order exists.", e.From, e.To), u)
					st.Active = &edge
					step.Emit(yield, st)
					return false, true
				case white:
					st := t.snap(2, fmt.Sprintf("Follow edge %d->%d.", e.From, e.To), u)
					st.Active = &edge
					if !step.Emit(yield, st) {
						return false, false
					}
					if ok, cyc := visit(e.To); !ok {
						return false, cyc
					}
				}
			}
			color[u] = black
			t.frontier = t.frontier[:len(t.frontier)-1]
			finished = append(finished, u)
			t.order = slices.Clone(finished)
			slices.Reverse(t.order)
			return step.Emit(yield, t.snap(3, fmt.Sprintf("Finish %d; prepend it to the order.", u), u)), false
		}

		for u := 0; u < g.N; u++ {
			if color[u] != white {
				continue
			}
			if ok, _ := visit(u); !ok {
				return
			}
		}
		step.Emit(yield, t.snap(4, fmt.Sprintf("Topological order: %v.", t.order), -1))
	}
}

var DijkstraCode = []string{
	"dist[start] = 0, every other dist = inf",
	"pick the unsettled node u with the smallest dist",
	"for each edge u->v: dist[v] = min(dist[v], dist[u] + w)",
	"return dist",
}

// Dijkstra computes shortest distances from start. Unreachable nodes keep a
// distance of -1.
func Dijkstra(g Graph, start int) step.Producer {
	if msg := g.validate(start); msg != "" {
		return invalid(g, msg)
	}
	for _, e := range g.Edges {
		if e.Weight < 0 {
			return invalid(g, fmt.Sprintf("Edge %d->%d has negative weight %d; Dijkstra needs non-negative weights.", e.From, e.To, e.Weight))
		}
	}
	return func(yield func(step.Step) bool) {
		t := newTracker(g)
		adj := g.adjacency()
		t.dist = make([]int, g.N)
		for i := range t.dist {
			t.dist[i] = -1
		}
		t.dist[start] = 0
		if !step.Emit(yield, t.snap(1, fmt.Sprintf("Distance to %d is 0; all others are unknown.", start), start)) {
			return
		}
		for {
			u := -1
			for v := 0; v < g.N; v++ {
				if t.visited[v] || t.dist[v] < 0 {
					continue
				}
				if u < 0 || t.dist[v] < t.dist[u] {
					u = v
				}
			}
			if u < 0 {
				break
			}
			t.visited[u] = true
			t.order = append(t.order, u)
			if !step.Emit(yield, t.snap(2, fmt.Sprintf("Settle %d at distance %d.", u, t.dist[u]), u)) {
				return
			}
			for _, e := range adj[u] {
				edge := e
				if t.visited[e.To] {
					continue
				}
				cand := t.dist[u] + e.Weight
				st := t.snap(3, "", u)
				st.Active = &edge
				if t.dist[e.To] < 0 || cand < t.dist[e.To] {
					t.dist[e.To] = cand
					st = t.snap(3, fmt.Sprintf("Relax %d->%d: distance to %d becomes %d.", e.From, e.To, e.To, cand), u)
					st.Active = &edge
				} else {
					st.Message = fmt.Sprintf("Edge %d->%d gives %d, no better than %d.", e.From, e.To, cand, t.dist[e.To])
				}
				if !step.Emit(yield, st) {
					return
				}
			}
		}
		step.Emit(yield, t.snap(4, fmt.Sprintf("Shortest distances from %d: %v.", start, t.dist), -1))
	}
}
