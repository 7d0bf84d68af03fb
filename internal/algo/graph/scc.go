package graph

import (
	"fmt"
	"slices"

	"github.com/san-kum/stepviz/internal/step"
)

var SCCCode = []string{
	"pass 1: dfs(u) on the graph",
	"    record u in finish order",
	"reverse every edge",
	"pass 2: dfs(u) on the reversed graph by decreasing finish",
	"    every node reached joins the component",
	"return components",
}

// SCC finds strongly connected components with Kosaraju's algorithm. The
// second pass runs on the transpose and its Steps are flagged Transposed; the
// terminal Step always shows the original graph with every component.
func SCC(g Graph) step.Producer {
	if msg := g.validate(0); msg != "" {
		return invalid(g, msg)
	}
	if !g.Directed {
		return invalid(g, "Strongly connected components need a directed graph.")
	}
	return func(yield func(step.Step) bool) {
		t := newTracker(g)
		adj := g.adjacency()
		var finish []int

		var first func(u int) bool
		first = func(u int) bool {
			t.visited[u] = true
			t.frontier = append(t.frontier, u)
			if !step.Emit(yield, t.snap(1, fmt.Sprintf("Pass 1: visit %d.", u), u)) {
				return false
			}
			for _, e := range adj[u] {
				if !t.visited[e.To] && !first(e.To) {
					return false
				}
			}
			t.frontier = t.frontier[:len(t.frontier)-1]
			finish = append(finish, u)
			t.order = finish
			return step.Emit(yield, t.snap(2, fmt.Sprintf("Pass 1: %d finished (finish order %v).", u, finish), u))
		}
		for u := 0; u < g.N; u++ {
			if !t.visited[u] && !first(u) {
				return
			}
		}

		rev := newTracker(g.transpose())
		rev.order = slices.Clone(finish)
		radj := rev.g.adjacency()
		snapT := func(line int, msg string, cur int) *step.GraphStep {
			st := rev.snap(line, msg, cur)
			st.Transposed = true
			return st
		}
		if !step.Emit(yield, snapT(3, "Pass 2: reverse every edge and process nodes by decreasing finish time.", -1)) {
			return
		}

		var comp []int
		var second func(u int) bool
		second = func(u int) bool {
			rev.visited[u] = true
			comp = append(comp, u)
			rev.frontier = append(rev.frontier, u)
			if !step.Emit(yield, snapT(4, fmt.Sprintf("Pass 2: %d joins the current component.", u), u)) {
				return false
			}
			for _, e := range radj[u] {
				if !rev.visited[e.To] && !second(e.To) {
					return false
				}
			}
			rev.frontier = rev.frontier[:len(rev.frontier)-1]
			return true
		}
		for i := len(finish) - 1; i >= 0; i-- {
			u := finish[i]
			if rev.visited[u] {
				continue
			}
			comp = nil
			if !second(u) {
				return
			}
			slices.Sort(comp)
			rev.comps = append(rev.comps, comp)
			if !step.Emit(yield, snapT(5, fmt.Sprintf("Component found: %v.", comp), u)) {
				return
			}
		}

		done := newTracker(g)
		for i := range done.visited {
			done.visited[i] = true
		}
		done.comps = rev.comps
		step.Emit(yield, done.snap(6, fmt.Sprintf("Found %d strongly connected components.", len(rev.comps)), -1))
	}
}
