package graph

import (
	"fmt"

	"github.com/san-kum/stepviz/internal/step"
)

var BFSCode = []string{
	"queue := [start]; visited[start] = true",
	"for len(queue) > 0 {",
	"    u := queue.pop()",
	"    for v in adj[u] {",
	"        if !visited[v] { visited[v] = true; queue.push(v) }",
	"done",
}

func BFS(g Graph, start int) step.Producer {
	if msg := g.validate(start); msg != "" {
		return invalid(g, msg)
	}
	return func(yield func(step.Step) bool) {
		t := newTracker(g)
		adj := g.adjacency()
		t.dist = make([]int, g.N)
		for i := range t.dist {
			t.dist[i] = -1
		}
		t.visited[start] = true
		t.dist[start] = 0
		t.frontier = []int{start}
		if !step.Emit(yield, t.snap(1, fmt.Sprintf("Enqueue start node %d.", start), start)) {
			return
		}
		for len(t.frontier) > 0 {
			u := t.frontier[0]
			t.frontier = t.frontier[1:]
			t.order = append(t.order, u)
			if !step.Emit(yield, t.snap(3, fmt.Sprintf("Dequeue %d.", u), u)) {
				return
			}
			for _, e := range adj[u] {
				st := t.snap(4, fmt.Sprintf("Look at edge %d->%d.", e.From, e.To), u)
				edge := e
				st.Active = &edge
				if t.visited[e.To] {
					st.Message = fmt.Sprintf("%d was already discovered.", e.To)
					if !step.Emit(yield, st) {
						return
					}
					continue
				}
				t.visited[e.To] = true
				t.dist[e.To] = t.dist[u] + 1
				t.frontier = append(t.frontier, e.To)
				st = t.snap(5, fmt.Sprintf("Discover %d at depth %d; enqueue it.", e.To, t.dist[e.To]), u)
				st.Active = &edge
				if !step.Emit(yield, st) {
					return
				}
			}
		}
		step.Emit(yield, t.snap(6, fmt.Sprintf("BFS complete; reached %d of %d nodes.", len(t.order), g.N), -1))
	}
}

var DFSCode = []string{
	"dfs(u):",
	"    visited[u] = true",
	"    for v in adj[u] {",
	"        if !visited[v] { dfs(v) }",
	"    backtrack from u",
	"done",
}

// DFS is recursive; the Frontier of each Step is the current call stack and
// every finished call emits a backtrack Step.
func DFS(g Graph, start int) step.Producer {
	if msg := g.validate(start); msg != "" {
		return invalid(g, msg)
	}
	return func(yield func(step.Step) bool) {
		t := newTracker(g)
		adj := g.adjacency()
		if !dfsVisit(yield, t, adj, start) {
			return
		}
		step.Emit(yield, t.snap(6, fmt.Sprintf("DFS complete; visit order %v.", t.order), -1))
	}
}

func dfsVisit(yield func(step.Step) bool, t *tracker, adj [][]step.Edge, u int) bool {
	t.visited[u] = true
	t.frontier = append(t.frontier, u)
	t.order = append(t.order, u)
	if !step.Emit(yield, t.snap(2, fmt.Sprintf("Visit %d.", u), u)) {
		return false
	}
	for _, e := range adj[u] {
		edge := e
		if t.visited[e.To] {
			st := t.snap(4, fmt.Sprintf("%d is already visited; skip edge %d->%d.", e.To, e.From, e.To), u)
			st.Active = &edge
			if !step.Emit(yield, st) {
				return false
			}
			continue
		}
		st := t.snap(4, fmt.Sprintf("Follow edge %d->%d.", e.From, e.To), u)
		st.Active = &edge
		if !step.Emit(yield, st) {
			return false
		}
		if !dfsVisit(yield, t, adj, e.To) {
			return false
		}
	}
	t.frontier = t.frontier[:len(t.frontier)-1]
	parent := -1
	if len(t.frontier) > 0 {
		parent = t.frontier[len(t.frontier)-1]
	}
	msg := fmt.Sprintf("Backtrack from %d.", u)
	if parent >= 0 {
		msg = fmt.Sprintf("Backtrack from %d to %d.", u, parent)
	}
	back := t.snap(5, msg, parent)
	back.Backtrack = true
	return step.Emit(yield, back)
}
