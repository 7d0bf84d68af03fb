// Package dp animates bottom-up dynamic programming tables.
package dp

import (
	"fmt"

	"github.com/san-kum/stepviz/internal/step"
)

// MaxFib is the largest n whose Fibonacci number fits in an int64.
const MaxFib = 92

// MaxTable bounds either dimension of a DP table.
const MaxTable = 64

type table struct {
	grid      [][]int
	rowLabels []string
	colLabels []string
}

func newTable(rows, cols int) *table {
	g := make([][]int, rows)
	for i := range g {
		g[i] = make([]int, cols)
	}
	return &table{grid: g}
}

func (t *table) snap(line int, msg string, active *step.Cell, compared ...step.Cell) *step.GridStep {
	return &step.GridStep{
		Meta:      step.Meta{Message: msg, Line: line},
		Grid:      t.grid,
		Active:    active,
		Compared:  compared,
		RowLabels: t.rowLabels,
		ColLabels: t.colLabels,
	}
}

func invalid(msg string) step.Producer {
	return step.Single(&step.GridStep{Meta: step.Meta{Message: msg}, Grid: [][]int{}})
}

func cell(r, c int) step.Cell { return step.Cell{Row: r, Col: c} }

func labels(prefix string, s string) []string {
	out := []string{prefix}
	for _, r := range s {
		out = append(out, string(r))
	}
	return out
}

var FibonacciCode = []string{
	"f[0], f[1] = 0, 1",
	"for i := 2; i <= n; i++ {",
	"    f[i] = f[i-1] + f[i-2]",
	"return f[n]",
}

func Fibonacci(n int) step.Producer {
	if n < 0 || n > MaxFib {
		return invalid(fmt.Sprintf("n must be between 0 and %d, got %d.", MaxFib, n))
	}
	return func(yield func(step.Step) bool) {
		t := newTable(1, n+1)
		t.colLabels = make([]string, n+1)
		for i := range t.colLabels {
			t.colLabels[i] = fmt.Sprint(i)
		}
		row := t.grid[0]
		if n >= 1 {
			row[1] = 1
		}
		if !step.Emit(yield, t.snap(1, "Base cases: f(0) = 0, f(1) = 1.", nil)) {
			return
		}
		for i := 2; i <= n; i++ {
			row[i] = row[i-1] + row[i-2]
			a := cell(0, i)
			msg := fmt.Sprintf("f(%d) = f(%d) + f(%d) = %d + %d = %d.", i, i-1, i-2, row[i-1], row[i-2], row[i])
			if !step.Emit(yield, t.snap(3, msg, &a, cell(0, i-1), cell(0, i-2))) {
				return
			}
		}
		st := t.snap(4, fmt.Sprintf("f(%d) = %d.", n, row[n]), nil)
		res := row[n]
		st.Result = &res
		st.Path = []step.Cell{cell(0, n)}
		step.Emit(yield, st)
	}
}

var LCSCode = []string{
	"for i, j over the table {",
	"    if a[i-1] == b[j-1] { L[i][j] = L[i-1][j-1] + 1 }",
	"    else { L[i][j] = max(L[i-1][j], L[i][j-1]) }",
	"trace back from L[m][n]",
	"done",
}

// LCS fills the longest-common-subsequence table and traces one optimal
// subsequence back through it.
func LCS(a, b string) step.Producer {
	ra, rb := []rune(a), []rune(b)
	if len(ra) > MaxTable || len(rb) > MaxTable {
		return invalid(fmt.Sprintf("Strings are limited to %d characters.", MaxTable))
	}
	return func(yield func(step.Step) bool) {
		m, n := len(ra), len(rb)
		t := newTable(m+1, n+1)
		t.rowLabels = labels("ε", a)
		t.colLabels = labels("ε", b)
		if !step.Emit(yield, t.snap(1, "Row 0 and column 0 are 0: an empty string has no common subsequence.", nil)) {
			return
		}
		for i := 1; i <= m; i++ {
			for j := 1; j <= n; j++ {
				act := cell(i, j)
				var st *step.GridStep
				if ra[i-1] == rb[j-1] {
					t.grid[i][j] = t.grid[i-1][j-1] + 1
					st = t.snap(2, fmt.Sprintf("%q matches: L[%d][%d] = L[%d][%d] + 1 = %d.", ra[i-1], i, j, i-1, j-1, t.grid[i][j]), &act, cell(i-1, j-1))
				} else {
					t.grid[i][j] = max(t.grid[i-1][j], t.grid[i][j-1])
					st = t.snap(3, fmt.Sprintf("%q != %q: L[%d][%d] = max(%d, %d) = %d.", ra[i-1], rb[j-1], i, j, t.grid[i-1][j], t.grid[i][j-1], t.grid[i][j]), &act, cell(i-1, j), cell(i, j-1))
				}
				if !step.Emit(yield, st) {
					return
				}
			}
		}

		var path []step.Cell
		var lcs []rune
		i, j := m, n
		for i > 0 && j > 0 {
			path = append(path, cell(i, j))
			switch {
			case ra[i-1] == rb[j-1]:
				lcs = append([]rune{ra[i-1]}, lcs...)
				i, j = i-1, j-1
			case t.grid[i-1][j] >= t.grid[i][j-1]:
				i--
			default:
				j--
			}
			st := t.snap(4, fmt.Sprintf("Trace back; subsequence so far %q.", string(lcs)), nil)
			st.Path = path
			if !step.Emit(yield, st) {
				return
			}
		}
		res := t.grid[m][n]
		st := t.snap(5, fmt.Sprintf("Longest common subsequence %q has length %d.", string(lcs), res), nil)
		st.Path = path
		st.Result = &res
		step.Emit(yield, st)
	}
}

type Item struct {
	Weight int `yaml:"weight" json:"weight"`
	Value  int `yaml:"value" json:"value"`
}

var KnapsackCode = []string{
	"K[0][c] = 0 for all c",
	"if w[i] > c: K[i][c] = K[i-1][c]",
	"else K[i][c] = max(K[i-1][c], K[i-1][c-w[i]] + v[i])",
	"trace back the chosen items",
}

// Knapsack solves 0/1 knapsack; row i considers the first i items.
func Knapsack(items []Item, capacity int) step.Producer {
	switch {
	case capacity < 0:
		return invalid(fmt.Sprintf("Capacity must not be negative, got %d.", capacity))
	case capacity > MaxTable*4 || len(items) > MaxTable:
		return invalid("Knapsack instance is too large to animate.")
	}
	for i, it := range items {
		if it.Weight <= 0 {
			return invalid(fmt.Sprintf("Item %d has non-positive weight %d.", i, it.Weight))
		}
	}
	return func(yield func(step.Step) bool) {
		n := len(items)
		t := newTable(n+1, capacity+1)
		t.rowLabels = []string{"-"}
		for i, it := range items {
			t.rowLabels = append(t.rowLabels, fmt.Sprintf("#%d(w%d,v%d)", i, it.Weight, it.Value))
		}
		t.colLabels = make([]string, capacity+1)
		for c := range t.colLabels {
			t.colLabels[c] = fmt.Sprint(c)
		}
		if !step.Emit(yield, t.snap(1, "With no items every capacity has value 0.", nil)) {
			return
		}
		for i := 1; i <= n; i++ {
			it := items[i-1]
			for c := 0; c <= capacity; c++ {
				act := cell(i, c)
				skip := t.grid[i-1][c]
				if it.Weight > c {
					t.grid[i][c] = skip
					if !step.Emit(yield, t.snap(2, fmt.Sprintf("Item %d (weight %d) does not fit in %d; carry %d down.", i-1, it.Weight, c, skip), &act, cell(i-1, c))) {
						return
					}
					continue
				}
				take := t.grid[i-1][c-it.Weight] + it.Value
				t.grid[i][c] = max(skip, take)
				msg := fmt.Sprintf("Capacity %d: skip item %d = %d, take it = %d; keep %d.", c, i-1, skip, take, t.grid[i][c])
				if !step.Emit(yield, t.snap(3, msg, &act, cell(i-1, c), cell(i-1, c-it.Weight))) {
					return
				}
			}
		}

		var path []step.Cell
		var chosen []int
		c := capacity
		for i := n; i > 0; i-- {
			path = append(path, cell(i, c))
			if t.grid[i][c] != t.grid[i-1][c] {
				chosen = append([]int{i - 1}, chosen...)
				c -= items[i-1].Weight
			}
		}
		res := t.grid[n][capacity]
		st := t.snap(4, fmt.Sprintf("Best value %d using items %v.", res, chosen), nil)
		st.Path = path
		st.Result = &res
		st.Solution = chosen
		step.Emit(yield, st)
	}
}

var EditDistanceCode = []string{
	"D[i][0] = i, D[0][j] = j",
	"if a[i] == b[j]: D[i][j] = D[i-1][j-1]",
	"else D[i][j] = 1 + min(D[i-1][j], D[i][j-1], D[i-1][j-1])",
	"return D[n][m]",
}

// EditDistance computes the Levenshtein distance between a and b.
func EditDistance(a, b string) step.Producer {
	ra, rb := []rune(a), []rune(b)
	if len(ra) > MaxTable || len(rb) > MaxTable {
		return invalid(fmt.Sprintf("Strings are limited to %d characters.", MaxTable))
	}
	return func(yield func(step.Step) bool) {
		m, n := len(ra), len(rb)
		t := newTable(m+1, n+1)
		t.rowLabels = labels("ε", a)
		t.colLabels = labels("ε", b)
		for i := 0; i <= m; i++ {
			t.grid[i][0] = i
		}
		for j := 0; j <= n; j++ {
			t.grid[0][j] = j
		}
		if !step.Emit(yield, t.snap(1, "Converting to or from the empty string costs one edit per character.", nil)) {
			return
		}
		for i := 1; i <= m; i++ {
			for j := 1; j <= n; j++ {
				act := cell(i, j)
				if ra[i-1] == rb[j-1] {
					t.grid[i][j] = t.grid[i-1][j-1]
					if !step.Emit(yield, t.snap(2, fmt.Sprintf("%q == %q: no edit, D[%d][%d] = %d.", ra[i-1], rb[j-1], i, j, t.grid[i][j]), &act, cell(i-1, j-1))) {
						return
					}
					continue
				}
				del, ins, sub := t.grid[i-1][j], t.grid[i][j-1], t.grid[i-1][j-1]
				t.grid[i][j] = 1 + min(del, ins, sub)
				msg := fmt.Sprintf("1 + min(delete %d, insert %d, replace %d) = %d.", del, ins, sub, t.grid[i][j])
				if !step.Emit(yield, t.snap(3, msg, &act, cell(i-1, j), cell(i, j-1), cell(i-1, j-1))) {
					return
				}
			}
		}
		res := t.grid[m][n]
		st := t.snap(4, fmt.Sprintf("Edit distance is %d.", res), nil)
		st.Result = &res
		st.Path = []step.Cell{cell(m, n)}
		step.Emit(yield, st)
	}
}
