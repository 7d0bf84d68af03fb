// Package metrics derives operation counts from a materialized sequence.
package metrics

import "github.com/san-kum/stepviz/internal/step"

type Metric interface {
	Name() string
	Observe(s step.Step)
	Value() float64
	Reset()
}

// Default returns a fresh instance of every built-in metric.
func Default() []Metric {
	return []Metric{NewComparisons(), NewSwaps(), NewProbes(), NewBacktracks()}
}

// Summarize feeds every Step of seq to each metric, after resetting it,
// and returns the values keyed by name. With no metrics it uses Default.
func Summarize(seq step.Sequence, ms ...Metric) map[string]float64 {
	if len(ms) == 0 {
		ms = Default()
	}
	for _, m := range ms {
		m.Reset()
	}
	for _, s := range seq.All() {
		for _, m := range ms {
			m.Observe(s)
		}
	}
	out := make(map[string]float64, len(ms))
	for _, m := range ms {
		out[m.Name()] = m.Value()
	}
	return out
}

// counter is the shared body of the count-based metrics.
type counter struct {
	name  string
	count int
	match func(step.Step) bool
}

func (c *counter) Name() string { return c.name }

func (c *counter) Observe(s step.Step) {
	if c.match(s) {
		c.count++
	}
}

func (c *counter) Value() float64 { return float64(c.count) }

func (c *counter) Reset() { c.count = 0 }

// Comparisons counts Steps that compare array elements or table cells.
type Comparisons struct{ counter }

func NewComparisons() *Comparisons {
	return &Comparisons{counter{name: "comparisons", match: func(s step.Step) bool {
		switch s := s.(type) {
		case *step.ArrayStep:
			return len(s.Comparing) > 0
		case *step.GridStep:
			return len(s.Compared) > 0
		}
		return false
	}}}
}

type Swaps struct{ counter }

func NewSwaps() *Swaps {
	return &Swaps{counter{name: "swaps", match: func(s step.Step) bool {
		a, ok := s.(*step.ArrayStep)
		return ok && len(a.Swapping) > 0
	}}}
}

// Probes counts hash table slot inspections.
type Probes struct{ counter }

func NewProbes() *Probes {
	return &Probes{counter{name: "probes", match: func(s step.Step) bool {
		h, ok := s.(*step.HashStep)
		return ok && h.Probe >= 0 && h.Probes > 0
	}}}
}

// Backtracks counts grid and graph Steps flagged as undoing a choice: DFS
// returns, queen removals, cleared Sudoku cells and maze dead ends.
type Backtracks struct{ counter }

func NewBacktracks() *Backtracks {
	return &Backtracks{counter{name: "backtracks", match: func(s step.Step) bool {
		switch s := s.(type) {
		case *step.GridStep:
			return s.Backtrack
		case *step.GraphStep:
			return s.Backtrack
		}
		return false
	}}}
}
