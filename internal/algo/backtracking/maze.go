package backtracking

import (
	"fmt"

	"github.com/san-kum/stepviz/internal/step"
)

// Maze cell values, both in the input and in emitted grids.
const (
	Open = 0
	Wall = 1
	Path = 2
	Dead = 3
)

// MaxMaze bounds either maze dimension.
const MaxMaze = 40

var mazeMoves = [4]step.Cell{{Row: 0, Col: 1}, {Row: 1, Col: 0}, {Row: 0, Col: -1}, {Row: -1, Col: 0}}

type maze struct {
	grid  [][]int
	goal  step.Cell
	trail []step.Cell
}

func (m *maze) snap(line int, msg string, at *step.Cell) *step.GridStep {
	return &step.GridStep{
		Meta:   step.Meta{Message: msg, Line: line},
		Grid:   m.grid,
		Active: at,
		Path:   m.trail,
	}
}

func (m *maze) inside(c step.Cell) bool {
	return c.Row >= 0 && c.Row < len(m.grid) && c.Col >= 0 && c.Col < len(m.grid[c.Row])
}

func validateMaze(grid [][]int, start, goal step.Cell) string {
	if len(grid) == 0 || len(grid[0]) == 0 {
		return "Maze is empty."
	}
	if len(grid) > MaxMaze || len(grid[0]) > MaxMaze {
		return fmt.Sprintf("Maze is limited to %dx%d.", MaxMaze, MaxMaze)
	}
	for i, row := range grid {
		if len(row) != len(grid[0]) {
			return fmt.Sprintf("Row %d has %d cells, expected %d.", i, len(row), len(grid[0]))
		}
	}
	m := &maze{grid: grid}
	for _, c := range []struct {
		name string
		cell step.Cell
	}{{"Start", start}, {"Goal", goal}} {
		if !m.inside(c.cell) {
			return fmt.Sprintf("%s (%d,%d) is outside the maze.", c.name, c.cell.Row, c.cell.Col)
		}
		if grid[c.cell.Row][c.cell.Col] == Wall {
			return fmt.Sprintf("%s (%d,%d) is blocked by a wall.", c.name, c.cell.Row, c.cell.Col)
		}
	}
	return ""
}

// SolveMaze runs a depth-first search from start to goal, marking the
// current path and dead ends.
func SolveMaze(grid [][]int, start, goal step.Cell) step.Producer {
	if msg := validateMaze(grid, start, goal); msg != "" {
		return invalid(msg)
	}
	return func(yield func(step.Step) bool) {
		m := &maze{grid: step.CloneGrid(grid), goal: goal}
		found, ok := m.walk(yield, start)
		if !ok || found {
			return
		}
		step.Emit(yield, m.snap(0, fmt.Sprintf("No path from (%d,%d) to (%d,%d).", start.Row, start.Col, goal.Row, goal.Col), nil))
	}
}

func (m *maze) walk(yield func(step.Step) bool, c step.Cell) (found, ok bool) {
	m.grid[c.Row][c.Col] = Path
	m.trail = append(m.trail, c)
	at := c
	if c == m.goal {
		return true, step.Emit(yield, m.snap(0, fmt.Sprintf("Reached the goal in %d moves.", len(m.trail)-1), &at))
	}
	if !step.Emit(yield, m.snap(0, fmt.Sprintf("Step onto (%d,%d).", c.Row, c.Col), &at)) {
		return false, false
	}
	for _, d := range mazeMoves {
		next := step.Cell{Row: c.Row + d.Row, Col: c.Col + d.Col}
		if !m.inside(next) || m.grid[next.Row][next.Col] != Open {
			continue
		}
		if found, ok := m.walk(yield, next); found || !ok {
			return found, ok
		}
	}
	m.grid[c.Row][c.Col] = Dead
	m.trail = m.trail[:len(m.trail)-1]
	dead := m.snap(0, fmt.Sprintf("Dead end at (%d,%d); backtrack.", c.Row, c.Col), &at)
	dead.Backtrack = true
	return false, step.Emit(yield, dead)
}
