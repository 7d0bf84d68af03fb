package backtracking

import (
	"fmt"

	"github.com/san-kum/stepviz/internal/step"
)

const (
	Empty = 0
	Queen = 1
)

// MaxQueens keeps the search short enough to watch.
const MaxQueens = 10

// SolutionMessage marks the Step that carries a complete placement.
const SolutionMessage = "Found a valid solution!"

var NQueensCode = []string{
	"place(row):",
	"    if row == n { found a valid solution }",
	"    for col := 0; col < n; col++ {",
	"        if safe(row, col) {",
	"            board[row][col] = Q; place(row+1)",
	"            board[row][col] = . (backtrack)",
	"no placement left",
}

type queens struct {
	n     int
	board [][]int
	cols  []int
}

func (q *queens) snap(line int, msg string, active *step.Cell, compared ...step.Cell) *step.GridStep {
	return &step.GridStep{
		Meta:     step.Meta{Message: msg, Line: line},
		Grid:     q.board,
		Active:   active,
		Compared: compared,
	}
}

// conflict returns the queen attacking (row, col), if any.
func (q *queens) conflict(row, col int) (step.Cell, bool) {
	for r := 0; r < row; r++ {
		c := q.cols[r]
		if c == col || r-c == row-col || r+c == row+col {
			return step.Cell{Row: r, Col: c}, true
		}
	}
	return step.Cell{}, false
}

// NQueens searches for the first placement of n non-attacking queens.
func NQueens(n int) step.Producer {
	if n <= 0 {
		return invalid(fmt.Sprintf("N must be positive, got %d.", n))
	}
	if n > MaxQueens {
		return invalid(fmt.Sprintf("N is limited to %d, got %d.", MaxQueens, n))
	}
	return func(yield func(step.Step) bool) {
		q := &queens{n: n, board: newBoard(n, n), cols: make([]int, n)}
		found, ok := q.place(yield, 0)
		if !ok || found {
			return
		}
		step.Emit(yield, q.snap(7, fmt.Sprintf("No solution exists for N=%d.", n), nil))
	}
}

// place returns whether a solution was found and whether the consumer wants
// more Steps.
func (q *queens) place(yield func(step.Step) bool, row int) (found, ok bool) {
	if row == q.n {
		st := q.snap(2, SolutionMessage, nil)
		st.Solution = q.cols
		return true, step.Emit(yield, st)
	}
	for col := 0; col < q.n; col++ {
		at := step.Cell{Row: row, Col: col}
		if by, bad := q.conflict(row, col); bad {
			msg := fmt.Sprintf("(%d,%d) is attacked by the queen at (%d,%d).", row, col, by.Row, by.Col)
			if !step.Emit(yield, q.snap(4, msg, &at, by)) {
				return false, false
			}
			continue
		}
		q.board[row][col] = Queen
		q.cols[row] = col
		if !step.Emit(yield, q.snap(5, fmt.Sprintf("Place a queen at (%d,%d).", row, col), &at)) {
			return false, false
		}
		if found, ok := q.place(yield, row+1); found || !ok {
			return found, ok
		}
		q.board[row][col] = Empty
		undo := q.snap(6, fmt.Sprintf("Backtrack: remove the queen from (%d,%d).", row, col), &at)
		undo.Backtrack = true
		if !step.Emit(yield, undo) {
			return false, false
		}
	}
	return false, true
}

func newBoard(rows, cols int) [][]int {
	b := make([][]int, rows)
	for i := range b {
		b[i] = make([]int, cols)
	}
	return b
}

func invalid(msg string) step.Producer {
	return step.Single(&step.GridStep{Meta: step.Meta{Message: msg}, Grid: [][]int{}})
}
