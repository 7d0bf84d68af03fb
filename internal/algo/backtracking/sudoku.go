package backtracking

import (
	"fmt"

	"github.com/san-kum/stepviz/internal/step"
)

// SudokuBudget caps the number of Steps a Sudoku search may emit.
const SudokuBudget = 50000

type sudoku struct {
	n, box int
	board  [][]int
	steps  int
}

func (s *sudoku) snap(line int, msg string, at *step.Cell, compared ...step.Cell) *step.GridStep {
	return &step.GridStep{
		Meta:     step.Meta{Message: msg, Line: line},
		Grid:     s.board,
		Active:   at,
		Compared: compared,
	}
}

func (s *sudoku) emit(yield func(step.Step) bool, st *step.GridStep) bool {
	s.steps++
	return step.Emit(yield, st)
}

// clash returns a cell that already holds v in the row, column or box of
// (r, c).
func (s *sudoku) clash(r, c, v int) (step.Cell, bool) {
	for i := 0; i < s.n; i++ {
		if i != c && s.board[r][i] == v {
			return step.Cell{Row: r, Col: i}, true
		}
		if i != r && s.board[i][c] == v {
			return step.Cell{Row: i, Col: c}, true
		}
	}
	br, bc := r/s.box*s.box, c/s.box*s.box
	for i := br; i < br+s.box; i++ {
		for j := bc; j < bc+s.box; j++ {
			if (i != r || j != c) && s.board[i][j] == v {
				return step.Cell{Row: i, Col: j}, true
			}
		}
	}
	return step.Cell{}, false
}

func validateSudoku(board [][]int) (box int, msg string) {
	n := len(board)
	switch n {
	case 4:
		box = 2
	case 9:
		box = 3
	default:
		return 0, fmt.Sprintf("Sudoku must be 4x4 or 9x9, got %d rows.", n)
	}
	for r, row := range board {
		if len(row) != n {
			return 0, fmt.Sprintf("Row %d has %d cells, expected %d.", r, len(row), n)
		}
		for c, v := range row {
			if v < 0 || v > n {
				return 0, fmt.Sprintf("Cell (%d,%d) holds %d; values must be 0..%d.", r, c, v, n)
			}
		}
	}
	return box, ""
}

// Sudoku fills empty (0) cells by backtracking. Conflicting givens and
// unsolvable boards end in an explanatory Step.
func Sudoku(board [][]int) step.Producer {
	box, msg := validateSudoku(board)
	if msg != "" {
		return invalid(msg)
	}
	return func(yield func(step.Step) bool) {
		s := &sudoku{n: len(board), box: box, board: step.CloneGrid(board)}
		for r := range s.board {
			for c, v := range s.board[r] {
				if v == 0 {
					continue
				}
				if by, bad := s.clash(r, c, v); bad {
					at := step.Cell{Row: r, Col: c}
					s.emit(yield, s.snap(0, fmt.Sprintf("The givens conflict: %d at (%d,%d) repeats at (%d,%d). No solution exists.", v, r, c, by.Row, by.Col), &at, by))
					return
				}
			}
		}
		if !s.emit(yield, s.snap(0, "Givens are consistent; start filling empty cells.", nil)) {
			return
		}

		found, ok := s.fill(yield, 0)
		switch {
		case !ok:
			return
		case found:
			s.emit(yield, s.snap(0, "Sudoku solved.", nil))
		case s.steps >= SudokuBudget:
			s.emit(yield, s.snap(0, fmt.Sprintf("Gave up after %d steps without a solution.", s.steps), nil))
		default:
			s.emit(yield, s.snap(0, "No solution exists for this puzzle.", nil))
		}
	}
}

func (s *sudoku) fill(yield func(step.Step) bool, pos int) (found, ok bool) {
	for pos < s.n*s.n && s.board[pos/s.n][pos%s.n] != 0 {
		pos++
	}
	if pos == s.n*s.n {
		return true, true
	}
	if s.steps >= SudokuBudget {
		return false, true
	}
	r, c := pos/s.n, pos%s.n
	at := step.Cell{Row: r, Col: c}
	for v := 1; v <= s.n; v++ {
		if by, bad := s.clash(r, c, v); bad {
			if !s.emit(yield, s.snap(0, fmt.Sprintf("%d cannot go at (%d,%d): it already appears at (%d,%d).", v, r, c, by.Row, by.Col), &at, by)) {
				return false, false
			}
			continue
		}
		s.board[r][c] = v
		if !s.emit(yield, s.snap(0, fmt.Sprintf("Place %d at (%d,%d).", v, r, c), &at)) {
			return false, false
		}
		if found, ok := s.fill(yield, pos+1); found || !ok {
			return found, ok
		}
		s.board[r][c] = 0
		undo := s.snap(0, fmt.Sprintf("Backtrack: clear (%d,%d).", r, c), &at)
		undo.Backtrack = true
		if !s.emit(yield, undo) {
			return false, false
		}
		if s.steps >= SudokuBudget {
			return false, true
		}
	}
	return false, true
}
