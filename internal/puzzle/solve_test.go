package puzzle

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// fullValidGrid returns a complete, valid Sudoku solution using the
// standard base-pattern construction: shifting a row of 1-9 by 3*row +
// row/3 + col keeps every row, column, and 3x3 box a permutation of 1-9.
func fullValidGrid() [9][9]int8 {
	var g [9][9]int8
	for r := range 9 {
		for c := range 9 {
			g[r][c] = int8((r*3+r/3+c)%9) + 1
		}
	}
	return g
}

func newPuzzleFromGrid(g [9][9]int8, blank func(r, c int) bool) *Puzzle {
	p := NewPuzzle()
	for r := range 9 {
		for c := range 9 {
			if blank != nil && blank(r, c) {
				continue
			}
			p.GivenValue(r, c, int(g[r][c]))
		}
	}
	return p
}

// assertValidSolution checks every row, column, and box of a solved
// puzzle holds each digit 1-9 exactly once.
func assertValidSolution(t *testing.T, p *Puzzle) {
	t.Helper()
	require := require.New(t)
	require.True(p.IsSolved())

	checkGroup := func(cells []*Cell, name string) {
		var seen [10]bool
		for _, cell := range cells {
			require.True(cell.IsSolved(), "%s has an unsolved cell", name)
			v := cell.Value()
			require.False(seen[v], "%s has duplicate digit %d", name, v)
			seen[v] = true
		}
	}

	for r := range 9 {
		row := make([]*Cell, 9)
		for c := range 9 {
			row[c] = p.Grid[r][c]
		}
		checkGroup(row, "row")
	}
	for c := range 9 {
		col := make([]*Cell, 9)
		for r := range 9 {
			col[r] = p.Grid[r][c]
		}
		checkGroup(col, "column")
	}
	for box := range 9 {
		boxRow, boxCol := box/3*3, box%3*3
		cells := make([]*Cell, 0, 9)
		for r := boxRow; r < boxRow+3; r++ {
			for c := boxCol; c < boxCol+3; c++ {
				cells = append(cells, p.Grid[r][c])
			}
		}
		checkGroup(cells, "box")
	}
}

// TestSolveSingleBlankCell covers a completed grid with exactly one cell
// blanked: it has a trivially unique solution, and Solve must recover the
// exact original digit.
func TestSolveSingleBlankCell(t *testing.T) {
	require := require.New(t)
	full := fullValidGrid()
	p := newPuzzleFromGrid(full, func(r, c int) bool { return r == 4 && c == 4 })

	require.False(p.IsSolved())
	require.NoError(Solve(p))

	assertValidSolution(t, p)
	require.Equal(full[4][4], p.Grid[4][4].Value())
	require.False(p.Grid[4][4].IsGiven, "solved cell should not be marked as a given")
}

// TestSolveHardPuzzle covers a widely cited hard puzzle, with one given
// added, that has exactly one solution: Solve must find a fully valid
// grid without disturbing the given cells.
func TestSolveHardPuzzle(t *testing.T) {
	require := require.New(t)
	rows := []string{
		"81.......",
		"..36.....",
		".7..9.2..",
		".5...7...",
		"....457..",
		"...1...3.",
		"..1....68",
		"..85...1.",
		".9....4..",
	}

	p := NewPuzzle()
	for r, line := range rows {
		for c := range 9 {
			if line[c] == '.' {
				continue
			}
			p.GivenValue(r, c, int(line[c]-'0'))
		}
	}

	require.NoError(Solve(p))
	assertValidSolution(t, p)

	for r, line := range rows {
		for c := range 9 {
			if line[c] == '.' {
				continue
			}
			require.EqualValues(line[c]-'0', p.Grid[r][c].Value(), "given at (%d,%d) must be preserved", r, c)
		}
	}
}

func TestSolveNoSolution(t *testing.T) {
	require := require.New(t)
	p := NewPuzzle()
	// Two givens in the same row with the same digit: unsatisfiable.
	p.GivenValue(0, 0, 5)
	p.GivenValue(0, 1, 5)

	require.ErrorIs(Solve(p), ErrNoSolution)
}

func TestSolveMultipleSolutions(t *testing.T) {
	require := require.New(t)
	p := NewPuzzle() // entirely blank: wildly underdetermined

	require.ErrorIs(Solve(p), ErrMultipleSolutions)
}

func TestSolveFirstAcceptsAmbiguousPuzzle(t *testing.T) {
	require := require.New(t)
	p := NewPuzzle()

	require.NoError(SolveFirst(p))
	assertValidSolution(t, p)
}

func TestCountSolutionsRespectsMax(t *testing.T) {
	require := require.New(t)
	p := NewPuzzle()

	count := CountSolutions(p, 2)
	require.Equal(2, count)
	require.False(p.IsSolved(), "CountSolutions must not mutate the puzzle")
}

func TestCountSolutionsUniquePuzzle(t *testing.T) {
	require := require.New(t)
	full := fullValidGrid()
	p := newPuzzleFromGrid(full, func(r, c int) bool { return r == 0 && c == 0 })

	require.Equal(1, CountSolutions(p, 0))
}

func TestSolveWithOptionsVerifyUnique(t *testing.T) {
	require := require.New(t)
	p := NewPuzzle()
	opts := &SolverOptions{VerifyUnique: true}

	require.ErrorIs(SolveWithOptions(p, opts), ErrMultipleSolutions)
}

func TestSolveWithOptionsDefaultFirst(t *testing.T) {
	require := require.New(t)
	p := NewPuzzle()

	require.NoError(SolveWithOptions(p, DefaultSolverOptions()))
	assertValidSolution(t, p)
}
