// Package bruteforce implements a plain recursive backtracking Sudoku
// solver, independent of the Dancing Links engine in internal/dlx. It
// exists as a baseline to compare against: same puzzle, same answer, a
// completely different search strategy with none of the exact-cover
// machinery.
package bruteforce

import (
	"github.com/gridwise/dlxsudoku/internal/puzzle"
)

type grid [9][9]int8

// Solve finds a solution for p by backtracking search and applies it to
// p's grid. It returns puzzle.ErrNoSolution if the puzzle, as given,
// admits no valid completion. Unlike puzzle.Solve, it does not check for
// uniqueness — it stops at the first solution found.
func Solve(p *puzzle.Puzzle) error {
	var g grid
	for r := range 9 {
		for c := range 9 {
			if cell := p.Grid[r][c]; cell.IsSolved() {
				g[r][c] = cell.Value()
			}
		}
	}

	if !g.search() {
		return puzzle.ErrNoSolution
	}

	for r := range 9 {
		for c := range 9 {
			if !p.Grid[r][c].IsSolved() {
				p.PlaceValue(r, c, int(g[r][c]))
			}
		}
	}
	return nil
}

// search finds the empty cell with the fewest legal candidates (a simple
// most-constrained-first ordering that keeps the branching factor down
// without any of the DLX column-covering machinery), tries each
// candidate, and recurses. It reports whether a complete assignment was
// found; on failure it leaves g exactly as it found it, since every
// trial value is cleared before moving on to the next one.
func (g *grid) search() bool {
	r, c, candidates, found := g.mostConstrainedCell()
	if !found {
		return true // no empty cells left: fully solved
	}
	if len(candidates) == 0 {
		return false // dead end: an empty cell with no legal value
	}

	for _, val := range candidates {
		g[r][c] = val
		if g.search() {
			return true
		}
		g[r][c] = 0
	}
	return false
}

// mostConstrainedCell returns the empty cell with the fewest remaining
// legal values, to prune the search tree as early as possible. found is
// false if every cell is already filled.
func (g *grid) mostConstrainedCell() (row, col int, candidates []int8, found bool) {
	best := 10
	for r := range 9 {
		for c := range 9 {
			if g[r][c] != 0 {
				continue
			}
			cands := g.legalValues(r, c)
			if len(cands) < best {
				row, col, candidates, found, best = r, c, cands, true, len(cands)
				if best == 0 {
					return
				}
			}
		}
	}
	return
}

func (g *grid) legalValues(row, col int) []int8 {
	var used [10]bool
	for i := range 9 {
		used[g[row][i]] = true
		used[g[i][col]] = true
	}
	boxRow, boxCol := row/3*3, col/3*3
	for r := boxRow; r < boxRow+3; r++ {
		for c := boxCol; c < boxCol+3; c++ {
			used[g[r][c]] = true
		}
	}

	values := make([]int8, 0, 9)
	for v := int8(1); v <= 9; v++ {
		if !used[v] {
			values = append(values, v)
		}
	}
	return values
}
