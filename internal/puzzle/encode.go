package puzzle

import "github.com/gridwise/dlxsudoku/internal/dlx"

// 9x9 Sudoku has 4 families of constraints, 81 columns each, for 324
// total: every cell holds exactly one digit; every row, column, and box
// holds each digit exactly once. Candidate rows are one per (cell, digit)
// combination that is still possible, 729 at most (9x9x9).
const (
	numCellConstraints = 81
	numRowConstraints  = 81
	numColConstraints  = 81
	numBoxConstraints  = 81

	rowConstraintBase = numCellConstraints
	colConstraintBase = rowConstraintBase + numRowConstraints
	boxConstraintBase = colConstraintBase + numColConstraints
	numColumns         = boxConstraintBase + numBoxConstraints
)

// candidate records which (cell, value) a DLX row id represents, so a
// selected row can be decoded back into a grid placement.
type candidate struct {
	row, col int
	value    int8
}

// buildMatrix encodes the puzzle's remaining possibilities as a DLX
// matrix: one row per (cell, candidate digit) combination that the cell's
// current candidate set still allows, touching the four constraint
// columns that combination satisfies. Already-solved cells (givens or
// placed values) contribute exactly one row, for their fixed value.
func buildMatrix(p *Puzzle) (*dlx.Matrix, []candidate) {
	m := dlx.New()
	candidates := make([]candidate, 0, 9*9*9)

	addRow := func(r, c int, val int8) {
		y := int32(len(candidates))
		candidates = append(candidates, candidate{row: r, col: c, value: val})

		box := boxIndex(r, c)
		cols := [4]int32{
			int32(r*9 + c),
			int32(rowConstraintBase + r*9 + int(val-1)),
			int32(colConstraintBase + c*9 + int(val-1)),
			int32(boxConstraintBase + box*9 + int(val-1)),
		}
		for _, x := range cols {
			m.AddCell(x, y)
		}
	}

	for r := range 9 {
		for c := range 9 {
			cell := p.Grid[r][c]
			if cell.IsSolved() {
				addRow(r, c, cell.Value())
				continue
			}
			for val := int8(1); val <= 9; val++ {
				if cell.HasCandidate(val) {
					addRow(r, c, val)
				}
			}
		}
	}

	return m, candidates
}

func boxIndex(r, c int) int {
	return (r/3)*3 + c/3
}

// applySolution places every candidate named by a DLX solution's row ids
// into the puzzle's grid.
func applySolution(p *Puzzle, candidates []candidate, solution []int32) {
	for _, rowID := range solution {
		can := candidates[rowID]
		cell := p.Grid[can.row][can.col]
		if !cell.IsSolved() {
			p.PlaceValue(can.row, can.col, int(can.value))
		}
	}
}
