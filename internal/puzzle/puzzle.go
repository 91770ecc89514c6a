package puzzle

import (
	"fmt"
)

type Puzzle struct {
	Grid [9][9]*Cell

	// Holds counts of how many of each digit still needs to be placed.  If the
	// count for a digit reaches 0, then that digit is completely solved.
	// Index 0 holds the total count of unsolved grid cells.  When this value
	// reaches 0, the puzzle is completely solved.
	unsolvedCounts [10]int
}

func NewPuzzle() *Puzzle {
	p := &Puzzle{}
	for r := range 9 {
		for c := range 9 {
			p.Grid[r][c] = NewCell(r, c)
		}
	}

	for digit := range 10 {
		if digit == 0 {
			// Digit 0 represents the total count of unsolved cells.
			p.unsolvedCounts[digit] = 9 * 9
		} else {
			p.unsolvedCounts[digit] = 9
		}
	}

	return p
}

func (p *Puzzle) IsSolved() bool {
	return p.unsolvedCounts[0] == 0
}

func (p *Puzzle) IsDigitSolved(digit int) bool {
	return p.unsolvedCounts[digit] == 0
}

func (p *Puzzle) GivenValue(r, c int, val int) {
	p.Grid[r][c].GivenValue(int8(val))
	p.updateUnsolvedCounts(r, c, val)
	p.propagateCandidates(r, c, int8(val))
}

func (p *Puzzle) PlaceValue(r, c int, val int) bool {
	cell := p.Grid[r][c]
	if cell.IsSolved() {
		if int(cell.Value()) != val {
			puzzleStateError(fmt.Sprintf("conflicting cell values %d and %d at (%d,%d)",
				cell.Value(), val, r+1, c+1))
		}
		return false
	}

	cell.PlaceValue(int8(val))
	p.updateUnsolvedCounts(r, c, val)
	p.propagateCandidates(r, c, int8(val))
	return true
}

func (p *Puzzle) updateUnsolvedCounts(r, c int, val int) {
	p.unsolvedCounts[0] = p.unsolvedCounts[0] - 1
	p.unsolvedCounts[val] = p.unsolvedCounts[val] - 1
	if p.unsolvedCounts[val] < 0 {
		puzzleStateError(fmt.Sprintf("too many instances of digit %d when placing cell (%d,%d)", val, r, c))
	}
}

// propagateCandidates rules val out as a candidate for every other cell
// that shares a row, column, or box with (r, c), now that (r, c) is fixed
// to val. This keeps NumCandidates/HasCandidate accurate for every
// unsolved cell, which the printer's candidate grid depends on.
func (p *Puzzle) propagateCandidates(r, c int, val int8) {
	cell := p.Grid[r][c]
	for i := range 9 {
		p.clearPeerCandidate(cell, p.Grid[r][i], val)
		p.clearPeerCandidate(cell, p.Grid[i][c], val)
	}

	box := cell.Box()
	boxRow, boxCol := box/3*3, box%3*3
	for br := boxRow; br < boxRow+3; br++ {
		for bc := boxCol; bc < boxCol+3; bc++ {
			p.clearPeerCandidate(cell, p.Grid[br][bc], val)
		}
	}
}

func (p *Puzzle) clearPeerCandidate(cell, peer *Cell, val int8) {
	if cell.SameCell(peer) {
		return
	}
	peer.RemoveCandidate(val)
}
