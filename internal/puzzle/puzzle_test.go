package puzzle

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewPuzzleAllCandidates(t *testing.T) {
	require := require.New(t)
	p := NewPuzzle()

	require.False(p.IsSolved())
	for r := range 9 {
		for c := range 9 {
			cell := p.Grid[r][c]
			require.False(cell.IsSolved())
			require.Equal(9, cell.NumCandidates())
		}
	}
}

func TestGivenValueMarksCellFixed(t *testing.T) {
	require := require.New(t)
	p := NewPuzzle()
	p.GivenValue(0, 0, 5)

	cell := p.Grid[0][0]
	require.True(cell.IsSolved())
	require.True(cell.IsGiven)
	require.EqualValues(5, cell.Value())
	require.Equal(0, cell.NumCandidates())
}

func TestPlaceValueUpdatesUnsolvedCounts(t *testing.T) {
	require := require.New(t)
	p := NewPuzzle()
	before := p.unsolvedCounts[0]

	p.PlaceValue(3, 4, 7)

	require.Equal(before-1, p.unsolvedCounts[0])
	require.True(p.Grid[3][4].IsSolved())
}

func TestPuzzleIsSolvedWhenEveryCellFilled(t *testing.T) {
	require := require.New(t)
	p := NewPuzzle()
	for r := range 9 {
		for c := range 9 {
			p.PlaceValue(r, c, (r+c)%9+1)
		}
	}
	require.True(p.IsSolved())
}

func TestGivenValuePropagatesToPeers(t *testing.T) {
	require := require.New(t)
	p := NewPuzzle()
	p.GivenValue(0, 0, 5)

	require.False(p.Grid[0][3].HasCandidate(5), "row peer should have 5 ruled out")
	require.False(p.Grid[3][0].HasCandidate(5), "column peer should have 5 ruled out")
	require.False(p.Grid[1][1].HasCandidate(5), "box peer should have 5 ruled out")
	require.True(p.Grid[0][3].HasCandidate(6), "unrelated candidates must survive")
	require.True(p.Grid[8][8].HasCandidate(5), "cell outside the row/column/box must be untouched")
}

func TestCellBoxMatchesEncodeBoxIndex(t *testing.T) {
	require := require.New(t)
	for r := range 9 {
		for c := range 9 {
			cell := NewCell(r, c)
			require.Equal(boxIndex(r, c), cell.Box(), "row %d col %d", r, c)
		}
	}
}
