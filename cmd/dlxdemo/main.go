// Command dlxdemo walks through the Dancing Links exact-cover engine in
// internal/dlx directly, independent of the Sudoku encoding, using
// Knuth's own textbook example plus the matrix's trivial and unsatisfiable
// edge cases.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/gridwise/dlxsudoku/internal/dlx"
)

func main() {
	color.HiCyan("Dancing Links (Algorithm X) exact-cover demonstration")
	color.HiCyan("======================================================")

	knuthExample()
	trivialCase()
	unsatisfiableCase()
	earlyExitDemo()
}

// knuthExample reproduces the canonical 6-row, 7-column instance from
// Knuth's "Dancing Links" paper, with one known exact cover.
func knuthExample() {
	rows := [][]int{
		{0, 3, 6},
		{0, 3},
		{3, 4, 6},
		{2, 4, 5},
		{1, 2, 5, 6},
		{1, 6},
	}

	fmt.Printf("\n%s\n", color.HiYellowString("Knuth's exact-cover example (6 rows, 7 columns)"))
	m := dlx.FromRows(rows)
	solutions := m.ExactCover()

	fmt.Printf("found %d solution(s):\n", len(solutions))
	for _, sol := range solutions {
		fmt.Printf("  rows %v\n", sol)
	}
}

// trivialCase shows the smallest possible instance: a single row covering
// a single column is its own unique solution.
func trivialCase() {
	fmt.Printf("\n%s\n", color.HiYellowString("Trivial case: one row, one column"))
	m := dlx.FromRows([][]int{{0}})
	fmt.Printf("solutions: %v\n", m.ExactCover())
}

// unsatisfiableCase shows a matrix with no exact cover at all: the two
// rows overlap on column 0, so no subset covers every column exactly
// once.
func unsatisfiableCase() {
	fmt.Printf("\n%s\n", color.HiYellowString("Unsatisfiable case: overlapping rows"))
	m := dlx.FromRows([][]int{{0, 1}, {0, 2}})
	fmt.Printf("solutions: %v (expect none)\n", m.ExactCover())
}

// earlyExitDemo exercises ExactCoverFunc, the streaming extension point
// that lets a caller stop the search as soon as it has what it needs.
func earlyExitDemo() {
	fmt.Printf("\n%s\n", color.HiYellowString("Streaming search: stop at the first solution"))
	m := dlx.FromRows([][]int{{0, 1}, {0, 1}})

	var first []int32
	m.ExactCoverFunc(func(solution []int32) bool {
		first = append([]int32(nil), solution...)
		return false // stop after the first hit
	})
	fmt.Printf("first solution: %v\n", first)
}
