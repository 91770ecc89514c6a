package puzzle

import (
	"errors"
	"time"

	"github.com/gridwise/dlxsudoku/internal/dlx"
)

// ErrTimeout is returned by SolveWithOptions when TimeLimit elapses
// before a solution is found. The search itself has no internal
// cancellation (per the core's concurrency model); the goroutine running
// it is simply abandoned to finish on its own, which is the external
// wall-clock-budget approach the core's design explicitly defers to a
// caller.
var ErrTimeout = errors.New("puzzle: solver timed out")

// ErrNoSolution is returned when a puzzle's exact-cover encoding has no
// solution at all.
var ErrNoSolution = errors.New("puzzle: no solution exists for this puzzle")

// ErrMultipleSolutions is returned when a puzzle's exact-cover encoding
// has more than one solution, so a unique placement can't be chosen.
var ErrMultipleSolutions = errors.New("puzzle: puzzle has more than one solution")

// Solve attempts to solve p using the Dancing Links exact-cover engine.
// It returns an error if the puzzle's encoding has zero or more than one
// solution; that is a user-level outcome, not a programmer error, so it
// is reported rather than panicking. Uniqueness is verified as described
// by solveUnique.
func Solve(p *Puzzle) error {
	return solveUnique(p, 2)
}

// solveUnique finds the first solution to p's encoding and, concurrently,
// searches an independent clone of the matrix, counting up to
// maxSolutions solutions, to confirm that no second one exists. Running the two searches in separate goroutines
// over separate matrices is exactly the use case internal/dlx.Clone
// exists for: the main solve and the uniqueness check never touch the
// same arena, so neither needs to synchronize with the other beyond
// waiting on its result. maxSolutions is raised to 2 if lower, since
// fewer than two solutions sought can never distinguish "one" from
// "more than one".
func solveUnique(p *Puzzle, maxSolutions int) error {
	if maxSolutions < 2 {
		maxSolutions = 2
	}
	m, candidates := buildMatrix(p)
	clone := m.Clone()

	firstCh := make(chan []int32, 1)
	go func() {
		var first []int32
		m.ExactCoverFunc(func(solution []int32) bool {
			first = append([]int32(nil), solution...)
			return false // first solution only
		})
		firstCh <- first
	}()

	countCh := make(chan int, 1)
	go func() {
		countCh <- countSolutionsOn(clone, maxSolutions)
	}()

	first, count := <-firstCh, <-countCh

	switch {
	case first == nil:
		return ErrNoSolution
	case count > 1:
		return ErrMultipleSolutions
	}

	applySolution(p, candidates, first)
	return nil
}

// SolveFirst applies the first exact cover found, without checking
// whether a second one exists. It is faster than Solve but does not
// guarantee the placement is the puzzle's unique solution.
func SolveFirst(p *Puzzle) error {
	m, candidates := buildMatrix(p)

	var solution []int32
	m.ExactCoverFunc(func(s []int32) bool {
		solution = append([]int32(nil), s...)
		return false
	})

	if solution == nil {
		return ErrNoSolution
	}
	applySolution(p, candidates, solution)
	return nil
}

// SolveWithOptions runs Solve (or SolveFirst, when opts.VerifyUnique is
// false) bounded by opts.TimeLimit. If the limit elapses first,
// SolveWithOptions returns ErrTimeout; the solve continues running in its
// own goroutine and will still mutate p if it completes afterward, since
// Go provides no way to forcibly abort another goroutine.
func SolveWithOptions(p *Puzzle, opts *SolverOptions) error {
	if opts == nil {
		opts = DefaultSolverOptions()
	}

	solve := SolveFirst
	if opts.VerifyUnique {
		solve = func(p *Puzzle) error { return solveUnique(p, opts.MaxSolutions) }
	}

	if opts.TimeLimit <= 0 {
		return solve(p)
	}

	done := make(chan error, 1)
	go func() { done <- solve(p) }()

	select {
	case err := <-done:
		return err
	case <-time.After(opts.TimeLimit):
		return ErrTimeout
	}
}

// CountSolutions returns the number of distinct exact covers of p's
// encoding, stopping early once max solutions have been found (max <= 0
// means no cap). It does not mutate p: the search runs against a cloned
// matrix, per the concurrency model's cloning primitive, so a caller can
// check uniqueness without disturbing a puzzle it may still want to solve
// afterward.
func CountSolutions(p *Puzzle, max int) int {
	m, _ := buildMatrix(p)
	return countSolutionsOn(m.Clone(), max)
}

// countSolutionsOn counts the exact covers of m, stopping early once max
// have been found (max <= 0 means no cap). It is shared by CountSolutions
// and solveUnique's concurrent uniqueness check.
func countSolutionsOn(m *dlx.Matrix, max int) int {
	count := 0
	m.ExactCoverFunc(func(solution []int32) bool {
		count++
		return max <= 0 || count < max
	})
	return count
}
