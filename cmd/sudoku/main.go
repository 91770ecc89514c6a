package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/gridwise/dlxsudoku/internal/puzzle"
	"github.com/gridwise/dlxsudoku/internal/puzzle/bruteforce"
	"github.com/mattn/go-isatty"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML solver-options file")
	compare := flag.Bool("compare", false, "also solve with the brute-force baseline and report both timings")
	verify := flag.Bool("verify", false, "with -compare, fail if the two solvers disagree")
	flag.Parse()

	opts := puzzle.DefaultSolverOptions()
	if *configPath != "" {
		loaded, err := puzzle.LoadSolverOptions(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error loading %s: %v\n", *configPath, err)
			os.Exit(1)
		}
		opts = loaded
	}

	if isStdinTTY() {
		fmt.Println("Enter initial board as 9 lines of 9 characters.")
		fmt.Println("Use any character other than the digits 1-9 for empty cells.")
		fmt.Println("(Ctrl+D to finish on Unix/Linux, Ctrl+Z then Enter on Windows):")
	}

	p := puzzle.PuzzleFromFile(os.Stdin)

	if *compare {
		runCompare(p, *verify)
		return
	}

	start := time.Now()
	err := puzzle.SolveWithOptions(p, opts)
	elapsed := time.Since(start)

	switch {
	case err == nil:
		color.HiWhite("\nSolution (%.3fms):", msFloat(elapsed))
	case err == puzzle.ErrNoSolution || err == puzzle.ErrMultipleSolutions:
		fmt.Fprintf(os.Stderr, "\n%v\n", err)
	default:
		fmt.Fprintf(os.Stderr, "\nerror: %v\n", err)
	}

	p.Print()
	if !p.IsSolved() {
		fmt.Println()
		p.PrintUnsolvedCounts()
	}
}

// runCompare solves the same puzzle with both the DLX engine and the
// independent brute-force baseline, running them concurrently (they
// touch entirely separate Puzzle copies, so nothing needs to
// synchronize beyond waiting for both to finish) and reporting each
// one's wall-clock time.
func runCompare(p *puzzle.Puzzle, verify bool) {
	dlxPuzzle := clonePuzzle(p)
	bfPuzzle := clonePuzzle(p)

	var dlxErr, bfErr error
	var dlxElapsed, bfElapsed time.Duration
	done := make(chan struct{}, 2)

	go func() {
		start := time.Now()
		dlxErr = puzzle.Solve(dlxPuzzle)
		dlxElapsed = time.Since(start)
		done <- struct{}{}
	}()
	go func() {
		start := time.Now()
		bfErr = bruteforce.Solve(bfPuzzle)
		bfElapsed = time.Since(start)
		done <- struct{}{}
	}()
	<-done
	<-done

	fmt.Printf("%s %.3fms (err=%v)\n", color.HiBlueString("dlx:        "), msFloat(dlxElapsed), dlxErr)
	fmt.Printf("%s %.3fms (err=%v)\n", color.HiBlueString("bruteforce: "), msFloat(bfElapsed), bfErr)

	if dlxErr != nil {
		color.HiWhite("\ndlx result:")
		dlxPuzzle.Print()
	} else {
		color.HiWhite("\nSolution:")
		dlxPuzzle.Print()
	}

	if !verify {
		return
	}
	if dlxErr != nil || bfErr != nil {
		fmt.Fprintln(os.Stderr, color.HiRedString("verify failed: one or both solvers returned an error"))
		os.Exit(1)
	}
	if !puzzlesAgree(dlxPuzzle, bfPuzzle) {
		fmt.Fprintln(os.Stderr, color.HiRedString("verify failed: dlx and bruteforce produced different grids"))
		os.Exit(1)
	}
	color.HiGreen("verify: dlx and bruteforce agree")
}

func clonePuzzle(p *puzzle.Puzzle) *puzzle.Puzzle {
	clone := puzzle.NewPuzzle()
	for r := range 9 {
		for c := range 9 {
			cell := p.Grid[r][c]
			if cell.IsGiven {
				clone.GivenValue(r, c, int(cell.Value()))
			}
		}
	}
	return clone
}

func puzzlesAgree(a, b *puzzle.Puzzle) bool {
	for r := range 9 {
		for c := range 9 {
			if a.Grid[r][c].Value() != b.Grid[r][c].Value() {
				return false
			}
		}
	}
	return true
}

func msFloat(d time.Duration) float64 {
	return float64(d.Nanoseconds()) / 1e6
}

func isStdinTTY() bool {
	return isTerminal(os.Stdin)
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
