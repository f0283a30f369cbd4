package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tumblesolve/internal/board"
	"github.com/vovakirdan/tumblesolve/internal/config"
	"github.com/vovakirdan/tumblesolve/internal/levels"
	"github.com/vovakirdan/tumblesolve/internal/render"
	"github.com/vovakirdan/tumblesolve/internal/solver"
	"github.com/vovakirdan/tumblesolve/internal/storage"
)

var (
	flagSolveShow    bool
	flagSolveStats   bool
	flagSolveVerbose bool
)

var solveCmd = &cobra.Command{
	Use:   "solve <file>",
	Short: "Solve a puzzle and print the move sequence",
	Long: `Parse the puzzle file, search for a clearing sequence, and print it.
Moves are grouped by triplet. Exits with status 1 if the puzzle has no
solution.

Examples:
  tumblesolve solve puzzles/spiral.tsb
  tumblesolve solve puzzles/spiral.tsb --show
  tumblesolve solve puzzles/spiral.tsb --stats`,
	Args: cobra.ExactArgs(1),
	Run:  runSolve,
}

func init() {
	solveCmd.Flags().BoolVar(&flagSolveShow, "show", false, "Render the board after each move")
	solveCmd.Flags().BoolVar(&flagSolveStats, "stats", false, "Print solve duration and move count")
	solveCmd.Flags().BoolVarP(&flagSolveVerbose, "verbose", "v", false, "Log solve progress to stderr")
}

func runSolve(cmd *cobra.Command, args []string) {
	cfg := appConfig()
	lvl := mustLoadLevel(args[0])
	b := mustBoard(lvl)

	var logger *log.Logger
	if flagSolveVerbose {
		logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "tumblesolve"})
		logger.Info("puzzle loaded",
			"id", lvl.ID,
			"size", fmt.Sprintf("%dx%d", lvl.Width, lvl.Height),
			"removable", b.RemovableCount(),
			"lock", b.ColorLock(),
		)
	}

	start := time.Now()
	moves, ok := solver.Solve(b)
	dur := time.Since(start)

	if logger != nil {
		logger.Info("search finished", "solved", ok, "moves", len(moves), "duration", dur)
	}

	recordResult(cfg, lvl.ID, ok, moves, dur)

	if !ok {
		fmt.Println("No solution exists.")
		os.Exit(1)
	}

	display := config.MergeDisplay(cfg.DisplayRunes(), lvl.Display)
	if flagSolveShow {
		for _, m := range moves {
			p := m
			fmt.Print(render.Frame(b, render.Options{Highlight: &p, Display: display, NoColor: cfg.NoColor}))
			fmt.Println()
			b.ForceRemove(m)
		}
		fmt.Print(render.Frame(b, render.Options{Display: display, NoColor: cfg.NoColor}))
	} else {
		fmt.Printf("Solved in %d moves:\n", len(moves))
		for i := 0; i < len(moves); i += 3 {
			end := i + 3
			if end > len(moves) {
				end = len(moves)
			}
			fmt.Printf("  %d.", i/3+1)
			for _, m := range moves[i:end] {
				fmt.Printf(" %v", m)
			}
			fmt.Println()
		}
	}

	if flagSolveStats {
		fmt.Printf("%d moves in %s\n", len(moves), dur)
	}
}

// mustLoadLevel loads a puzzle file, reporting file-not-found and parse
// failures as distinct errors.
func mustLoadLevel(path string) levels.Level {
	lvl, err := levels.LoadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			fmt.Fprintf(os.Stderr, "Error: no such file: %s\n", path)
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
	return lvl
}

func mustBoard(lvl levels.Level) *board.Board {
	b, err := lvl.Board()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return b
}

// recordResult saves a solve attempt to the history database.
// Best-effort: a missing database is a warning, never a failure.
func recordResult(cfg config.Config, levelID string, solved bool, moves []board.Point, dur time.Duration) {
	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open history database: %v\n", err)
		return
	}
	defer store.Close()
	//nolint:errcheck // Best-effort history
	store.SaveResult(levelID, solved, moves, dur)
}
