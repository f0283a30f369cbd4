package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tumblesolve/internal/config"
	"github.com/vovakirdan/tumblesolve/internal/solver"
	"github.com/vovakirdan/tumblesolve/internal/tui"
)

var hintCmd = &cobra.Command{
	Use:   "hint <file>",
	Short: "Step through a solution interactively",
	Long: `Solve the puzzle, then present the solution one move at a time: the
board is drawn with the next stone highlighted, and each press of Enter
applies the move.

Examples:
  tumblesolve hint puzzles/spiral.tsb`,
	Args: cobra.ExactArgs(1),
	Run:  runHint,
}

func runHint(cmd *cobra.Command, args []string) {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "Error: hint needs an interactive terminal; use 'solve' instead")
		os.Exit(1)
	}

	cfg := appConfig()
	lvl := mustLoadLevel(args[0])
	b := mustBoard(lvl)

	start := time.Now()
	moves, ok := solver.Solve(b)
	recordResult(cfg, lvl.ID, ok, moves, time.Since(start))

	if !ok {
		fmt.Println("No solution exists.")
		os.Exit(1)
	}

	title := lvl.Name
	if title == "" {
		title = lvl.ID
	}
	display := config.MergeDisplay(cfg.DisplayRunes(), lvl.Display)
	if err := tui.RunWalkthrough(b, title, moves, display, cfg.NoColor); err != nil {
		fmt.Fprintf(os.Stderr, "Error running walkthrough: %v\n", err)
		os.Exit(1)
	}
}
