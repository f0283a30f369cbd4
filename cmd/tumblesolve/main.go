// tumblesolve finds move sequences that fully clear Tumblestone-style
// tile-matching puzzles.
//
// Usage:
//
//	tumblesolve solve <file>     - Solve a puzzle and print the moves
//	tumblesolve hint <file>      - Step through a solution interactively
//	tumblesolve check <file>     - Validate a puzzle file and show the board
//	tumblesolve list [dir]       - List puzzles in the levels directory
//	tumblesolve history [id]     - Show recent solve results
//	tumblesolve serve            - Serve walkthroughs over SSH
//
// Global flags:
//
//	--config <path>  - Path to app config YAML
//	--db <path>      - Path to the history database
//	--no-color       - Disable ANSI styling
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tumblesolve/internal/config"
)

var (
	// Global flags
	flagConfig  string
	flagDBPath  string
	flagNoColor bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tumblesolve",
	Short: "Solver for Tumblestone-style tile-matching puzzles",
	Long: `tumblesolve computes a move sequence that fully clears a tile-matching
puzzle board, or proves that none exists. Stones are harvested from the
bottom of each column in same-color triplets; wild stones, toggles, and
survivors bend the rules.

Examples:
  tumblesolve solve puzzles/spiral.tsb
  tumblesolve hint puzzles/spiral.tsb
  tumblesolve check puzzles/spiral.tsb
  tumblesolve list ./puzzles
  tumblesolve serve --ssh :23235`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to app config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to history database (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable ANSI styling")

	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(hintCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(serveCmd)
}

// appConfig loads the config and applies global flag overrides.
func appConfig() config.Config {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if flagDBPath != "" {
		cfg.DBPath = flagDBPath
	}
	if flagNoColor {
		cfg.NoColor = true
	}
	return cfg
}
