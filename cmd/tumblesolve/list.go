package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tumblesolve/internal/levels"
)

var listCmd = &cobra.Command{
	Use:   "list [dir]",
	Short: "List puzzles in the levels directory",
	Long: `Shows all puzzle files found under the levels directory (from config,
or the given directory).

Examples:
  tumblesolve list
  tumblesolve list ./puzzles`,
	Args: cobra.MaximumNArgs(1),
	Run:  runList,
}

func runList(cmd *cobra.Command, args []string) {
	cfg := appConfig()
	root := cfg.LevelsDir
	if len(args) == 1 {
		root = args[0]
	}

	lvls, err := levels.NewLoader(root).LoadAll()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if len(lvls) == 0 {
		fmt.Printf("No puzzles found under %s.\n", root)
		return
	}

	maxIDLen := 2 // "ID" header
	for _, l := range lvls {
		if len(l.ID) > maxIDLen {
			maxIDLen = len(l.ID)
		}
	}

	fmt.Printf("  %-*s  %-7s  %s\n", maxIDLen, "ID", "Size", "File")
	fmt.Printf("  %-*s  %-7s  %s\n", maxIDLen, "--", "----", "----")
	for _, l := range lvls {
		fmt.Printf("  %-*s  %-7s  %s\n", maxIDLen, l.ID, fmt.Sprintf("%dx%d", l.Width, l.Height), l.FilePath)
	}

	fmt.Println()
	fmt.Println("Run 'tumblesolve solve <file>' to solve a puzzle.")
}
