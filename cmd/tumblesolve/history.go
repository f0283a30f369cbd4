package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tumblesolve/internal/storage"
)

var flagHistoryLimit int

var historyCmd = &cobra.Command{
	Use:   "history [level-id]",
	Short: "Show recent solve results",
	Long: `Display recent solve attempts from the history database, optionally
filtered to one level.

Examples:
  tumblesolve history
  tumblesolve history spiral`,
	Args: cobra.MaximumNArgs(1),
	Run:  runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 20, "Maximum number of records to show")
}

func runHistory(cmd *cobra.Command, args []string) {
	cfg := appConfig()

	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening history database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	var records []storage.SolveRecord
	if len(args) == 1 {
		records, err = store.History(args[0], flagHistoryLimit)
	} else {
		records, err = store.Recent(flagHistoryLimit)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading history: %v\n", err)
		os.Exit(1)
	}

	if len(records) == 0 {
		fmt.Println("No solve history yet.")
		return
	}

	fmt.Printf("  %-20s  %-8s  %-6s  %-10s  %s\n", "Level", "Result", "Moves", "Duration", "When")
	for _, r := range records {
		result := "solved"
		if !r.Solved {
			result = "no-solve"
		}
		fmt.Printf("  %-20s  %-8s  %-6d  %-10s  %s\n",
			r.LevelID, result, r.MoveCount, r.Duration, r.CreatedAt.Format("2006-01-02 15:04"))
	}
}
