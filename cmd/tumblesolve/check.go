package main

import (
	"fmt"
	"math/bits"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tumblesolve/internal/board"
	"github.com/vovakirdan/tumblesolve/internal/config"
	"github.com/vovakirdan/tumblesolve/internal/render"
)

var checkCmd = &cobra.Command{
	Use:   "check <file>",
	Short: "Validate a puzzle file and show the board",
	Long: `Parse and validate the puzzle file without solving it, then print its
properties and the rendered starting board.

Examples:
  tumblesolve check puzzles/spiral.tsb`,
	Args: cobra.ExactArgs(1),
	Run:  runCheck,
}

func runCheck(cmd *cobra.Command, args []string) {
	cfg := appConfig()
	lvl := mustLoadLevel(args[0])
	b := mustBoard(lvl)

	name := lvl.Name
	if name == "" {
		name = lvl.ID
	}
	fmt.Printf("%s\n", name)
	fmt.Printf("  size        %dx%d\n", b.Width(), b.Height())
	fmt.Printf("  colors      %d\n", countColors(b))
	fmt.Printf("  wild colors %d\n", bits.OnesCount32(uint32(b.WildColors())))
	fmt.Printf("  removable   %d\n", b.RemovableCount())
	fmt.Printf("  color lock  %v\n", b.ColorLock())
	fmt.Println()

	display := config.MergeDisplay(cfg.DisplayRunes(), lvl.Display)
	fmt.Print(render.Frame(b, render.Options{Display: display, NoColor: cfg.NoColor}))
}

func countColors(b *board.Board) int {
	var mask board.Color
	for y := 0; y < b.Height(); y++ {
		for x := 0; x < b.Width(); x++ {
			t := b.TileAt(board.Point{X: x, Y: y})
			if t.Kind == board.Ordinary {
				mask |= t.Color
			}
		}
	}
	return bits.OnesCount32(uint32(mask))
}
