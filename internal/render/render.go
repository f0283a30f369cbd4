// Package render draws a board as a box-framed, colored text grid. It
// reads the board only through TileAt and Turn, so it never observes
// mutation state.
package render

import (
	"fmt"
	"math/bits"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tumblesolve/internal/board"
)

// palette assigns an ANSI 256 color code to each ordinary color bit, in
// allocation order. Boards may use up to 32 colors; codes repeat after
// the palette is exhausted.
var palette = []string{
	"1", "2", "3", "4", "5", "6", "9", "10",
	"11", "12", "13", "14", "208", "129", "39", "118",
	"201", "94", "130", "171", "45", "220", "160", "82",
	"27", "199", "214", "51", "141", "88", "107", "183",
}

var (
	wildStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true)
	toggleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	survivorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("208"))
	frameStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	turnStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	highlightStyle = lipgloss.NewStyle().Reverse(true).Bold(true)
)

// Options control a single frame.
type Options struct {
	// Highlight marks one tile with inverse video and annotates its
	// coordinate under the frame. Nil means no highlight.
	Highlight *board.Point

	// Display overrides the palette color for specific ordinary glyphs
	// (ANSI 256 codes), as declared by level files or app config.
	Display map[rune]int

	// NoColor renders bare runes with no styling.
	NoColor bool
}

// Frame renders the board as a box-drawn grid followed by a turn line
// and, when a highlight is set, the highlighted coordinate.
func Frame(b *board.Board, opts Options) string {
	var sb strings.Builder

	horiz := strings.Repeat("─", b.Width())
	sb.WriteString(styled(frameStyle, "┌"+horiz+"┐", opts.NoColor))
	sb.WriteByte('\n')

	for y := 0; y < b.Height(); y++ {
		sb.WriteString(styled(frameStyle, "│", opts.NoColor))
		for x := 0; x < b.Width(); x++ {
			p := board.Point{X: x, Y: y}
			t := b.TileAt(p)
			cell := string(t.Rune())
			if opts.NoColor {
				sb.WriteString(cell)
				continue
			}
			if opts.Highlight != nil && *opts.Highlight == p {
				sb.WriteString(highlightStyle.Render(cell))
				continue
			}
			sb.WriteString(tileStyle(t, opts.Display).Render(cell))
		}
		sb.WriteString(styled(frameStyle, "│", opts.NoColor))
		sb.WriteByte('\n')
	}

	sb.WriteString(styled(frameStyle, "└"+horiz+"┘", opts.NoColor))
	sb.WriteByte('\n')

	turn := fmt.Sprintf("Turn %d", b.Turn())
	if opts.Highlight != nil {
		turn += fmt.Sprintf("  next %v", *opts.Highlight)
	}
	sb.WriteString(styled(turnStyle, turn, opts.NoColor))
	sb.WriteByte('\n')

	return sb.String()
}

// tileStyle picks the style for a materialized tile.
func tileStyle(t board.Tile, display map[rune]int) lipgloss.Style {
	switch t.Kind {
	case board.Ordinary:
		if code, ok := display[t.Glyph]; ok {
			return lipgloss.NewStyle().Foreground(lipgloss.Color(strconv.Itoa(code)))
		}
		idx := bits.TrailingZeros32(uint32(t.Color)) % len(palette)
		return lipgloss.NewStyle().Foreground(lipgloss.Color(palette[idx]))
	case board.Wild:
		return wildStyle
	case board.Survivor:
		return survivorStyle
	case board.Toggle:
		return toggleStyle
	default:
		return lipgloss.NewStyle()
	}
}

func styled(s lipgloss.Style, text string, noColor bool) string {
	if noColor {
		return text
	}
	return s.Render(text)
}
