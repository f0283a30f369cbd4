// Package formats provides pluggable puzzle file format parsers. Every
// format parses into the same intermediate Level, which owns glyph
// classification, color-bit allocation, and validation.
package formats

import (
	"errors"
	"fmt"
	"math/bits"
	"unicode"

	"github.com/vovakirdan/tumblesolve/internal/board"
)

// Parse and validation failures. Each is a distinct kind so callers can
// report them precisely; nothing is ever silently defaulted.
var (
	ErrUnknownProperty  = errors.New("unknown legend property")
	ErrBadProperty      = errors.New("invalid property value")
	ErrMissingWidth     = errors.New("missing or invalid board width")
	ErrRowWidth         = errors.New("grid row wider than board")
	ErrEmptyGrid        = errors.New("grid has no rows")
	ErrBadGlyph         = errors.New("unprintable tile glyph")
	ErrTooManyColors    = errors.New("more than 32 distinct colors")
	ErrUnknownWildGlyph = errors.New("wild glyph not present on the board")
	ErrWildMismatch     = errors.New("wild stone count does not match wild color count")
)

// Level is a parsed puzzle ready to be built into a board.
//
// Grid glyph vocabulary: space or '.' is empty, '*' is a wild stone, 'O'
// an initially-open toggle, 'X' an initially-closed toggle, '&' a
// survivor. Any other printable rune is an ordinary stone; distinct
// glyphs get distinct color bits in first-seen order.
type Level struct {
	ID       string
	Name     string
	Width    int
	Rows     []string
	Wild     string // ordinary glyphs whose colors seed the wild mask
	Lock     bool
	Display  map[rune]int // glyph -> ANSI 256 color override
	Metadata map[string]string
}

// Height returns the number of grid rows.
func (l *Level) Height() int {
	return len(l.Rows)
}

// Board validates the level and builds the playable board. Rows shorter
// than the declared width are padded with empty tiles on the right;
// longer rows are an error.
func (l *Level) Board() (*board.Board, error) {
	if l.Width <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrMissingWidth, l.Width)
	}
	if len(l.Rows) == 0 {
		return nil, ErrEmptyGrid
	}

	colors := make(map[rune]board.Color)
	grid := make([]board.Tile, 0, l.Width*len(l.Rows))
	wilds := 0
	for y, row := range l.Rows {
		rs := []rune(row)
		if len(rs) > l.Width {
			return nil, fmt.Errorf("%w: row %d has %d glyphs, width is %d", ErrRowWidth, y, len(rs), l.Width)
		}
		for x := 0; x < l.Width; x++ {
			var r rune = ' '
			if x < len(rs) {
				r = rs[x]
			}
			t, err := classify(r, colors)
			if err != nil {
				return nil, fmt.Errorf("%w at (%d,%d)", err, x, y)
			}
			if t.Kind == board.Wild {
				wilds++
			}
			grid = append(grid, t)
		}
	}

	var wildMask board.Color
	for _, g := range l.Wild {
		bit, ok := colors[g]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownWildGlyph, g)
		}
		wildMask |= bit
	}
	if wilds != bits.OnesCount32(uint32(wildMask)) {
		return nil, fmt.Errorf("%w: %d wild stones, %d wild colors", ErrWildMismatch, wilds, bits.OnesCount32(uint32(wildMask)))
	}

	return board.New(l.Width, len(l.Rows), grid, wildMask, l.Lock)
}

// classify maps a grid glyph to a tile, allocating a color bit for
// ordinary glyphs seen for the first time.
func classify(r rune, colors map[rune]board.Color) (board.Tile, error) {
	switch r {
	case ' ', '.':
		return board.Tile{}, nil
	case '*':
		return board.Tile{Kind: board.Wild}, nil
	case '&':
		return board.Tile{Kind: board.Survivor}, nil
	case 'O':
		return board.Tile{Kind: board.Toggle, Phase: 0}, nil
	case 'X':
		return board.Tile{Kind: board.Toggle, Phase: 1}, nil
	}
	if !unicode.IsPrint(r) {
		return board.Tile{}, fmt.Errorf("%w: %q", ErrBadGlyph, r)
	}
	bit, ok := colors[r]
	if !ok {
		if len(colors) >= 32 {
			return board.Tile{}, ErrTooManyColors
		}
		bit = board.Color(1) << uint(len(colors))
		colors[r] = bit
	}
	return board.Tile{Kind: board.Ordinary, Glyph: r, Color: bit}, nil
}

// FormatExtensions returns the supported puzzle file extensions.
func FormatExtensions() []string {
	return []string{".tsb", ".yaml", ".yml"}
}
