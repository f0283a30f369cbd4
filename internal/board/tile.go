// Package board implements the Tumblestone board: a rectangular grid of
// stones, a turn counter, and the reversible removal protocol the solver
// drives. It contains no external dependencies to keep the game logic pure
// and testable.
package board

// Color is a bit mask identifying a stone color. Ordinary stones carry
// exactly one set bit; the zero value is the wildcard (no color asserted).
// The representation caps a board at 32 distinct colors.
type Color uint32

// Wildcard is the sentinel color meaning "no color asserted".
const Wildcard Color = 0

// Kind discriminates the tile variants.
type Kind uint8

const (
	Empty    Kind = iota // no stone
	Ordinary             // colored stone, directly removable
	Survivor             // cleared only by row cascade, never directly
	Wild                 // matches any color still in the board's wild mask
	Toggle               // alternates open/closed with turn parity, never removable
)

// Tile is a tagged variant. Only the fields relevant to its Kind are
// meaningful: Glyph and Color for Ordinary, Phase for Toggle.
type Tile struct {
	Kind  Kind
	Glyph rune   // display rune for ordinary stones
	Color Color  // single set bit for ordinary stones
	Phase uint32 // toggle phase; even is open, odd is closed
}

// Removable reports whether the tile can be taken directly. Toggles and
// survivors are only ever cleared indirectly, so this does not depend on
// the turn.
func (t Tile) Removable() bool {
	return t.Kind == Ordinary || t.Kind == Wild
}

// ForTurn materializes the tile for the given turn. Only toggles are
// turn-dependent: their stored phase advances by the turn count.
func (t Tile) ForTurn(turn uint32) Tile {
	if t.Kind == Toggle {
		t.Phase += turn
	}
	return t
}

// Open reports whether a materialized toggle currently permits access to
// the stones above it. Meaningless for other kinds.
func (t Tile) Open() bool {
	return t.Phase&1 == 0
}

// Rune returns the display rune for a materialized tile.
func (t Tile) Rune() rune {
	switch t.Kind {
	case Ordinary:
		return t.Glyph
	case Survivor:
		return '&'
	case Wild:
		return '*'
	case Toggle:
		if t.Open() {
			return 'O'
		}
		return 'X'
	default:
		return ' '
	}
}
