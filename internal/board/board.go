package board

import (
	"fmt"
	"math/bits"
)

// Point is a board coordinate. X is the column, Y the row; the origin is
// the uppermost leftmost cell.
type Point struct {
	X, Y int
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Board is the mutable puzzle state. It is never copied during a solve:
// the solver mutates the single live instance through Remove and restores
// it exactly through Undo records, in strict LIFO order.
type Board struct {
	turn       uint32
	wildColors Color
	colorLock  bool
	width      int
	height     int
	grid       []Tile // row-major, index = y*width + x
	removable  int
}

// New builds a board from a row-major tile slice. It validates that the
// grid matches the declared dimensions and that the number of wild stones
// equals the number of set bits in the wild-color mask; both invariants
// are maintained by every later Remove/Undo pair.
func New(width, height int, grid []Tile, wildColors Color, colorLock bool) (*Board, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("board: invalid dimensions %dx%d", width, height)
	}
	if len(grid) != width*height {
		return nil, fmt.Errorf("board: grid has %d tiles, want %d (%dx%d)", len(grid), width*height, width, height)
	}
	wilds := 0
	removable := 0
	for _, t := range grid {
		if t.Kind == Wild {
			wilds++
		}
		if t.Removable() {
			removable++
		}
	}
	if wilds != bits.OnesCount32(uint32(wildColors)) {
		return nil, fmt.Errorf("board: %d wild stones but %d wild colors", wilds, bits.OnesCount32(uint32(wildColors)))
	}
	b := &Board{
		wildColors: wildColors,
		colorLock:  colorLock,
		width:      width,
		height:     height,
		grid:       grid,
		removable:  removable,
	}
	return b, nil
}

// Width returns the row stride of the board.
func (b *Board) Width() int { return b.width }

// Height returns the number of rows.
func (b *Board) Height() int { return b.height }

// Turn returns the current turn number: the count of net removals applied.
func (b *Board) Turn() uint32 { return b.turn }

// WildColors returns the mask of colors still claimable by wild stones.
func (b *Board) WildColors() Color { return b.wildColors }

// ColorLock reports the color-lock flag. It is carried as board metadata
// for display and is reserved: nothing in the removal rules consults it.
func (b *Board) ColorLock() bool { return b.colorLock }

// RemovableCount returns the number of directly removable stones. The
// board is solved when this reaches zero.
func (b *Board) RemovableCount() int { return b.removable }

func (b *Board) index(p Point) int {
	return p.Y*b.width + p.X
}

// TileAt returns the tile at p materialized for the current turn.
func (b *Board) TileAt(p Point) Tile {
	return b.grid[b.index(p)].ForTurn(b.turn)
}

// Undo reverses one Remove. It captures exactly the state the removal
// destroyed: the prior tile, the wild-color bit it consumed, and the
// survivors its cascade cleared. Records must be applied in reverse order
// of the removals that produced them; toggle phase and cascade bookkeeping
// are turn-relative, so out-of-order application corrupts the board.
type Undo struct {
	point     Point
	tile      Tile
	wildBit   Color
	survivors []Point
}

// Remove takes the stone at p and returns the record that reverses it.
//
// asserted must be Wildcard, or the stone's own color for an ordinary
// stone, or a color still present in the wild mask for a wild stone. The
// stone must be removable. Violations are contract bugs in the caller
// (the solver only requests moves from its own frontier), so they panic
// rather than return an error.
func (b *Board) Remove(p Point, asserted Color) Undo {
	t := b.grid[b.index(p)]
	if !t.ForTurn(b.turn).Removable() {
		panic(fmt.Sprintf("board: remove of non-removable tile at %v", p))
	}
	var wildBit Color
	switch t.Kind {
	case Ordinary:
		if asserted != Wildcard && asserted != t.Color {
			panic(fmt.Sprintf("board: asserted color %#x does not match stone %#x at %v", asserted, t.Color, p))
		}
	case Wild:
		if asserted != Wildcard {
			if b.wildColors&asserted == 0 {
				panic(fmt.Sprintf("board: asserted color %#x not in wild mask %#x at %v", asserted, b.wildColors, p))
			}
			b.wildColors &^= asserted
			wildBit = asserted
		}
	}
	b.grid[b.index(p)] = Tile{}
	b.turn++
	b.removable--
	return Undo{
		point:     p,
		tile:      t,
		wildBit:   wildBit,
		survivors: b.cascadeRow(p.Y),
	}
}

// Undo reverses a removal. Survivors come back first, then the removed
// stone, the wild bit, the removable count, and the turn.
func (b *Board) Undo(u Undo) {
	for _, sp := range u.survivors {
		b.grid[b.index(sp)] = Tile{Kind: Survivor}
	}
	b.grid[b.index(u.point)] = u.tile
	b.wildColors |= u.wildBit
	b.removable++
	b.turn--
}

// ForceRemove takes the stone at p without capturing an undo record or
// touching the wild mask. It exists for stepping through an already-found
// solution; using it mid-search would break reversibility.
func (b *Board) ForceRemove(p Point) {
	if !b.TileAt(p).Removable() {
		panic(fmt.Sprintf("board: force remove of non-removable tile at %v", p))
	}
	b.grid[b.index(p)] = Tile{}
	b.turn++
	b.removable--
	b.cascadeRow(p.Y)
}

// cascadeRow clears every survivor in row y once the row holds no
// removable stone, returning the cleared positions. Survivors were never
// counted as removable, so neither the turn nor the removable count moves.
func (b *Board) cascadeRow(y int) []Point {
	for x := 0; x < b.width; x++ {
		if b.grid[y*b.width+x].Removable() {
			return nil
		}
	}
	var cleared []Point
	for x := 0; x < b.width; x++ {
		if b.grid[y*b.width+x].Kind == Survivor {
			b.grid[y*b.width+x] = Tile{}
			cleared = append(cleared, Point{X: x, Y: y})
		}
	}
	return cleared
}

// Equal reports whether two boards have identical dimensions, counters,
// masks, and tiles. Used by tests to verify undo exactness.
func (b *Board) Equal(other *Board) bool {
	if b.width != other.width || b.height != other.height ||
		b.turn != other.turn || b.wildColors != other.wildColors ||
		b.colorLock != other.colorLock || b.removable != other.removable {
		return false
	}
	for i, t := range b.grid {
		if t != other.grid[i] {
			return false
		}
	}
	return true
}

// Clone returns a deep copy of the board. The solver never clones; this
// exists so tests and the walkthrough can keep a pristine reference.
func (b *Board) Clone() *Board {
	grid := make([]Tile, len(b.grid))
	copy(grid, b.grid)
	c := *b
	c.grid = grid
	return &c
}

// CountRemovable recomputes the removable count from scratch. The
// incremental counter must always agree with it.
func (b *Board) CountRemovable() int {
	n := 0
	for _, t := range b.grid {
		if t.Removable() {
			n++
		}
	}
	return n
}
