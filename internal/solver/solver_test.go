package solver

import (
	"testing"

	"github.com/vovakirdan/tumblesolve/internal/board"
	"github.com/vovakirdan/tumblesolve/internal/levels/formats"
)

// mustBoard builds a board from glyph rows through the level format,
// which uses the same vocabulary the puzzle files do.
func mustBoard(t *testing.T, wild string, rows ...string) *board.Board {
	t.Helper()
	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}
	lvl := formats.Level{Width: width, Rows: rows, Wild: wild}
	b, err := lvl.Board()
	if err != nil {
		t.Fatalf("Board() failed: %v", err)
	}
	return b
}

func TestSolveSingleTriplet(t *testing.T) {
	b := mustBoard(t, "",
		"a",
		"a",
		"a",
	)
	moves, ok := Solve(b)
	if !ok {
		t.Fatal("Expected a solution")
	}
	if len(moves) != 3 {
		t.Fatalf("Solution length = %d, want 3", len(moves))
	}
	// Column harvested bottom-up.
	want := []board.Point{{X: 0, Y: 2}, {X: 0, Y: 1}, {X: 0, Y: 0}}
	for i, p := range moves {
		if p != want[i] {
			t.Errorf("moves[%d] = %v, want %v", i, p, want[i])
		}
	}
}

func TestSolveRestoresBoard(t *testing.T) {
	b := mustBoard(t, "",
		"ab",
		"ab",
		"ab",
	)
	pristine := b.Clone()
	if _, ok := Solve(b); !ok {
		t.Fatal("Expected a solution")
	}
	if !b.Equal(pristine) {
		t.Error("Solve must leave the board in its original state on success")
	}

	unsolvable := mustBoard(t, "",
		"a",
		"b",
		"a",
	)
	pristine = unsolvable.Clone()
	if _, ok := Solve(unsolvable); ok {
		t.Fatal("Expected no solution")
	}
	if !unsolvable.Equal(pristine) {
		t.Error("Solve must leave the board in its original state on failure")
	}
}

func TestSolveUnsolvableLoneColor(t *testing.T) {
	// Color b appears once; it can never complete a triplet.
	b := mustBoard(t, "",
		"ab",
		"aa",
	)
	if _, ok := Solve(b); ok {
		t.Error("Expected no solution for a lone off-color stone")
	}
}

func TestSolveTripletValidity(t *testing.T) {
	b := mustBoard(t, "a",
		"abc",
		"abc",
		"*bc",
	)
	pristine := b.Clone()
	moves, ok := Solve(b)
	if !ok {
		t.Fatal("Expected a solution")
	}
	if len(moves)%3 != 0 {
		t.Fatalf("Solution length %d not a multiple of three", len(moves))
	}

	// Stones never move, so the pristine board tells us what each move
	// removed. Each triplet must share one color with at most one wild.
	for i := 0; i < len(moves); i += 3 {
		var color board.Color
		wilds := 0
		for _, p := range moves[i : i+3] {
			tile := pristine.TileAt(p)
			switch tile.Kind {
			case board.Ordinary:
				if color == board.Wildcard {
					color = tile.Color
				} else if tile.Color != color {
					t.Errorf("Triplet %d mixes colors", i/3)
				}
			case board.Wild:
				wilds++
			default:
				t.Errorf("Triplet %d removes a non-removable tile at %v", i/3, p)
			}
		}
		if wilds > 1 {
			t.Errorf("Triplet %d uses %d wilds, max is 1", i/3, wilds)
		}
	}
}

func TestSolveWildConsumption(t *testing.T) {
	b := mustBoard(t, "a",
		"a",
		"a",
		"*",
	)
	moves, ok := Solve(b)
	if !ok {
		t.Fatal("Expected a solution using the wild stone")
	}
	if len(moves) != 3 {
		t.Fatalf("Solution length = %d, want 3", len(moves))
	}
}

func TestSolveSurvivorRow(t *testing.T) {
	b := mustBoard(t, "",
		"a&a",
		"a..",
	)
	moves, ok := Solve(b)
	if !ok {
		t.Fatal("Expected a solution; the survivor cascades away")
	}
	if len(moves) != 3 {
		t.Fatalf("Solution length = %d, want 3", len(moves))
	}
}

func TestSolveToggleBoard(t *testing.T) {
	// The open toggle closes on odd turns, so the column must be taken
	// in an order that lines the stones up with its open phases.
	b := mustBoard(t, "",
		"a",
		"O",
		"a",
		"a",
	)
	moves, ok := Solve(b)
	if !ok {
		t.Fatal("Expected a solution")
	}
	if len(moves) != 3 {
		t.Errorf("Solution length = %d, want 3", len(moves))
	}

	// The same column with the opposite initial phase traps the top
	// stone behind a closed toggle on every turn it becomes reachable.
	blocked := mustBoard(t, "",
		"a",
		"X",
		"a",
		"a",
	)
	if _, ok := Solve(blocked); ok {
		t.Error("Expected no solution with the opposite toggle phase")
	}
}

func TestFrontierToggleBlocking(t *testing.T) {
	// Column bottom-to-top: ordinary, closed toggle, ordinary. Only the
	// bottom stone is reachable until the toggle opens.
	b := mustBoard(t, "",
		"a",
		"X",
		"a",
	)
	pts := Frontier(b, board.Wildcard, true)
	if len(pts) != 1 || pts[0] != (board.Point{X: 0, Y: 2}) {
		t.Fatalf("Frontier = %v, want only (0,2)", pts)
	}

	// After a removal the toggle opens and the upper stone is exposed.
	u := b.Remove(board.Point{X: 0, Y: 2}, board.Wildcard)
	pts = Frontier(b, board.Wildcard, true)
	if len(pts) != 1 || pts[0] != (board.Point{X: 0, Y: 0}) {
		t.Errorf("Frontier after toggle opens = %v, want only (0,0)", pts)
	}
	b.Undo(u)
}

func TestFrontierOpenTogglePassThrough(t *testing.T) {
	b := mustBoard(t, "",
		"a",
		"O",
	)
	pts := Frontier(b, board.Wildcard, true)
	if len(pts) != 1 || pts[0] != (board.Point{X: 0, Y: 0}) {
		t.Errorf("Frontier = %v, want the stone above the open toggle", pts)
	}
}

func TestFrontierColorFilter(t *testing.T) {
	b := mustBoard(t, "",
		"ab",
	)
	aColor := b.TileAt(board.Point{X: 0, Y: 0}).Color

	pts := Frontier(b, aColor, true)
	if len(pts) != 1 || pts[0] != (board.Point{X: 0, Y: 0}) {
		t.Errorf("Frontier with color filter = %v, want only the matching stone", pts)
	}

	// A mismatched stone is ineligible but still blocks its column.
	pts = Frontier(b, board.Wildcard, true)
	if len(pts) != 2 {
		t.Errorf("Wildcard frontier = %v, want both stones", pts)
	}
}

func TestFrontierWildRules(t *testing.T) {
	b := mustBoard(t, "a",
		"a.",
		"*a",
	)
	aColor := b.TileAt(board.Point{X: 0, Y: 0}).Color

	// Wild eligible under wildcard filter.
	pts := Frontier(b, board.Wildcard, true)
	if len(pts) != 2 {
		t.Fatalf("Frontier = %v, want wild and ordinary", pts)
	}

	// Wild ineligible once the triplet already used one, and it still
	// blocks its column.
	pts = Frontier(b, board.Wildcard, false)
	if len(pts) != 1 || pts[0] != (board.Point{X: 1, Y: 1}) {
		t.Errorf("Frontier without wilds = %v, want only the ordinary stone", pts)
	}

	// Wild eligible for a color only while that color is in the mask.
	pts = Frontier(b, aColor, true)
	if len(pts) != 2 {
		t.Errorf("Frontier for color in mask = %v, want wild and ordinary", pts)
	}

	u := b.Remove(board.Point{X: 0, Y: 1}, aColor) // commits the wild, clears the bit
	pts = Frontier(b, aColor, true)
	if len(pts) != 2 || pts[0] != (board.Point{X: 0, Y: 0}) {
		t.Errorf("Frontier after mask drained = %v", pts)
	}
	b.Undo(u)
}
