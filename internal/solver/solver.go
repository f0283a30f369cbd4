// Package solver finds a full-clear move sequence for a Tumblestone board
// by depth-first backtracking over the live board state. It owns the board
// exclusively for the duration of a Solve call and restores it exactly
// before returning.
package solver

import (
	"github.com/vovakirdan/tumblesolve/internal/board"
)

// Solve searches for a sequence of removals that clears every removable
// stone from the board. It returns the moves in play order and true on
// success, or nil and false if no solution exists. The board is left in
// its original state either way.
//
// Moves are consumed in triplets: each group of three must share a single
// ordinary color, with at most one wild substitution per group. A search
// result whose length is not a multiple of three indicates a structural
// inconsistency and is rejected.
func Solve(b *board.Board) ([]board.Point, bool) {
	moves := make([]board.Point, 0, b.RemovableCount())
	if solve(b, &moves, board.Wildcard, true) && len(moves)%3 == 0 {
		return moves, true
	}
	return nil, false
}

// solve tries every frontier move under the active color filter and wild
// permissiveness, recursing after each tentative removal and undoing it
// before trying the next. Success propagates up with the board already
// restored at every level; the move list keeps the winning sequence.
func solve(b *board.Board, moves *[]board.Point, color board.Color, allowWild bool) bool {
	if b.RemovableCount() == 0 {
		return true
	}
	for _, p := range Frontier(b, color, allowWild) {
		t := b.TileAt(p)
		*moves = append(*moves, p)
		u := b.Remove(p, color)

		// The filter for the next move depends on whether this one
		// finished a triplet, and otherwise on what was just removed:
		// an ordinary stone pins the triplet to its color, a wild
		// spends the one substitution the triplet is allowed.
		nextColor, nextWild := color, allowWild
		switch {
		case b.Turn()%3 == 0:
			nextColor, nextWild = board.Wildcard, true
		case t.Kind == board.Ordinary:
			nextColor = t.Color
		default:
			nextWild = false
		}

		if solve(b, moves, nextColor, nextWild) {
			b.Undo(u)
			return true
		}
		b.Undo(u)
		*moves = (*moves)[:len(*moves)-1]
	}
	return false
}

// Frontier answers the coordinates currently eligible for removal under
// the given color filter and wild permissiveness. Columns are scanned
// left to right and each column bottom to top, stopping at the first
// obstruction: stones above an unremoved stone or a closed toggle cannot
// be reached this turn. The resulting order fixes which solution the
// search finds first.
func Frontier(b *board.Board, color board.Color, allowWild bool) []board.Point {
	var pts []board.Point
	for x := 0; x < b.Width(); x++ {
		for y := b.Height() - 1; y >= 0; y-- {
			p := board.Point{X: x, Y: y}
			t := b.TileAt(p)
			blocked := false
			switch t.Kind {
			case board.Empty, board.Survivor:
				// Neither is an obstruction; keep scanning upward.
				// Survivors leave only through the row cascade.
			case board.Ordinary:
				if color == board.Wildcard || t.Color == color {
					pts = append(pts, p)
				}
				blocked = true
			case board.Wild:
				if allowWild && (color == board.Wildcard || color&b.WildColors() != 0) {
					pts = append(pts, p)
				}
				blocked = true
			case board.Toggle:
				blocked = !t.Open()
			}
			if blocked {
				break
			}
		}
	}
	return pts
}
