package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tumblesolve/internal/board"
	"github.com/vovakirdan/tumblesolve/internal/levels/formats"
)

func testBoard(t *testing.T) *board.Board {
	t.Helper()
	lvl := formats.Level{Width: 1, Rows: []string{"a", "a", "a"}}
	b, err := lvl.Board()
	if err != nil {
		t.Fatalf("Board() failed: %v", err)
	}
	return b
}

func pressEnter(t *testing.T, m tea.Model) tea.Model {
	t.Helper()
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	return next
}

func TestWalkthroughStepsThroughMoves(t *testing.T) {
	b := testBoard(t)
	moves := []board.Point{{X: 0, Y: 2}, {X: 0, Y: 1}, {X: 0, Y: 0}}

	var m tea.Model = NewWalkthroughModel(b, "Test", moves, nil, true)
	if m.(WalkthroughModel).Done() {
		t.Fatal("Model should not start done with moves pending")
	}
	if !strings.Contains(m.View(), "Move 1 of 3") {
		t.Errorf("Initial view missing move counter:\n%s", m.View())
	}

	m = pressEnter(t, m)
	if b.TileAt(board.Point{X: 0, Y: 2}).Kind != board.Empty {
		t.Error("First acknowledgment should apply the first move")
	}
	if !strings.Contains(m.View(), "Move 2 of 3") {
		t.Errorf("View after one step:\n%s", m.View())
	}

	m = pressEnter(t, m)
	m = pressEnter(t, m)
	if !m.(WalkthroughModel).Done() {
		t.Error("Model should be done after the last move")
	}
	if b.RemovableCount() != 0 {
		t.Errorf("RemovableCount = %d, want 0 after the walkthrough", b.RemovableCount())
	}
	if !strings.Contains(m.View(), "cleared") {
		t.Errorf("Done view missing completion message:\n%s", m.View())
	}
}

func TestWalkthroughQuit(t *testing.T) {
	b := testBoard(t)
	m := NewWalkthroughModel(b, "Test", []board.Point{{X: 0, Y: 2}}, nil, true)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("Quit key should return tea.Quit")
	}
	if next.View() != "" {
		t.Error("Quitting model should render nothing")
	}
	if b.TileAt(board.Point{X: 0, Y: 2}).Kind != board.Ordinary {
		t.Error("Quit must not apply moves")
	}
}

func TestWalkthroughEmptySolution(t *testing.T) {
	b := testBoard(t)
	m := NewWalkthroughModel(b, "Test", nil, nil, true)
	if !m.Done() {
		t.Error("Empty move list should start done")
	}
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Error("Acknowledging a done walkthrough should quit")
	}
}
