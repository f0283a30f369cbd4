// Package tui provides the interactive walkthrough and the SSH serving
// front end for solved puzzles.
package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tumblesolve/internal/board"
	"github.com/vovakirdan/tumblesolve/internal/render"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	doneStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
)

// WalkthroughKeyMap defines the key bindings for stepping through a
// solution.
type WalkthroughKeyMap struct {
	Next key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k WalkthroughKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k WalkthroughKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Next, k.Quit}}
}

// DefaultWalkthroughKeyMap returns default key bindings.
func DefaultWalkthroughKeyMap() WalkthroughKeyMap {
	return WalkthroughKeyMap{
		Next: key.NewBinding(
			key.WithKeys("enter", " ", "n"),
			key.WithHelp("enter", "next hint"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// WalkthroughModel is the Bubble Tea model that presents a found solution
// one move at a time: the board is rendered with the next move
// highlighted, and each acknowledgment applies it irreversibly.
type WalkthroughModel struct {
	board    *board.Board
	title    string
	moves    []board.Point
	step     int
	display  map[rune]int
	noColor  bool
	keys     WalkthroughKeyMap
	help     help.Model
	done     bool
	quitting bool
}

// NewWalkthroughModel creates a walkthrough over a solved board.
func NewWalkthroughModel(b *board.Board, title string, moves []board.Point, display map[rune]int, noColor bool) WalkthroughModel {
	return WalkthroughModel{
		board:   b,
		title:   title,
		moves:   moves,
		display: display,
		noColor: noColor,
		keys:    DefaultWalkthroughKeyMap(),
		help:    help.New(),
		done:    len(moves) == 0,
	}
}

// Init implements tea.Model.
func (m WalkthroughModel) Init() tea.Cmd {
	return nil
}

// Update advances the walkthrough on acknowledgment.
func (m WalkthroughModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			if m.done {
				m.quitting = true
				return m, tea.Quit
			}
			m.board.ForceRemove(m.moves[m.step])
			m.step++
			if m.step == len(m.moves) {
				m.done = true
			}
			return m, nil
		}
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil
	}
	return m, nil
}

// View renders the current board with the next move highlighted.
func (m WalkthroughModel) View() string {
	if m.quitting {
		return ""
	}

	opts := render.Options{Display: m.display, NoColor: m.noColor}
	status := doneStyle.Render(fmt.Sprintf("Puzzle cleared in %d moves. Press enter to exit.", len(m.moves)))
	if !m.done {
		opts.Highlight = &m.moves[m.step]
		status = statusStyle.Render(fmt.Sprintf("Move %d of %d", m.step+1, len(m.moves)))
	}

	return titleStyle.Render(m.title) + "\n\n" +
		render.Frame(m.board, opts) + "\n" +
		status + "\n" +
		m.help.View(m.keys) + "\n"
}

// Done reports whether every move was applied.
func (m WalkthroughModel) Done() bool {
	return m.done
}

// RunWalkthrough runs the walkthrough in the local terminal.
func RunWalkthrough(b *board.Board, title string, moves []board.Point, display map[rune]int, noColor bool) error {
	p := tea.NewProgram(NewWalkthroughModel(b, title, moves, display, noColor))
	_, err := p.Run()
	return err
}
