package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tumblesolve/internal/board"
	"github.com/vovakirdan/tumblesolve/internal/levels"
	"github.com/vovakirdan/tumblesolve/internal/solver"
	"github.com/vovakirdan/tumblesolve/internal/storage"
)

var (
	cursorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
)

// sessionState tracks which screen an SSH session is on.
type sessionState int

const (
	statePicking sessionState = iota
	stateSolving
	stateWalking
	stateUnsolvable
)

// solvedMsg carries the result of a background solve.
type solvedMsg struct {
	level levels.Level
	board *board.Board
	moves []board.Point
	ok    bool
	err   error
	dur   time.Duration
}

// SessionModel manages one remote session: pick a puzzle, solve it
// server-side, then step through the hints.
type SessionModel struct {
	levels   []levels.Level
	cursor   int
	store    *storage.Store
	display  map[rune]int
	state    sessionState
	walk     WalkthroughModel
	errText  string
	quitting bool
}

// NewSessionModel creates a session over the server's loaded levels.
func NewSessionModel(lvls []levels.Level, store *storage.Store, display map[rune]int) SessionModel {
	return SessionModel{
		levels:  lvls,
		store:   store,
		display: display,
	}
}

// Init implements tea.Model.
func (m SessionModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the session flow.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.state == stateWalking {
		return m.updateWalking(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case solvedMsg:
		return m.handleSolved(msg)
	}
	return m, nil
}

func (m SessionModel) updateWalking(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Intercept quit so a finished walkthrough returns to the picker
	// instead of closing the connection.
	updated, cmd := m.walk.Update(msg)
	walk, ok := updated.(WalkthroughModel)
	if !ok {
		return m, cmd
	}
	if walk.quitting {
		m.state = statePicking
		return m, nil
	}
	m.walk = walk
	return m, nil
}

func (m SessionModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		m.quitting = true
		return m, tea.Quit
	case "up", "k":
		if m.state == statePicking && m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.state == statePicking && m.cursor < len(m.levels)-1 {
			m.cursor++
		}
	case "esc", "b":
		if m.state == stateUnsolvable {
			m.state = statePicking
			m.errText = ""
		}
	case "enter", " ":
		switch m.state {
		case statePicking:
			if len(m.levels) == 0 {
				return m, nil
			}
			m.state = stateSolving
			return m, solveLevelCmd(m.levels[m.cursor])
		case stateUnsolvable:
			m.state = statePicking
			m.errText = ""
		}
	}
	return m, nil
}

func (m SessionModel) handleSolved(msg solvedMsg) (tea.Model, tea.Cmd) {
	if m.store != nil {
		//nolint:errcheck // Best-effort history, session continues regardless
		m.store.SaveResult(msg.level.ID, msg.ok, msg.moves, msg.dur)
	}
	if msg.err != nil {
		m.state = stateUnsolvable
		m.errText = msg.err.Error()
		return m, nil
	}
	if !msg.ok {
		m.state = stateUnsolvable
		m.errText = "No solution exists."
		return m, nil
	}
	title := msg.level.Name
	if title == "" {
		title = msg.level.ID
	}
	m.walk = NewWalkthroughModel(msg.board, title, msg.moves, m.display, false)
	m.state = stateWalking
	return m, nil
}

// View renders the current screen.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}
	switch m.state {
	case stateWalking:
		return m.walk.View()
	case stateSolving:
		return dimStyle.Render("Solving...") + "\n"
	case stateUnsolvable:
		return errStyle.Render(m.errText) + "\n\n" + dimStyle.Render("enter: back  q: quit") + "\n"
	}

	var sb strings.Builder
	sb.WriteString(titleStyle.Render("tumblesolve"))
	sb.WriteString("\n\n")
	if len(m.levels) == 0 {
		sb.WriteString(dimStyle.Render("No puzzles available."))
		sb.WriteString("\n")
	}
	for i, lvl := range m.levels {
		name := lvl.ID
		if lvl.Name != "" {
			name = fmt.Sprintf("%s (%s)", lvl.Name, lvl.ID)
		}
		line := fmt.Sprintf("  %s  %dx%d", name, lvl.Width, lvl.Height)
		if i == m.cursor {
			sb.WriteString(cursorStyle.Render("> " + strings.TrimLeft(line, " ")))
		} else {
			sb.WriteString(line)
		}
		sb.WriteString("\n")
	}
	sb.WriteString("\n")
	sb.WriteString(dimStyle.Render("up/down: select  enter: solve  q: quit"))
	sb.WriteString("\n")
	return sb.String()
}

// solveLevelCmd solves a level off the update loop.
func solveLevelCmd(lvl levels.Level) tea.Cmd {
	return func() tea.Msg {
		b, err := lvl.Board()
		if err != nil {
			return solvedMsg{level: lvl, err: err}
		}
		start := time.Now()
		moves, ok := solver.Solve(b)
		return solvedMsg{
			level: lvl,
			board: b,
			moves: moves,
			ok:    ok,
			dur:   time.Since(start),
		}
	}
}
