// Package tui renders a game session in the terminal with Bubble Tea and
// serves it over SSH.
package tui

import (
	"time"

	"go-concentration/internal/game"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
)

// bonusTickInterval is how often the bonus bar is redrawn while a card's
// bonus is counting down.
const bonusTickInterval = 100 * time.Millisecond

type TickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(bonusTickInterval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// Model is the Bubble Tea model for one session. It only reads the session's
// state and sends intents to it.
type Model struct {
	Session *game.Session

	keys      KeyMap
	help      help.Model
	bonusBar  progress.Model
	cursor    int
	width     int
	lastEvent *game.Event
	ticking   bool
	quitting  bool

	unsubscribe func()
}

func NewModel(s *game.Session) *Model {
	m := &Model{
		Session: s,
		keys:    DefaultKeyMap(),
		help:    help.New(),
	}
	m.resetBonusBar()
	m.unsubscribe = s.Subscribe(func(ev game.Event) {
		m.lastEvent = &ev
		if ev.Kind == game.EventRefresh {
			m.cursor = 0
			m.resetBonusBar()
		}
	})
	return m
}

func (m *Model) resetBonusBar() {
	m.bonusBar = progress.New(
		progress.WithSolidFill(m.Session.Theme().Color()),
		progress.WithoutPercentage(),
		progress.WithWidth(24),
	)
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TickMsg:
		if m.Session.IsConsumingBonusTime() {
			return m, tickCmd()
		}
		m.ticking = false
		return m, nil
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	n := len(m.Session.Cards())
	cols := gridColumns(n)

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.unsubscribe()
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Up):
		m.cursor = moveCursor(m.cursor, -cols, n)
	case key.Matches(msg, m.keys.Down):
		m.cursor = moveCursor(m.cursor, cols, n)
	case key.Matches(msg, m.keys.Left):
		m.cursor = moveCursor(m.cursor, -1, n)
	case key.Matches(msg, m.keys.Right):
		m.cursor = moveCursor(m.cursor, 1, n)
	case key.Matches(msg, m.keys.Choose):
		if m.cursor < n {
			m.Session.Choose(m.Session.Cards()[m.cursor].ID)
		}
	case key.Matches(msg, m.keys.Shuffle):
		m.Session.Shuffle()
	case key.Matches(msg, m.keys.NewGame):
		m.Session.Refresh()
	}

	return m, m.startTicking()
}

// startTicking schedules redraws of the bonus bar while a bonus is running.
func (m *Model) startTicking() tea.Cmd {
	if m.ticking || !m.Session.IsConsumingBonusTime() {
		return nil
	}
	m.ticking = true
	return tickCmd()
}

// moveCursor steps the cursor and keeps it on the table.
func moveCursor(cursor, step, n int) int {
	if n == 0 {
		return 0
	}
	next := cursor + step
	if next < 0 || next >= n {
		return cursor
	}
	return next
}
