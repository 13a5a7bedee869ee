package tui

import (
	"fmt"
	"math"
	"strings"

	"go-concentration/internal/card"
	"go-concentration/internal/game"

	"github.com/charmbracelet/lipgloss"
)

var (
	redStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))  // Penalties
	greenStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10")) // Matches
	scoreStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	faintStyle = lipgloss.NewStyle().Faint(true)
	boldStyle  = lipgloss.NewStyle().Bold(true)
)

const cardWidth = 6

// gridColumns picks a near-square layout for n cards.
func gridColumns(n int) int {
	if n <= 0 {
		return 1
	}
	return int(math.Ceil(math.Sqrt(float64(n))))
}

func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	s := m.Session
	th := s.Theme()
	accent := lipgloss.Color(th.Color())

	var b strings.Builder

	// 1. Header
	title := lipgloss.NewStyle().Bold(true).Foreground(accent).Render(th.Name())
	st := s.CurrentGame.State
	status := fmt.Sprintf("SCORE: %d | PAIRS: %d/%d", s.Score(), st.Matches(), st.Pairs())
	b.WriteString(title + "  " + scoreStyle.Render(status) + "\n\n")

	// 2. Board
	b.WriteString(m.RenderBoard(accent) + "\n")

	// 3. Bonus bar for the card awaiting its partner
	if v, ok := consumingCard(s.Cards()); ok {
		secs := v.BonusTimeRemaining.Seconds()
		b.WriteString(fmt.Sprintf("\nBONUS %s %.1fs", m.bonusBar.ViewAs(v.BonusRemaining), secs))
	}

	// 4. Last intent
	if m.lastEvent != nil {
		b.WriteString("\n" + describeEvent(*m.lastEvent))
	}

	// 5. Final message
	if s.IsComplete() {
		b.WriteString("\n" + greenStyle.Render(fmt.Sprintf("All pairs matched! Final score: %d", s.Score())))
		if s.History.Attempts() > 0 {
			if s.History.GotHighScore(s.Score()) {
				b.WriteString("\nBest game this run! Previous games:")
			} else {
				b.WriteString("\nPrevious games:")
			}
			for _, entry := range s.History.GetNScoreEntries(5) {
				b.WriteString(fmt.Sprintf("\n  * %d on %s (%s)", entry.Score, entry.Theme, entry.Timestamp))
			}
		}
		b.WriteString("\nPress n for a new game.")
	}

	b.WriteString("\n\n" + m.help.View(m.keys))
	return b.String()
}

// RenderBoard lays the cards out in rows.
func (m *Model) RenderBoard(accent lipgloss.Color) string {
	views := m.Session.Cards()
	cols := gridColumns(len(views))

	var rows []string
	for start := 0; start < len(views); start += cols {
		end := min(start+cols, len(views))
		cells := make([]string, 0, end-start)
		for i := start; i < end; i++ {
			cells = append(cells, renderCard(views[i], accent, i == m.cursor))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func renderCard(v card.View[string], accent lipgloss.Color, selected bool) string {
	border := lipgloss.RoundedBorder()
	if selected {
		border = lipgloss.ThickBorder()
	}
	style := lipgloss.NewStyle().
		Border(border).
		BorderForeground(accent).
		Width(cardWidth).
		Align(lipgloss.Center)

	switch {
	case v.IsMatched:
		return style.Faint(true).Render(v.Content)
	case v.IsFaceUp:
		return style.Bold(true).Render(v.Content)
	default:
		return style.Foreground(accent).Render(strings.Repeat("░", cardWidth-2))
	}
}

func consumingCard(views []card.View[string]) (card.View[string], bool) {
	for _, v := range views {
		if v.IsConsumingBonusTime {
			return v, true
		}
	}
	return card.View[string]{}, false
}

func describeEvent(ev game.Event) string {
	switch ev.Kind {
	case game.EventChoose:
		switch {
		case ev.Delta > 0:
			return greenStyle.Render(fmt.Sprintf("Match! +%d", ev.Delta))
		case ev.Delta < 0:
			return redStyle.Render(fmt.Sprintf("Seen that one before. %d", ev.Delta))
		}
		return ""
	case game.EventShuffle:
		return faintStyle.Render("Cards shuffled.")
	case game.EventRefresh:
		return boldStyle.Render("New game: " + ev.Theme)
	}
	return ""
}
