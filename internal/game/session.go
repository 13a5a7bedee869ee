package game

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"go-concentration/internal/card"
	"go-concentration/internal/scoring"
	"go-concentration/internal/state"
	"go-concentration/internal/theme"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

type SessionOptions struct {
	Game state.GameOptions
	// Theme names the theme of the first game. Empty picks one at random.
	Theme  string
	Logger *log.Logger
}

// Session picks a theme per game, owns the live game, and notifies
// subscribers after every intent. It is not safe for concurrent use; give
// each player their own Session.
type Session struct {
	ID          string
	Catalog     theme.Catalog
	CurrentGame *Game
	History     scoring.ScoreHistory

	opts      SessionOptions
	rng       *rand.Rand
	logger    *log.Logger
	observers []observer
	nextID    int
}

type observer struct {
	id int
	fn func(Event)
}

func NewSession(catalog theme.Catalog, opts SessionOptions) (*Session, error) {
	if catalog.Len() == 0 {
		return nil, theme.ErrEmptyCatalog
	}

	rng := opts.Game.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
		opts.Game.Rand = rng
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	s := &Session{
		ID:      uuid.NewString(),
		Catalog: catalog,
		opts:    opts,
		rng:     rng,
	}
	s.logger = logger.With("session", s.ID)

	var th theme.Theme
	var err error
	if opts.Theme != "" {
		th, err = catalog.Lookup(opts.Theme)
	} else {
		th, err = catalog.Random(rng)
	}
	if err != nil {
		return nil, fmt.Errorf("could not pick a theme: %w", err)
	}

	s.newGame(th)
	return s, nil
}

// Choose forwards a card choice to the current game.
func (s *Session) Choose(id int) {
	delta := s.CurrentGame.HandleChoose(id)
	st := s.CurrentGame.State

	switch {
	case delta > 0:
		s.logger.Debug("match", "card", id, "score", st.CurrentScore())
	case delta < 0:
		s.logger.Debug("repeat mismatch", "card", id, "penalty", delta, "score", st.CurrentScore())
	}
	if delta > 0 && st.IsComplete() {
		s.logger.Info("game complete", "theme", s.CurrentGame.Theme.Name(), "score", st.CurrentScore())
	}

	s.publish(EventChoose, delta)
}

// Shuffle reorders the current game's cards.
func (s *Session) Shuffle() {
	s.CurrentGame.HandleShuffle()
	s.publish(EventShuffle, 0)
}

// Refresh records the current game in the history, then deals a new game
// from a theme drawn at random. The previous theme may be drawn again.
func (s *Session) Refresh() {
	s.History.Add(scoring.NewEntry(
		s.CurrentGame.Theme.Name(),
		s.CurrentGame.State.Score,
		s.CurrentGame.State.IsComplete(),
		s.now(),
	))

	// The catalog is never empty here, NewSession checked it.
	th, _ := s.Catalog.Random(s.rng)
	s.newGame(th)
	s.publish(EventRefresh, 0)
}

func (s *Session) newGame(th theme.Theme) {
	s.CurrentGame = NewGame(th, s.opts.Game)
	s.logger.Info("new game", "theme", th.Name(), "pairs", s.CurrentGame.State.Pairs())
}

func (s *Session) Cards() []card.View[string] {
	return s.CurrentGame.State.Views()
}

func (s *Session) Score() int {
	return s.CurrentGame.State.CurrentScore()
}

func (s *Session) Theme() theme.Theme {
	return s.CurrentGame.Theme
}

func (s *Session) IsComplete() bool {
	return s.CurrentGame.State.IsComplete()
}

// IsConsumingBonusTime reports whether a face-up card's bonus is counting down.
func (s *Session) IsConsumingBonusTime() bool {
	return s.CurrentGame.State.IsConsumingBonusTime()
}

func (s *Session) now() time.Time {
	if s.opts.Game.Clock != nil {
		return s.opts.Game.Clock()
	}
	return time.Now()
}
