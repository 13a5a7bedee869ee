package game

import (
	"go-concentration/internal/state"
	"go-concentration/internal/theme"
)

// Game binds a match engine to the theme its cards were dealt from.
type Game struct {
	Theme theme.Theme
	State *state.MemoryGame[string]
}

// NewGame deals a game from the theme. The theme's content pool is shuffled
// first, so each game draws a different subset when the pool is larger than
// the pair count.
func NewGame(th theme.Theme, opts state.GameOptions) *Game {
	pool := th.Contents()
	if opts.Rand != nil {
		opts.Rand.Shuffle(len(pool), func(i, j int) {
			pool[i], pool[j] = pool[j], pool[i]
		})
	}
	pairs := min(th.Pairs(), len(pool))

	return &Game{
		Theme: th,
		State: state.New(pairs, func(pairIndex int) string {
			return pool[pairIndex]
		}, opts),
	}
}

// HandleChoose forwards a card choice to the engine and returns the score delta.
func (g *Game) HandleChoose(id int) int {
	return g.State.Choose(id)
}

func (g *Game) HandleShuffle() {
	g.State.Shuffle()
}
