package state

import (
	"context"
	"math/rand"
	"time"

	"go-concentration/internal/card"
	"go-concentration/internal/scoring"

	"github.com/looplab/fsm"
)

type GameOptions struct {
	// BonusTimeLimit is the per-card bonus window. Zero selects
	// card.DefaultBonusTimeLimit, a negative value disables the bonus.
	BonusTimeLimit time.Duration
	Rand           *rand.Rand // nil seeds from the wall clock
	Clock          card.Clock // nil uses time.Now
}

// MemoryGame owns the cards of one game and enforces the choose, match and
// scoring rules. It is not safe for concurrent use.
type MemoryGame[T comparable] struct {
	cards   []card.Card[T]
	pairs   int
	Score   *scoring.Scoring
	FSM     *fsm.FSM
	Options GameOptions

	rng         *rand.Rand
	chosenIndex int // card picked by the choose call in flight
	matchIndex  int // lone face-up card it is compared against
	lastDelta   int
}

// New deals numberOfPairs pairs, two cards per content value with ids 2i and
// 2i+1, and shuffles them. A negative pair count deals an empty game.
func New[T comparable](numberOfPairs int, content func(pairIndex int) T, opts GameOptions) *MemoryGame[T] {
	if numberOfPairs < 0 {
		numberOfPairs = 0
	}

	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	limit := opts.BonusTimeLimit
	switch {
	case limit == 0:
		limit = card.DefaultBonusTimeLimit
	case limit < 0:
		limit = 0
	}

	g := &MemoryGame[T]{
		cards:   make([]card.Card[T], 0, 2*numberOfPairs),
		pairs:   numberOfPairs,
		Score:   scoring.InitScoring(),
		Options: opts,
		rng:     rng,
	}
	for pairIndex := 0; pairIndex < numberOfPairs; pairIndex++ {
		c := content(pairIndex)
		g.cards = append(g.cards,
			card.New(c, pairIndex*2, limit, opts.Clock),
			card.New(c, pairIndex*2+1, limit, opts.Clock),
		)
	}
	g.Shuffle()

	g.FSM = fsm.NewFSM(
		"start",
		getStateTransitions(),
		getStateCallbacks(g),
	)
	_ = g.FSM.Event(context.Background(), "initGame")
	if g.IsComplete() {
		_ = g.FSM.Event(context.Background(), "gameEnd")
	}

	return g
}

// Choose turns the card with the given id and resolves a match or mismatch
// against the lone face-up card. It returns the score change of this call.
// Unknown ids and cards already face up or matched are ignored.
func (g *MemoryGame[T]) Choose(id int) int {
	g.lastDelta = 0
	_ = g.FSM.Event(context.Background(), "choose", id)
	return g.lastDelta
}

// Shuffle reorders the cards uniformly at random without touching their state.
func (g *MemoryGame[T]) Shuffle() {
	g.rng.Shuffle(len(g.cards), func(i, j int) {
		g.cards[i], g.cards[j] = g.cards[j], g.cards[i]
	})
}

// getStateTransitions describes the choose flow.
func getStateTransitions() []fsm.EventDesc {
	return fsm.Events{
		{Name: "initGame", Src: []string{"start"}, Dst: "idle"},
		{Name: "choose", Src: []string{"idle"}, Dst: "checkChoice"},

		// Choice Checking
		{Name: "ignore", Src: []string{"checkChoice"}, Dst: "evaluating"},
		{Name: "reveal", Src: []string{"checkChoice"}, Dst: "revealing"},
		{Name: "compare", Src: []string{"checkChoice"}, Dst: "comparing"},

		// Comparison
		{Name: "match", Src: []string{"comparing"}, Dst: "gotMatch"},
		{Name: "mismatch", Src: []string{"comparing"}, Dst: "noMatch"},
		{Name: "matched", Src: []string{"gotMatch"}, Dst: "evaluating"},
		{Name: "penalized", Src: []string{"noMatch"}, Dst: "flipping"},

		{Name: "flipped", Src: []string{"revealing", "flipping"}, Dst: "evaluating"},

		// End Loop
		{Name: "wait", Src: []string{"evaluating"}, Dst: "idle"},
		{Name: "gameEnd", Src: []string{"idle", "evaluating"}, Dst: "complete"},
	}
}

func getStateCallbacks[T comparable](g *MemoryGame[T]) map[string]fsm.Callback {
	return fsm.Callbacks{
		"enter_checkChoice": func(ctx context.Context, e *fsm.Event) {
			id := -1
			if len(e.Args) > 0 {
				if v, ok := e.Args[0].(int); ok {
					id = v
				}
			}

			idx := g.indexOf(id)
			if idx < 0 || g.cards[idx].IsFaceUp() || g.cards[idx].IsMatched() {
				e.FSM.Event(ctx, "ignore")
				return
			}
			g.chosenIndex = idx

			if other, ok := g.FindSoleFaceUpIndex(); ok {
				g.matchIndex = other
				e.FSM.Event(ctx, "compare")
				return
			}
			e.FSM.Event(ctx, "reveal")
		},
		"enter_revealing": func(ctx context.Context, e *fsm.Event) {
			g.SetSoleFaceUp(g.chosenIndex)
			e.FSM.Event(ctx, "flipped")
		},
		"enter_comparing": func(ctx context.Context, e *fsm.Event) {
			if g.cards[g.chosenIndex].Content == g.cards[g.matchIndex].Content {
				e.FSM.Event(ctx, "match")
				return
			}
			e.FSM.Event(ctx, "mismatch")
		},
		"enter_gotMatch": func(ctx context.Context, e *fsm.Event) {
			g.cards[g.chosenIndex].SetMatched(true)
			g.cards[g.matchIndex].SetMatched(true)
			// Both halves of the pair stay revealed.
			g.cards[g.chosenIndex].SetFaceUp(true)
			g.lastDelta += g.Score.ScoreEvent("match")
			e.FSM.Event(ctx, "matched")
		},
		"enter_noMatch": func(ctx context.Context, e *fsm.Event) {
			g.lastDelta += g.Score.ScoreEvent("mismatch")
			previous, chosen := g.cards[g.matchIndex].ID, g.cards[g.chosenIndex].ID
			// Each card is penalized on its own.
			for _, id := range []int{previous, chosen} {
				if g.Score.Seen(id) {
					g.lastDelta += g.Score.ScoreEvent("repeatMismatch")
				}
			}
			g.Score.RecordMismatch(previous, chosen)
			e.FSM.Event(ctx, "penalized")
		},
		"enter_flipping": func(ctx context.Context, e *fsm.Event) {
			g.SetSoleFaceUp(g.chosenIndex)
			e.FSM.Event(ctx, "flipped")
		},
		"enter_evaluating": func(ctx context.Context, e *fsm.Event) {
			if g.IsComplete() {
				e.FSM.Event(ctx, "gameEnd")
				return
			}
			e.FSM.Event(ctx, "wait")
		},
	}
}
