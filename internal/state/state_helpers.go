package state

import "go-concentration/internal/card"

// FindSoleFaceUpIndex returns the index of the only face-up unmatched card,
// if exactly one exists.
func (g *MemoryGame[T]) FindSoleFaceUpIndex() (int, bool) {
	found := -1
	for i, c := range g.cards {
		if c.IsFaceUp() && !c.IsMatched() {
			if found >= 0 {
				return -1, false
			}
			found = i
		}
	}
	return found, found >= 0
}

// SetSoleFaceUp turns the card at index face up and every other card face down.
func (g *MemoryGame[T]) SetSoleFaceUp(index int) {
	for i := range g.cards {
		g.cards[i].SetFaceUp(i == index)
	}
}

func (g *MemoryGame[T]) indexOf(id int) int {
	for i, c := range g.cards {
		if c.ID == id {
			return i
		}
	}
	return -1
}

// IsComplete reports whether every card is matched. An empty game is complete.
func (g *MemoryGame[T]) IsComplete() bool {
	for _, c := range g.cards {
		if !c.IsMatched() {
			return false
		}
	}
	return true
}

// Cards returns a copy of the cards in table order.
func (g *MemoryGame[T]) Cards() []card.Card[T] {
	out := make([]card.Card[T], len(g.cards))
	copy(out, g.cards)
	return out
}

// Views snapshots every card for rendering.
func (g *MemoryGame[T]) Views() []card.View[T] {
	views := make([]card.View[T], len(g.cards))
	for i, c := range g.cards {
		views[i] = c.Snapshot()
	}
	return views
}

func (g *MemoryGame[T]) CurrentScore() int { return g.Score.CurrentScore }
func (g *MemoryGame[T]) Pairs() int        { return g.pairs }
func (g *MemoryGame[T]) Matches() int      { return g.Score.MatchCount }
func (g *MemoryGame[T]) Mismatches() int   { return g.Score.MismatchCount }

// Phase is the current state of the choose state machine.
func (g *MemoryGame[T]) Phase() string {
	return g.FSM.Current()
}

// IsConsumingBonusTime reports whether any card's bonus timer is running.
func (g *MemoryGame[T]) IsConsumingBonusTime() bool {
	for _, c := range g.cards {
		if c.IsConsumingBonusTime() {
			return true
		}
	}
	return false
}
