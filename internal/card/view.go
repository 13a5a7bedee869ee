package card

import "time"

// View is a read-only snapshot of a card for rendering.
type View[T comparable] struct {
	Content              T
	ID                   int
	IsFaceUp             bool
	IsMatched            bool
	BonusRemaining       float64
	BonusTimeRemaining   time.Duration
	IsConsumingBonusTime bool
	HasEarnedBonus       bool
}

// Snapshot captures the card's current state.
func (c Card[T]) Snapshot() View[T] {
	return View[T]{
		Content:              c.Content,
		ID:                   c.ID,
		IsFaceUp:             c.isFaceUp,
		IsMatched:            c.isMatched,
		BonusRemaining:       c.BonusRemaining(),
		BonusTimeRemaining:   c.BonusTimeRemaining(),
		IsConsumingBonusTime: c.IsConsumingBonusTime(),
		HasEarnedBonus:       c.HasEarnedBonus(),
	}
}
