package card

import "time"

// DefaultBonusTimeLimit is how long a card may stay face up before its
// matching bonus runs out.
const DefaultBonusTimeLimit = 6 * time.Second

// Clock returns the current time. Cards sample it whenever a bonus timer
// starts, stops, or is read.
type Clock func() time.Time

// Card is a single card on the table. Two cards share each content value.
type Card[T comparable] struct {
	Content T
	ID      int

	isFaceUp  bool
	isMatched bool

	BonusTimeLimit time.Duration
	// LastFaceUpDate marks the start of the current face-up streak, nil when
	// the bonus timer is not running.
	LastFaceUpDate *time.Time
	// PastFaceUpTime accumulates the face-up time of earlier streaks.
	PastFaceUpTime time.Duration

	clock Clock
}

// New creates a face-down card. A nil clock falls back to time.Now.
func New[T comparable](content T, id int, limit time.Duration, clock Clock) Card[T] {
	if clock == nil {
		clock = time.Now
	}
	return Card[T]{
		Content:        content,
		ID:             id,
		BonusTimeLimit: limit,
		clock:          clock,
	}
}

func (c Card[T]) IsFaceUp() bool  { return c.isFaceUp }
func (c Card[T]) IsMatched() bool { return c.isMatched }

// SetFaceUp turns the card and starts or stops the bonus timer with it.
func (c *Card[T]) SetFaceUp(up bool) {
	c.isFaceUp = up
	if up {
		c.startUsingBonusTime()
	} else {
		c.stopUsingBonusTime()
	}
}

// SetMatched marks the card as matched. A matched card stays matched, so
// clearing the flag is ignored. The bonus timer always stops.
func (c *Card[T]) SetMatched(matched bool) {
	if matched {
		c.isMatched = true
	}
	c.stopUsingBonusTime()
}

// FaceUpTime is the total time the card has spent consuming bonus time.
func (c Card[T]) FaceUpTime() time.Duration {
	if c.LastFaceUpDate == nil {
		return c.PastFaceUpTime
	}
	elapsed := c.now().Sub(*c.LastFaceUpDate)
	if elapsed < 0 {
		elapsed = 0
	}
	return c.PastFaceUpTime + elapsed
}

func (c Card[T]) BonusTimeRemaining() time.Duration {
	return max(0, c.BonusTimeLimit-c.FaceUpTime())
}

// BonusRemaining is the fraction of the bonus time left, in [0, 1].
func (c Card[T]) BonusRemaining() float64 {
	remaining := c.BonusTimeRemaining()
	if c.BonusTimeLimit <= 0 || remaining <= 0 {
		return 0
	}
	return float64(remaining) / float64(c.BonusTimeLimit)
}

// HasEarnedBonus reports whether the card was matched before its bonus ran out.
func (c Card[T]) HasEarnedBonus() bool {
	return c.isMatched && c.BonusTimeRemaining() > 0
}

func (c Card[T]) IsConsumingBonusTime() bool {
	return c.isFaceUp && !c.isMatched && c.BonusTimeRemaining() > 0
}

func (c *Card[T]) startUsingBonusTime() {
	if c.IsConsumingBonusTime() && c.LastFaceUpDate == nil {
		now := c.now()
		c.LastFaceUpDate = &now
	}
}

func (c *Card[T]) stopUsingBonusTime() {
	c.PastFaceUpTime = c.FaceUpTime()
	c.LastFaceUpDate = nil
}

func (c Card[T]) now() time.Time {
	if c.clock == nil {
		return time.Now()
	}
	return c.clock()
}
