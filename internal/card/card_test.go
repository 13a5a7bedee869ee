package card

import (
	"testing"
	"time"
)

// fakeClock is a manually advanced clock for bonus timer tests.
type fakeClock struct {
	t time.Time
}

func (f *fakeClock) Now() time.Time          { return f.t }
func (f *fakeClock) Advance(d time.Duration) { f.t = f.t.Add(d) }

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func TestCard_NewIsFaceDown(t *testing.T) {
	c := New("A", 3, DefaultBonusTimeLimit, nil)

	if c.IsFaceUp() || c.IsMatched() {
		t.Error("New card should be face down and unmatched")
	}
	if c.ID != 3 || c.Content != "A" {
		t.Errorf("Unexpected identity: id=%d content=%q", c.ID, c.Content)
	}
	if c.LastFaceUpDate != nil {
		t.Error("Timer should not be running on a new card")
	}
	if c.BonusRemaining() != 1 {
		t.Errorf("Expected full bonus, got %f", c.BonusRemaining())
	}
}

func TestCard_FaceUpStartsTimer(t *testing.T) {
	clk := newFakeClock()
	c := New("A", 0, DefaultBonusTimeLimit, clk.Now)

	c.SetFaceUp(true)
	if c.LastFaceUpDate == nil {
		t.Fatal("Timer should start when turned face up")
	}
	if !c.IsConsumingBonusTime() {
		t.Error("Face-up unmatched card should consume bonus time")
	}
	if c.BonusRemaining() != 1 {
		t.Errorf("Expected bonus 1.0 immediately after flip, got %f", c.BonusRemaining())
	}

	clk.Advance(3 * time.Second)
	if got := c.BonusRemaining(); got != 0.5 {
		t.Errorf("Expected bonus 0.5 after 3s, got %f", got)
	}
	if got := c.BonusTimeRemaining(); got != 3*time.Second {
		t.Errorf("Expected 3s remaining, got %v", got)
	}
}

func TestCard_BonusDecaysMonotonically(t *testing.T) {
	clk := newFakeClock()
	c := New("A", 0, DefaultBonusTimeLimit, clk.Now)
	c.SetFaceUp(true)

	prev := c.BonusRemaining()
	for i := 0; i < 10; i++ {
		clk.Advance(time.Second)
		got := c.BonusRemaining()
		if got > prev {
			t.Fatalf("Bonus increased from %f to %f", prev, got)
		}
		prev = got
	}
	if prev != 0 {
		t.Errorf("Expected bonus to reach 0, got %f", prev)
	}
	if c.IsConsumingBonusTime() {
		t.Error("Card with no bonus left should not consume bonus time")
	}
}

func TestCard_FaceDownFoldsElapsedTime(t *testing.T) {
	clk := newFakeClock()
	c := New("A", 0, DefaultBonusTimeLimit, clk.Now)

	c.SetFaceUp(true)
	clk.Advance(2 * time.Second)
	c.SetFaceUp(false)

	if c.LastFaceUpDate != nil {
		t.Error("Timer should stop when turned face down")
	}
	if c.PastFaceUpTime != 2*time.Second {
		t.Errorf("Expected 2s past face-up time, got %v", c.PastFaceUpTime)
	}

	// Time face down does not count.
	clk.Advance(10 * time.Second)
	if c.FaceUpTime() != 2*time.Second {
		t.Errorf("Face-down time should not accumulate, got %v", c.FaceUpTime())
	}

	c.SetFaceUp(true)
	clk.Advance(time.Second)
	if c.FaceUpTime() != 3*time.Second {
		t.Errorf("Expected streaks to add up to 3s, got %v", c.FaceUpTime())
	}
}

func TestCard_MatchStopsTimer(t *testing.T) {
	clk := newFakeClock()
	c := New("A", 0, DefaultBonusTimeLimit, clk.Now)

	c.SetFaceUp(true)
	clk.Advance(time.Second)
	c.SetMatched(true)

	if c.LastFaceUpDate != nil {
		t.Error("Timer should stop on match")
	}
	if !c.HasEarnedBonus() {
		t.Error("Card matched within the limit should earn the bonus")
	}

	clk.Advance(time.Minute)
	if c.BonusTimeRemaining() != 5*time.Second {
		t.Errorf("Matched card should keep its remaining bonus, got %v", c.BonusTimeRemaining())
	}
	if c.IsConsumingBonusTime() {
		t.Error("Matched card should not consume bonus time")
	}
}

func TestCard_MatchedIsMonotonic(t *testing.T) {
	c := New("A", 0, DefaultBonusTimeLimit, nil)
	c.SetMatched(true)
	c.SetMatched(false)

	if !c.IsMatched() {
		t.Error("Matched flag should never be cleared")
	}
}

func TestCard_ExhaustedCardDoesNotRestartTimer(t *testing.T) {
	clk := newFakeClock()
	c := New("A", 0, DefaultBonusTimeLimit, clk.Now)

	c.SetFaceUp(true)
	clk.Advance(7 * time.Second)
	c.SetFaceUp(false)
	c.SetFaceUp(true)

	if c.LastFaceUpDate != nil {
		t.Error("Timer should not restart once the bonus is used up")
	}
	if c.BonusRemaining() != 0 {
		t.Errorf("Expected no bonus left, got %f", c.BonusRemaining())
	}
}

func TestCard_ZeroLimit(t *testing.T) {
	c := New("A", 0, 0, nil)
	c.SetFaceUp(true)

	if c.BonusRemaining() != 0 {
		t.Errorf("Zero limit should give zero bonus, got %f", c.BonusRemaining())
	}
	if c.IsConsumingBonusTime() || c.LastFaceUpDate != nil {
		t.Error("Zero limit card should never run a timer")
	}
}

func TestCard_ClockGoingBackwards(t *testing.T) {
	clk := newFakeClock()
	c := New("A", 0, DefaultBonusTimeLimit, clk.Now)

	c.SetFaceUp(true)
	clk.Advance(-time.Hour)

	if c.FaceUpTime() != 0 {
		t.Errorf("Backwards clock should clamp elapsed time to 0, got %v", c.FaceUpTime())
	}
	if c.BonusTimeRemaining() != DefaultBonusTimeLimit {
		t.Errorf("Expected full bonus, got %v", c.BonusTimeRemaining())
	}
}

func TestCard_Snapshot(t *testing.T) {
	clk := newFakeClock()
	c := New("B", 7, DefaultBonusTimeLimit, clk.Now)
	c.SetFaceUp(true)
	clk.Advance(3 * time.Second)

	v := c.Snapshot()
	if v.ID != 7 || v.Content != "B" || !v.IsFaceUp || v.IsMatched {
		t.Errorf("Snapshot mismatch: %+v", v)
	}
	if v.BonusRemaining != 0.5 || v.BonusTimeRemaining != 3*time.Second {
		t.Errorf("Snapshot bonus mismatch: %+v", v)
	}
	if !v.IsConsumingBonusTime || v.HasEarnedBonus {
		t.Errorf("Snapshot flags mismatch: %+v", v)
	}
}
