package scoring

// Scoring keeps the score of a single game, the penalty log of cards that
// took part in a mismatch, and match/mismatch counters.
type Scoring struct {
	// public
	CurrentScore  int
	MatchCount    int
	MismatchCount int
	PenaltyCount  int
	// private
	scoreTable  map[string]int
	alreadySeen []int // card ids, append-only
}

// InitScoring creates a Scoring with a zero score and an empty penalty log.
func InitScoring() *Scoring {
	return &Scoring{
		scoreTable: getScoreTable(),
	}
}

// ScoreEvent updates the score for a game event and returns the delta applied.
// Unknown events leave the score untouched.
func (s *Scoring) ScoreEvent(event string) int {
	switch event {
	case "match":
		s.MatchCount++
	case "mismatch":
		s.MismatchCount++
	case "repeatMismatch":
		s.PenaltyCount++
	}
	delta := s.scoreTable[event]
	s.CurrentScore += delta
	return delta
}

// Seen reports whether the card with the given id has been part of a mismatch.
func (s *Scoring) Seen(id int) bool {
	for _, seen := range s.alreadySeen {
		if seen == id {
			return true
		}
	}
	return false
}

// RecordMismatch appends the cards of a mismatch to the penalty log. Entries
// are recorded on every mismatch, even for cards already in the log.
func (s *Scoring) RecordMismatch(ids ...int) {
	s.alreadySeen = append(s.alreadySeen, ids...)
}

// AlreadySeen returns a copy of the penalty log.
func (s *Scoring) AlreadySeen() []int {
	out := make([]int, len(s.alreadySeen))
	copy(out, s.alreadySeen)
	return out
}

// getScoreTable returns the predefined values for different scoring events.
func getScoreTable() map[string]int {
	return map[string]int{
		"match":          2,
		"mismatch":       0,
		"repeatMismatch": -1,
	}
}
