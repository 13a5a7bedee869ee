package scoring

import (
	"sort"
	"time"
)

// ScoreHistory holds the results of the games finished during this process
// run. Nothing is written to disk.
type ScoreHistory struct {
	Entries []ScoreHistoryEntry
}

// ScoreHistoryEntry is the outcome of one game.
type ScoreHistoryEntry struct {
	Theme      string `json:"theme"`
	Score      int    `json:"score"`
	Matches    int    `json:"matches"`
	Mismatches int    `json:"mismatches"`
	Completed  bool   `json:"completed"`
	Timestamp  string `json:"timestamp"`
}

// NewEntry builds a history entry from a game's scoring, stamped with now.
func NewEntry(themeName string, s *Scoring, completed bool, now time.Time) ScoreHistoryEntry {
	return ScoreHistoryEntry{
		Theme:      themeName,
		Score:      s.CurrentScore,
		Matches:    s.MatchCount,
		Mismatches: s.MismatchCount,
		Completed:  completed,
		Timestamp:  now.Format(time.RFC3339),
	}
}

func (sh *ScoreHistory) Add(entry ScoreHistoryEntry) {
	sh.Entries = append(sh.Entries, entry)
}

func (sh ScoreHistory) Attempts() int {
	return len(sh.Entries)
}

// GetHighScoreEntry returns the highest scoring entry, or nil when empty.
func (sh ScoreHistory) GetHighScoreEntry() *ScoreHistoryEntry {
	if len(sh.Entries) == 0 {
		return nil
	}
	best := sh.GetNScoreEntries(1)[0]
	return &best
}

// GetNScoreEntries returns the top N score entries from the history, sorted by score.
func (sh ScoreHistory) GetNScoreEntries(n int) []ScoreHistoryEntry {
	// Make a copy to avoid modifying the original slice.
	entriesCopy := make([]ScoreHistoryEntry, len(sh.Entries))
	copy(entriesCopy, sh.Entries)

	sort.SliceStable(entriesCopy, func(i, j int) bool {
		return entriesCopy[i].Score > entriesCopy[j].Score
	})

	if len(entriesCopy) < n {
		return entriesCopy
	}
	return entriesCopy[:n]
}

// GotHighScore checks if score is greater than or equal to the best
// recorded score.
func (sh ScoreHistory) GotHighScore(score int) bool {
	high := sh.GetHighScoreEntry()
	if high == nil {
		// No earlier game, so it's vacuously a "high score".
		return true
	}
	return score >= high.Score
}
