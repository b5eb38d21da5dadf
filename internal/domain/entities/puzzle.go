package entities

import "time"

// Puzzle is a single daily rebus.
type Puzzle struct {
	ID          string   `json:"id"`
	Date        string   `json:"date,omitempty"` // YYYY-MM-DD, optional fixed publish date
	Rebus       string   `json:"rebus"`          // the picture puzzle rendered as text/emoji
	Answer      string   `json:"answer"`
	Explanation string   `json:"explanation"`
	Category    string   `json:"category"`
	Difficulty  int      `json:"difficulty"` // 1-10
	Hints       []string `json:"hints"`
}

// PuzzleAttempt tracks one user's play of the puzzle of one UTC day.
// Puzzles repeat over time, so attempts are keyed by day, not puzzle.
type PuzzleAttempt struct {
	UserID     int64
	PlayDate   time.Time // midnight UTC of the day played
	PuzzleID   string
	Attempts   int // guesses submitted so far
	HintsUsed  int
	Solved     bool
	Score      int
	StartedAt  time.Time
	FinishedAt *time.Time
}

// NewPuzzleAttempt starts tracking a user's play of a puzzle.
func NewPuzzleAttempt(userID int64, puzzleID string, startedAt time.Time) *PuzzleAttempt {
	return &PuzzleAttempt{
		UserID:    userID,
		PlayDate:  DayOf(startedAt),
		PuzzleID:  puzzleID,
		StartedAt: startedAt,
	}
}

// Finished reports whether the puzzle is over for this user.
func (a *PuzzleAttempt) Finished() bool {
	return a.FinishedAt != nil
}

// Finish closes the attempt.
func (a *PuzzleAttempt) Finish(solved bool, score int, at time.Time) {
	a.Solved = solved
	a.Score = score
	a.FinishedAt = &at
}

// AttemptsLeft returns how many guesses remain under maxAttempts.
func (a *PuzzleAttempt) AttemptsLeft(maxAttempts int) int {
	return max(0, maxAttempts-a.Attempts)
}
