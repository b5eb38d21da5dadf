package entities

// VerdictMethod records which validation stage decided a guess.
type VerdictMethod string

const (
	MethodExact      VerdictMethod = "exact"      // legacy quick-check similarity at or above the accept threshold
	MethodNormalized VerdictMethod = "normalized" // equal after normalization or word reordering
	MethodFuzzy      VerdictMethod = "fuzzy"      // minor typo accept or terminal reject
	MethodAI         VerdictMethod = "ai"         // decided by the remote semantic judge
)

// GuessAttempt is the immutable input to answer validation.
type GuessAttempt struct {
	Text          string
	CorrectAnswer string
	PuzzleContext string // optional rebus text shown to the player
	Explanation   string // optional explanation of the answer
}

// ValidationVerdict is produced exactly once per guess.
type ValidationVerdict struct {
	IsCorrect   bool          `json:"isCorrect"`
	Confidence  float64       `json:"confidence"` // in [0,1], set by the deciding stage
	Method      VerdictMethod `json:"method"`
	Reasoning   string        `json:"reasoning,omitempty"`
	Suggestions []string      `json:"suggestions,omitempty"`
}

// JudgeRequest is sent to the remote semantic judge.
type JudgeRequest struct {
	GuessText     string
	CorrectAnswer string
	PuzzleContext string
	Explanation   string
}

// JudgeVerdict is the structured response of the remote semantic judge.
type JudgeVerdict struct {
	IsCorrect   bool     `json:"isCorrect"`
	Confidence  float64  `json:"confidence"`
	Reasoning   string   `json:"reasoning"`
	Suggestions []string `json:"suggestions,omitempty"`
}
