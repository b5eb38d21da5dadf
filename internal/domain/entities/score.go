package entities

// ScoreInput holds the per-attempt facts the scoring engine needs.
type ScoreInput struct {
	TimeTakenSeconds float64
	WrongAttempts    int
	HintsUsed        int
	StreakDays       int
	DifficultyLevel  int
}

// ScoreBreakdown itemizes how a total score was reached.
// Penalties are stored as positive numbers and subtracted from the total.
type ScoreBreakdown struct {
	BaseScore       int `json:"baseScore"`
	SpeedBonus      int `json:"speedBonus"`
	AccuracyPenalty int `json:"accuracyPenalty"`
	HintPenalty     int `json:"hintPenalty"`
	StreakBonus     int `json:"streakBonus"`
	DifficultyBonus int `json:"difficultyBonus"`
	TotalScore      int `json:"totalScore"`
}
