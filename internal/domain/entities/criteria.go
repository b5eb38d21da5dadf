package entities

// CountMetric names a running counter of UserStats.
type CountMetric string

const (
	MetricPuzzlesSolved     CountMetric = "puzzles_solved"
	MetricPerfectSolves     CountMetric = "perfect_solves"
	MetricGamesPlayed       CountMetric = "games_played"
	MetricTotalPoints       CountMetric = "total_points"
	MetricLevel             CountMetric = "level"
	MetricHintlessSolves    CountMetric = "hintless_solves"
	MetricSpeedSolves       CountMetric = "speed_solves"
	MetricLastAttemptSolves CountMetric = "last_attempt_solves"
	MetricHintsUsed         CountMetric = "hints_used"
)

// StreakKind selects which streak counter a StreakCriteria reads.
type StreakKind string

const (
	StreakWins           StreakKind = "streak"
	StreakDailyChallenge StreakKind = "daily_challenge"
	StreakBest           StreakKind = "best_streak"
)

// CountCriteria: counter >= Threshold.
type CountCriteria struct {
	Metric    CountMetric
	Threshold int
}

// StreakCriteria: selected streak >= Days.
type StreakCriteria struct {
	Kind StreakKind
	Days int
}

// SpeedCriteria: the attempt was solved within MaxSeconds and, when MinCount
// is set, the running count of speed solves reached MinCount.
type SpeedCriteria struct {
	MaxSeconds float64
	MinCount   int
}

// WinRateCriteria: at least MinGames played and win rate >= Percentage.
type WinRateCriteria struct {
	MinGames   int
	Percentage float64
}

// TimeOfDayCriteria: solved with the UTC hour in [FromHour, ToHour).
// FromHour > ToHour wraps past midnight.
type TimeOfDayCriteria struct {
	FromHour int
	ToHour   int
}

// SpecialDateCriteria: solved on the given calendar day (UTC).
type SpecialDateCriteria struct {
	Month int
	Day   int
}

// WeekdayCriteria: solved on one of the given weekdays (UTC).
type WeekdayCriteria struct {
	Days []int // time.Weekday values
}

// LeaderboardCriteria: leaderboard position at or above MaxPosition (1 is top).
type LeaderboardCriteria struct {
	MaxPosition int
}

// CustomCriteria is resolved by name in the achievement package.
type CustomCriteria struct {
	Name string
}

func (CountCriteria) isCriteria()       {}
func (StreakCriteria) isCriteria()      {}
func (SpeedCriteria) isCriteria()       {}
func (WinRateCriteria) isCriteria()     {}
func (TimeOfDayCriteria) isCriteria()   {}
func (SpecialDateCriteria) isCriteria() {}
func (WeekdayCriteria) isCriteria()     {}
func (LeaderboardCriteria) isCriteria() {}
func (CustomCriteria) isCriteria()      {}
