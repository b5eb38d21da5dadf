// Package achievement evaluates the static achievement table against a
// player's stats and the facts of the attempt that just finished.
package achievement

import (
	"slices"
	"time"

	"github.com/aliskhannn/rebuzzle-bot/internal/domain/entities"
)

// AttemptContext holds the facts of the finished attempt.
type AttemptContext struct {
	Solved              bool
	TimeTaken           time.Duration
	HintsUsed           int
	AttemptNumber       int // 1-based guess that ended the puzzle
	WasLastAttempt      bool
	At                  time.Time
	LeaderboardPosition int // 1 is top; 0 when unknown
}

// Evaluator checks achievement definitions. It holds no mutable state.
type Evaluator struct {
	definitions []entities.AchievementDefinition
}

// NewEvaluator creates an Evaluator over defs.
func NewEvaluator(defs []entities.AchievementDefinition) *Evaluator {
	return &Evaluator{definitions: defs}
}

// Default returns an Evaluator over the built-in table.
func Default() *Evaluator {
	return NewEvaluator(All())
}

// Evaluate returns, in table order, every definition not yet in
// stats.Achievements whose criteria are satisfied. stats is not modified.
func (e *Evaluator) Evaluate(stats entities.UserStats, ctx AttemptContext) []entities.AchievementDefinition {
	var unlocked []entities.AchievementDefinition
	for _, def := range e.definitions {
		if stats.HasAchievement(def.ID) {
			continue
		}
		if Satisfied(def.Criteria, &stats, ctx) {
			unlocked = append(unlocked, def)
		}
	}
	return unlocked
}

// Satisfied dispatches on the criteria tag.
func Satisfied(c entities.Criteria, stats *entities.UserStats, ctx AttemptContext) bool {
	switch c := c.(type) {
	case entities.CountCriteria:
		return countOf(c.Metric, stats) >= c.Threshold
	case entities.StreakCriteria:
		return streakOf(c.Kind, stats) >= c.Days
	case entities.SpeedCriteria:
		if !ctx.Solved || ctx.TimeTaken.Seconds() > c.MaxSeconds {
			return false
		}
		return c.MinCount == 0 || stats.SpeedSolves >= c.MinCount
	case entities.WinRateCriteria:
		if stats.TotalGames < c.MinGames || stats.TotalGames == 0 {
			return false
		}
		return stats.WinRate() >= c.Percentage
	case entities.TimeOfDayCriteria:
		return ctx.Solved && hourInRange(ctx.At.UTC().Hour(), c.FromHour, c.ToHour)
	case entities.SpecialDateCriteria:
		at := ctx.At.UTC()
		return ctx.Solved && int(at.Month()) == c.Month && at.Day() == c.Day
	case entities.WeekdayCriteria:
		return ctx.Solved && slices.Contains(c.Days, int(ctx.At.UTC().Weekday()))
	case entities.LeaderboardCriteria:
		return ctx.Solved && ctx.LeaderboardPosition > 0 && ctx.LeaderboardPosition <= c.MaxPosition
	case entities.CustomCriteria:
		check, ok := customChecks[c.Name]
		return ok && check(stats, ctx)
	default:
		return false
	}
}

func countOf(m entities.CountMetric, s *entities.UserStats) int {
	switch m {
	case entities.MetricPuzzlesSolved:
		return s.Wins
	case entities.MetricPerfectSolves:
		return s.PerfectSolves
	case entities.MetricGamesPlayed:
		return s.TotalGames
	case entities.MetricTotalPoints:
		return s.Points
	case entities.MetricLevel:
		return s.Level
	case entities.MetricHintlessSolves:
		return s.HintlessSolves
	case entities.MetricSpeedSolves:
		return s.SpeedSolves
	case entities.MetricLastAttemptSolves:
		return s.LastAttemptSolves
	case entities.MetricHintsUsed:
		return s.HintsUsed
	default:
		return 0
	}
}

func streakOf(k entities.StreakKind, s *entities.UserStats) int {
	switch k {
	case entities.StreakWins:
		return s.Streak
	case entities.StreakDailyChallenge:
		return s.DailyChallengeStreak
	case entities.StreakBest:
		return s.BestStreak
	default:
		return 0
	}
}

// hourInRange reports from <= hour < to, wrapping past midnight when from > to.
func hourInRange(hour, from, to int) bool {
	if from <= to {
		return hour >= from && hour < to
	}
	return hour >= from || hour < to
}
