package achievement

import "github.com/aliskhannn/rebuzzle-bot/internal/domain/entities"

type customCheck func(stats *entities.UserStats, ctx AttemptContext) bool

// customChecks resolves CustomCriteria names. Unknown names never match.
var customChecks = map[string]customCheck{
	"first_try_no_hints": func(_ *entities.UserStats, ctx AttemptContext) bool {
		return ctx.Solved && ctx.AttemptNumber == 1 && ctx.HintsUsed == 0
	},
	"comeback": func(_ *entities.UserStats, ctx AttemptContext) bool {
		return ctx.Solved && ctx.WasLastAttempt && ctx.AttemptNumber > 1
	},
	"lightning_no_hints": func(_ *entities.UserStats, ctx AttemptContext) bool {
		return ctx.Solved && ctx.HintsUsed == 0 && ctx.TimeTaken.Seconds() <= 15
	},
	"flawless_ten": func(s *entities.UserStats, _ AttemptContext) bool {
		return s.PerfectSolves >= 10 && s.PerfectSolves == s.Wins
	},
	"achievements_unlocked_10":  unlockedAtLeast(10),
	"achievements_unlocked_25":  unlockedAtLeast(25),
	"achievements_unlocked_50":  unlockedAtLeast(50),
	"achievements_unlocked_100": unlockedAtLeast(100),
}

// unlockedAtLeast counts achievements unlocked before this evaluation.
func unlockedAtLeast(n int) customCheck {
	return func(s *entities.UserStats, _ AttemptContext) bool {
		return len(s.Achievements) >= n
	}
}
