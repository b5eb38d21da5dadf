package entities

import (
	"slices"
	"time"
)

// UserStats is the cumulative record of a player.
// It is created on first play and mutated after every finished puzzle.
type UserStats struct {
	UserID               int64
	Points               int
	Level                int
	Streak               int // consecutive days solved
	BestStreak           int
	DailyChallengeStreak int // consecutive days played, win or loss
	TotalGames           int
	Wins                 int
	PerfectSolves        int // solved on the first guess without hints
	HintlessSolves       int
	SpeedSolves          int
	LastAttemptSolves    int // solved on the final allowed guess after misses
	HintsUsed            int
	LastPlayDate         *time.Time
	Achievements         []string
}

// NewUserStats creates an empty stats record.
func NewUserStats(userID int64) *UserStats {
	return &UserStats{
		UserID: userID,
		Level:  1,
	}
}

// GameOutcome describes a finished puzzle for stats bookkeeping.
type GameOutcome struct {
	Solved         bool
	WrongAttempts  int
	HintsUsed      int
	Fast           bool // solved under the speed-solve threshold
	WasLastAttempt bool
}

// RecordGame applies a finished puzzle to the stats.
// Days are compared in UTC: a win the day after the previous play extends the
// streak, a win after a gap restarts it at 1, and a loss resets it to 0.
func (s *UserStats) RecordGame(o GameOutcome, at time.Time) {
	playedToday, playedYesterday := s.lastPlayRelativeTo(at)

	switch {
	case playedToday:
		s.DailyChallengeStreak = max(1, s.DailyChallengeStreak)
	case playedYesterday:
		s.DailyChallengeStreak++
	default:
		s.DailyChallengeStreak = 1
	}

	s.TotalGames++
	s.HintsUsed += o.HintsUsed

	if o.Solved {
		s.Wins++

		switch {
		case playedToday:
			s.Streak = max(1, s.Streak)
		case playedYesterday:
			s.Streak++
		default:
			s.Streak = 1
		}
		s.BestStreak = max(s.BestStreak, s.Streak)

		if o.HintsUsed == 0 {
			s.HintlessSolves++
			if o.WrongAttempts == 0 {
				s.PerfectSolves++
			}
		}
		if o.Fast {
			s.SpeedSolves++
		}
		if o.WasLastAttempt && o.WrongAttempts > 0 {
			s.LastAttemptSolves++
		}
	} else {
		s.Streak = 0
	}

	t := at.UTC()
	s.LastPlayDate = &t
}

// StreakLapsed reports whether a whole day passed without play before now.
func (s *UserStats) StreakLapsed(now time.Time) bool {
	if s.LastPlayDate == nil {
		return false
	}
	playedToday, playedYesterday := s.lastPlayRelativeTo(now)
	return !playedToday && !playedYesterday
}

// WinRate returns wins/totalGames as a percentage.
func (s *UserStats) WinRate() float64 {
	if s.TotalGames == 0 {
		return 0
	}
	return float64(s.Wins) / float64(s.TotalGames) * 100
}

// HasAchievement reports whether id is already unlocked.
func (s *UserStats) HasAchievement(id string) bool {
	return slices.Contains(s.Achievements, id)
}

// Unlock adds ids that are not yet unlocked.
func (s *UserStats) Unlock(ids ...string) {
	for _, id := range ids {
		if !s.HasAchievement(id) {
			s.Achievements = append(s.Achievements, id)
		}
	}
}

func (s *UserStats) lastPlayRelativeTo(at time.Time) (today, yesterday bool) {
	if s.LastPlayDate == nil {
		return false, false
	}
	day := DayOf(at)
	last := DayOf(*s.LastPlayDate)
	return last.Equal(day), last.Equal(day.AddDate(0, 0, -1))
}

// DayOf truncates t to midnight UTC.
func DayOf(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}
