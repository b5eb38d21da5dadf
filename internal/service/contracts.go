package service

import (
	"context"
	"time"

	"github.com/aliskhannn/rebuzzle-bot/internal/domain/entities"
	"github.com/aliskhannn/rebuzzle-bot/internal/validation"
)

type UserRepository interface {
	Save(ctx context.Context, user *entities.User) (bool, error)
	GetByID(ctx context.Context, userID int64) (*entities.User, error)
	ListActive(ctx context.Context, afterID int64, limit int) ([]*entities.User, error)
	Deactivate(ctx context.Context, userID int64) error
}

type StatsRepository interface {
	Get(ctx context.Context, userID int64) (*entities.UserStats, error)
	GetForUpdate(ctx context.Context, userID int64) (*entities.UserStats, error)
	Ensure(ctx context.Context, userID int64) error
	Save(ctx context.Context, stats *entities.UserStats) error
	ResetLapsedStreaks(ctx context.Context, since time.Time) (int64, error)
	Rank(ctx context.Context, userID int64) (int, error)
	Top(ctx context.Context, limit int) ([]entities.LeaderboardEntry, error)
}

type AttemptRepository interface {
	Ensure(ctx context.Context, attempt *entities.PuzzleAttempt) error
	Get(ctx context.Context, userID int64, day time.Time) (*entities.PuzzleAttempt, error)
	GetForUpdate(ctx context.Context, userID int64, day time.Time) (*entities.PuzzleAttempt, error)
	Update(ctx context.Context, attempt *entities.PuzzleAttempt) error
}

type AchievementRepository interface {
	List(ctx context.Context, userID int64) ([]string, error)
	Add(ctx context.Context, userID int64, ids []string, at time.Time) error
}

type PuzzleRepository interface {
	GetForDate(t time.Time) *entities.Puzzle
}

// Transactor runs fn in a database transaction bound to the passed context.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// AnswerValidator decides whether a guess matches the answer.
type AnswerValidator interface {
	Validate(ctx context.Context, attempt entities.GuessAttempt, opts validation.ValidateOptions) entities.ValidationVerdict
}

// PuzzleNotifier announces the daily puzzle to a chat.
type PuzzleNotifier interface {
	AnnouncePuzzle(chatID int64, puzzle *entities.Puzzle) error
}
