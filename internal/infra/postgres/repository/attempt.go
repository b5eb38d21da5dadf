package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/aliskhannn/rebuzzle-bot/internal/domain/entities"
	"github.com/aliskhannn/rebuzzle-bot/internal/infra/postgres"
)

var ErrAttemptNotFound = errors.New("puzzle attempt not found")

// AttemptRepository persists per-user puzzle attempts.
type AttemptRepository struct {
	db postgres.DBTX
}

func NewAttemptRepository(db postgres.DBTX) *AttemptRepository {
	return &AttemptRepository{db: db}
}

// Ensure inserts the attempt unless the user already has one for that day.
func (r *AttemptRepository) Ensure(ctx context.Context, a *entities.PuzzleAttempt) error {
	query := `
		INSERT INTO puzzle_attempts (user_id, play_date, puzzle_id, started_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, play_date) DO NOTHING
	`

	if _, err := postgres.Conn(ctx, r.db).Exec(ctx, query,
		a.UserID, entities.DayOf(a.PlayDate), a.PuzzleID, a.StartedAt); err != nil {
		return fmt.Errorf("ensure attempt: %w", err)
	}
	return nil
}

// Get loads the user's attempt for the UTC day of day.
func (r *AttemptRepository) Get(ctx context.Context, userID int64, day time.Time) (*entities.PuzzleAttempt, error) {
	return r.get(ctx, false, userID, day)
}

// GetForUpdate loads the attempt and locks it until the transaction ends.
func (r *AttemptRepository) GetForUpdate(ctx context.Context, userID int64, day time.Time) (*entities.PuzzleAttempt, error) {
	return r.get(ctx, true, userID, day)
}

func (r *AttemptRepository) get(ctx context.Context, lock bool, userID int64, day time.Time) (*entities.PuzzleAttempt, error) {
	query := `
		SELECT user_id, play_date, puzzle_id, attempts, hints_used, solved, score, started_at, finished_at
		FROM puzzle_attempts
		WHERE user_id = $1 AND play_date = $2
	`
	if lock {
		query += " FOR UPDATE"
	}

	var a entities.PuzzleAttempt
	err := postgres.Conn(ctx, r.db).QueryRow(ctx, query, userID, entities.DayOf(day)).Scan(
		&a.UserID,
		&a.PlayDate,
		&a.PuzzleID,
		&a.Attempts,
		&a.HintsUsed,
		&a.Solved,
		&a.Score,
		&a.StartedAt,
		&a.FinishedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrAttemptNotFound
		}
		return nil, fmt.Errorf("get attempt: %w", err)
	}
	return &a, nil
}

// Update writes the mutable attempt fields.
func (r *AttemptRepository) Update(ctx context.Context, a *entities.PuzzleAttempt) error {
	query := `
		UPDATE puzzle_attempts
		SET attempts = $3, hints_used = $4, solved = $5, score = $6, finished_at = $7
		WHERE user_id = $1 AND play_date = $2
	`

	tag, err := postgres.Conn(ctx, r.db).Exec(ctx, query,
		a.UserID, entities.DayOf(a.PlayDate), a.Attempts, a.HintsUsed, a.Solved, a.Score, a.FinishedAt)
	if err != nil {
		return fmt.Errorf("update attempt: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrAttemptNotFound
	}
	return nil
}
