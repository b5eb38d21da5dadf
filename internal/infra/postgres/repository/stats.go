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

var ErrStatsNotFound = errors.New("user stats not found")

const statsColumns = `
	user_id, points, level, streak, best_streak, daily_challenge_streak,
	total_games, wins, perfect_solves, hintless_solves, speed_solves,
	last_attempt_solves, hints_used, last_play_date`

// StatsRepository persists cumulative player stats.
type StatsRepository struct {
	db postgres.DBTX
}

func NewStatsRepository(db postgres.DBTX) *StatsRepository {
	return &StatsRepository{db: db}
}

// Get loads stats without achievements.
func (r *StatsRepository) Get(ctx context.Context, userID int64) (*entities.UserStats, error) {
	return r.get(ctx, `SELECT `+statsColumns+` FROM user_stats WHERE user_id = $1`, userID)
}

// GetForUpdate loads stats and locks the row until the transaction ends.
func (r *StatsRepository) GetForUpdate(ctx context.Context, userID int64) (*entities.UserStats, error) {
	return r.get(ctx, `SELECT `+statsColumns+` FROM user_stats WHERE user_id = $1 FOR UPDATE`, userID)
}

func (r *StatsRepository) get(ctx context.Context, query string, userID int64) (*entities.UserStats, error) {
	var s entities.UserStats
	err := postgres.Conn(ctx, r.db).QueryRow(ctx, query, userID).Scan(
		&s.UserID,
		&s.Points,
		&s.Level,
		&s.Streak,
		&s.BestStreak,
		&s.DailyChallengeStreak,
		&s.TotalGames,
		&s.Wins,
		&s.PerfectSolves,
		&s.HintlessSolves,
		&s.SpeedSolves,
		&s.LastAttemptSolves,
		&s.HintsUsed,
		&s.LastPlayDate,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrStatsNotFound
		}
		return nil, fmt.Errorf("get stats: %w", err)
	}
	return &s, nil
}

// Ensure creates an empty stats row if none exists.
func (r *StatsRepository) Ensure(ctx context.Context, userID int64) error {
	_, err := postgres.Conn(ctx, r.db).Exec(ctx,
		`INSERT INTO user_stats (user_id) VALUES ($1) ON CONFLICT (user_id) DO NOTHING`, userID)
	if err != nil {
		return fmt.Errorf("ensure stats: %w", err)
	}
	return nil
}

// Save upserts the stats row. Achievements are stored separately.
func (r *StatsRepository) Save(ctx context.Context, s *entities.UserStats) error {
	query := `
		INSERT INTO user_stats (` + statsColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		ON CONFLICT (user_id) DO UPDATE SET
			points = EXCLUDED.points,
			level = EXCLUDED.level,
			streak = EXCLUDED.streak,
			best_streak = EXCLUDED.best_streak,
			daily_challenge_streak = EXCLUDED.daily_challenge_streak,
			total_games = EXCLUDED.total_games,
			wins = EXCLUDED.wins,
			perfect_solves = EXCLUDED.perfect_solves,
			hintless_solves = EXCLUDED.hintless_solves,
			speed_solves = EXCLUDED.speed_solves,
			last_attempt_solves = EXCLUDED.last_attempt_solves,
			hints_used = EXCLUDED.hints_used,
			last_play_date = EXCLUDED.last_play_date
	`

	_, err := postgres.Conn(ctx, r.db).Exec(ctx, query,
		s.UserID,
		s.Points,
		s.Level,
		s.Streak,
		s.BestStreak,
		s.DailyChallengeStreak,
		s.TotalGames,
		s.Wins,
		s.PerfectSolves,
		s.HintlessSolves,
		s.SpeedSolves,
		s.LastAttemptSolves,
		s.HintsUsed,
		s.LastPlayDate,
	)
	if err != nil {
		return fmt.Errorf("save stats: %w", err)
	}
	return nil
}

// ResetLapsedStreaks zeroes streaks of players whose last play is before since.
func (r *StatsRepository) ResetLapsedStreaks(ctx context.Context, since time.Time) (int64, error) {
	query := `
		UPDATE user_stats
		SET streak = 0, daily_challenge_streak = 0
		WHERE last_play_date < $1
		  AND (streak > 0 OR daily_challenge_streak > 0)
	`

	tag, err := postgres.Conn(ctx, r.db).Exec(ctx, query, since)
	if err != nil {
		return 0, fmt.Errorf("reset lapsed streaks: %w", err)
	}
	return tag.RowsAffected(), nil
}

// Rank returns the 1-based leaderboard position of the user by points.
func (r *StatsRepository) Rank(ctx context.Context, userID int64) (int, error) {
	query := `
		SELECT 1 + COUNT(*)
		FROM user_stats
		WHERE points > (SELECT points FROM user_stats WHERE user_id = $1)
	`

	var rank int
	if err := postgres.Conn(ctx, r.db).QueryRow(ctx, query, userID).Scan(&rank); err != nil {
		return 0, fmt.Errorf("rank user: %w", err)
	}
	return rank, nil
}

// Top returns the leaderboard head ordered by points.
func (r *StatsRepository) Top(ctx context.Context, limit int) ([]entities.LeaderboardEntry, error) {
	query := `
		SELECT RANK() OVER (ORDER BY s.points DESC) AS rank,
		       s.user_id, u.username, s.points, s.level, s.streak
		FROM user_stats s
		JOIN users u ON u.id = s.user_id
		ORDER BY s.points DESC, s.user_id
		LIMIT $1
	`

	rows, err := postgres.Conn(ctx, r.db).Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("leaderboard: %w", err)
	}
	defer rows.Close()

	var entries []entities.LeaderboardEntry
	for rows.Next() {
		var e entities.LeaderboardEntry
		if err := rows.Scan(&e.Rank, &e.UserID, &e.Username, &e.Points, &e.Level, &e.Streak); err != nil {
			return nil, fmt.Errorf("scan leaderboard: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate leaderboard: %w", err)
	}
	return entries, nil
}
