package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/aliskhannn/rebuzzle-bot/internal/infra/postgres"
)

// AchievementRepository stores unlocked achievement ids per user.
type AchievementRepository struct {
	db postgres.DBTX
}

func NewAchievementRepository(db postgres.DBTX) *AchievementRepository {
	return &AchievementRepository{db: db}
}

// List returns unlocked ids in unlock order.
func (r *AchievementRepository) List(ctx context.Context, userID int64) ([]string, error) {
	query := `
		SELECT achievement_id
		FROM user_achievements
		WHERE user_id = $1
		ORDER BY unlocked_at, achievement_id
	`

	rows, err := postgres.Conn(ctx, r.db).Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list achievements: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan achievement: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate achievements: %w", err)
	}
	return ids, nil
}

// Add records ids as unlocked at the given time. Already unlocked ids are kept.
func (r *AchievementRepository) Add(ctx context.Context, userID int64, ids []string, at time.Time) error {
	if len(ids) == 0 {
		return nil
	}

	query := `
		INSERT INTO user_achievements (user_id, achievement_id, unlocked_at)
		SELECT $1, id, $3
		FROM unnest($2::text[]) AS id
		ON CONFLICT (user_id, achievement_id) DO NOTHING
	`

	if _, err := postgres.Conn(ctx, r.db).Exec(ctx, query, userID, ids, at); err != nil {
		return fmt.Errorf("add achievements: %w", err)
	}
	return nil
}
