package service

import (
	"context"
	"errors"

	"github.com/aliskhannn/rebuzzle-bot/internal/achievement"
	"github.com/aliskhannn/rebuzzle-bot/internal/domain/entities"
	"github.com/aliskhannn/rebuzzle-bot/internal/infra/postgres/repository"
)

// StatsSummary is a player's stats with their leaderboard position.
type StatsSummary struct {
	Stats *entities.UserStats
	Rank  int // 0 when the player has no stats yet
}

type StatsService struct {
	stats        StatsRepository
	achievements AchievementRepository
}

func NewStatsService(stats StatsRepository, achievements AchievementRepository) *StatsService {
	return &StatsService{stats: stats, achievements: achievements}
}

// GetStats returns the player's stats, or empty stats for a new player.
func (s *StatsService) GetStats(ctx context.Context, userID int64) (*StatsSummary, error) {
	stats, err := s.stats.Get(ctx, userID)
	if errors.Is(err, repository.ErrStatsNotFound) {
		return &StatsSummary{Stats: entities.NewUserStats(userID)}, nil
	}
	if err != nil {
		return nil, err
	}

	if stats.Achievements, err = s.achievements.List(ctx, userID); err != nil {
		return nil, err
	}

	rank, err := s.stats.Rank(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &StatsSummary{Stats: stats, Rank: rank}, nil
}

// Leaderboard returns the top players by points.
func (s *StatsService) Leaderboard(ctx context.Context, limit int) ([]entities.LeaderboardEntry, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.stats.Top(ctx, limit)
}

// Achievements returns the definitions the player has unlocked, in unlock order.
func (s *StatsService) Achievements(ctx context.Context, userID int64) ([]entities.AchievementDefinition, error) {
	ids, err := s.achievements.List(ctx, userID)
	if err != nil {
		return nil, err
	}

	defs := make([]entities.AchievementDefinition, 0, len(ids))
	for _, id := range ids {
		if def, ok := achievement.Lookup(id); ok {
			defs = append(defs, def)
		}
	}
	return defs, nil
}
