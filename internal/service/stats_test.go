package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/aliskhannn/rebuzzle-bot/internal/domain/entities"
	"github.com/aliskhannn/rebuzzle-bot/internal/infra/postgres/repository"
)

func TestStatsService_GetStats(t *testing.T) {
	t.Parallel()

	stats := &mockStats{}
	achievements := &mockAchievements{}
	svc := NewStatsService(stats, achievements)

	s := entities.NewUserStats(7)
	s.Points = 4200
	stats.On("Get", mock.Anything, int64(7)).Return(s, nil).Once()
	stats.On("Rank", mock.Anything, int64(7)).Return(3, nil).Once()
	achievements.On("List", mock.Anything, int64(7)).Return([]string{"puzzles_solved_1"}, nil).Once()

	got, err := svc.GetStats(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, 3, got.Rank)
	assert.Equal(t, 4200, got.Stats.Points)
	assert.Equal(t, []string{"puzzles_solved_1"}, got.Stats.Achievements)

	stats.AssertExpectations(t)
	achievements.AssertExpectations(t)
}

func TestStatsService_GetStatsNewPlayer(t *testing.T) {
	t.Parallel()

	stats := &mockStats{}
	svc := NewStatsService(stats, &mockAchievements{})
	stats.On("Get", mock.Anything, int64(9)).Return(nil, repository.ErrStatsNotFound).Once()

	got, err := svc.GetStats(context.Background(), 9)
	require.NoError(t, err)
	assert.Zero(t, got.Rank)
	assert.Equal(t, 1, got.Stats.Level)
	assert.Zero(t, got.Stats.Points)
}

func TestStatsService_Achievements(t *testing.T) {
	t.Parallel()

	achievements := &mockAchievements{}
	svc := NewStatsService(&mockStats{}, achievements)
	achievements.On("List", mock.Anything, int64(1)).
		Return([]string{"puzzles_solved_1", "retired_badge", "night_owl"}, nil).Once()

	defs, err := svc.Achievements(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, defs, 2)
	assert.Equal(t, "First Steps", defs[0].Name)
	assert.Equal(t, "night_owl", defs[1].ID)
}

func TestStatsService_LeaderboardDefaultLimit(t *testing.T) {
	t.Parallel()

	stats := &mockStats{}
	svc := NewStatsService(stats, &mockAchievements{})
	top := []entities.LeaderboardEntry{{Rank: 1, UserID: 2, Username: "bob", Points: 9000}}
	stats.On("Top", mock.Anything, 10).Return(top, nil).Once()

	got, err := svc.Leaderboard(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, top, got)
	stats.AssertExpectations(t)
}
