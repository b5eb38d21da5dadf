package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/aliskhannn/rebuzzle-bot/internal/domain/entities"
)

type mockUsers struct{ mock.Mock }

func (m *mockUsers) Save(ctx context.Context, user *entities.User) (bool, error) {
	args := m.Called(ctx, user)
	return args.Bool(0), args.Error(1)
}

func (m *mockUsers) GetByID(ctx context.Context, userID int64) (*entities.User, error) {
	args := m.Called(ctx, userID)
	u, _ := args.Get(0).(*entities.User)
	return u, args.Error(1)
}

func (m *mockUsers) ListActive(ctx context.Context, afterID int64, limit int) ([]*entities.User, error) {
	args := m.Called(ctx, afterID, limit)
	users, _ := args.Get(0).([]*entities.User)
	return users, args.Error(1)
}

func (m *mockUsers) Deactivate(ctx context.Context, userID int64) error {
	return m.Called(ctx, userID).Error(0)
}

type mockStats struct{ mock.Mock }

func (m *mockStats) Get(ctx context.Context, userID int64) (*entities.UserStats, error) {
	args := m.Called(ctx, userID)
	s, _ := args.Get(0).(*entities.UserStats)
	return s, args.Error(1)
}

func (m *mockStats) GetForUpdate(ctx context.Context, userID int64) (*entities.UserStats, error) {
	args := m.Called(ctx, userID)
	s, _ := args.Get(0).(*entities.UserStats)
	return s, args.Error(1)
}

func (m *mockStats) Ensure(ctx context.Context, userID int64) error {
	return m.Called(ctx, userID).Error(0)
}

func (m *mockStats) Save(ctx context.Context, stats *entities.UserStats) error {
	return m.Called(ctx, stats).Error(0)
}

func (m *mockStats) ResetLapsedStreaks(ctx context.Context, since time.Time) (int64, error) {
	args := m.Called(ctx, since)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockStats) Rank(ctx context.Context, userID int64) (int, error) {
	args := m.Called(ctx, userID)
	return args.Int(0), args.Error(1)
}

func (m *mockStats) Top(ctx context.Context, limit int) ([]entities.LeaderboardEntry, error) {
	args := m.Called(ctx, limit)
	entries, _ := args.Get(0).([]entities.LeaderboardEntry)
	return entries, args.Error(1)
}

type mockAttempts struct{ mock.Mock }

func (m *mockAttempts) Ensure(ctx context.Context, attempt *entities.PuzzleAttempt) error {
	return m.Called(ctx, attempt).Error(0)
}

func (m *mockAttempts) Get(ctx context.Context, userID int64, day time.Time) (*entities.PuzzleAttempt, error) {
	args := m.Called(ctx, userID, day)
	a, _ := args.Get(0).(*entities.PuzzleAttempt)
	return a, args.Error(1)
}

func (m *mockAttempts) GetForUpdate(ctx context.Context, userID int64, day time.Time) (*entities.PuzzleAttempt, error) {
	args := m.Called(ctx, userID, day)
	a, _ := args.Get(0).(*entities.PuzzleAttempt)
	return a, args.Error(1)
}

func (m *mockAttempts) Update(ctx context.Context, attempt *entities.PuzzleAttempt) error {
	return m.Called(ctx, attempt).Error(0)
}

type mockAchievements struct{ mock.Mock }

func (m *mockAchievements) List(ctx context.Context, userID int64) ([]string, error) {
	args := m.Called(ctx, userID)
	ids, _ := args.Get(0).([]string)
	return ids, args.Error(1)
}

func (m *mockAchievements) Add(ctx context.Context, userID int64, ids []string, at time.Time) error {
	return m.Called(ctx, userID, ids, at).Error(0)
}

type mockNotifier struct{ mock.Mock }

func (m *mockNotifier) AnnouncePuzzle(chatID int64, puzzle *entities.Puzzle) error {
	return m.Called(chatID, puzzle).Error(0)
}

// passthroughTx runs fn with the caller's context.
type passthroughTx struct{}

func (passthroughTx) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// fixedPuzzles always serves the same puzzle.
type fixedPuzzles struct{ puzzle *entities.Puzzle }

func (f fixedPuzzles) GetForDate(time.Time) *entities.Puzzle { return f.puzzle }
