package service

import (
	"context"
	"fmt"

	"github.com/aliskhannn/rebuzzle-bot/internal/domain/entities"
)

type UserService struct {
	users UserRepository
	stats StatsRepository
}

func NewUserService(users UserRepository, stats StatsRepository) *UserService {
	return &UserService{users: users, stats: stats}
}

// EnsureUser registers the user or refreshes their chat and username.
// It reports whether the user is new.
func (s *UserService) EnsureUser(ctx context.Context, userID, chatID int64, username string) (bool, error) {
	created, err := s.users.Save(ctx, entities.NewUser(userID, chatID, username))
	if err != nil {
		return false, err
	}
	if err := s.stats.Ensure(ctx, userID); err != nil {
		return false, fmt.Errorf("ensure stats: %w", err)
	}
	return created, nil
}

// Deactivate stops announcements to a user who blocked the bot.
func (s *UserService) Deactivate(ctx context.Context, userID int64) error {
	return s.users.Deactivate(ctx, userID)
}
