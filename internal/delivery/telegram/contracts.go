package telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/aliskhannn/rebuzzle-bot/internal/domain/entities"
	"github.com/aliskhannn/rebuzzle-bot/internal/service"
)

type UserService interface {
	EnsureUser(ctx context.Context, userID, chatID int64, username string) (bool, error)
}

type GameService interface {
	Today(ctx context.Context, userID int64) (*service.TodayState, error)
	RequestHint(ctx context.Context, userID int64) (string, int, error)
	SubmitGuess(ctx context.Context, userID int64, text string) (*service.GuessResult, error)
}

type StatsService interface {
	GetStats(ctx context.Context, userID int64) (*service.StatsSummary, error)
	Leaderboard(ctx context.Context, limit int) ([]entities.LeaderboardEntry, error)
	Achievements(ctx context.Context, userID int64) ([]entities.AchievementDefinition, error)
}

// Sender is the part of *tgbotapi.BotAPI used to reply.
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}
