package telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	leaderboardSize = 10

	// maxConcurrentUpdates bounds in-flight updates; a slow judge call
	// holds one slot instead of the whole chat loop.
	maxConcurrentUpdates = 16
)

type Handler struct {
	bot          *tgbotapi.BotAPI
	sender       Sender
	logger       *zap.Logger
	userService  UserService
	gameService  GameService
	statsService StatsService
	maxAttempts  int
}

func NewHandler(
	bot *tgbotapi.BotAPI,
	logger *zap.Logger,
	userService UserService,
	gameService GameService,
	statsService StatsService,
	maxAttempts int,
) *Handler {
	return &Handler{
		bot:          bot,
		sender:       bot,
		logger:       logger,
		userService:  userService,
		gameService:  gameService,
		statsService: statsService,
		maxAttempts:  maxAttempts,
	}
}

func (h *Handler) Run(ctx context.Context) error {
	h.logger.Info("telegram handler started")
	defer h.logger.Info("telegram handler stopped")

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := h.bot.GetUpdatesChan(u)
	defer h.bot.StopReceivingUpdates()

	return h.serve(ctx, updates)
}

// serve dispatches updates to a bounded set of goroutines and waits for the
// in-flight ones before returning.
func (h *Handler) serve(ctx context.Context, updates <-chan tgbotapi.Update) error {
	var g errgroup.Group
	g.SetLimit(maxConcurrentUpdates)

	for {
		select {
		case <-ctx.Done():
			return g.Wait()
		case update, ok := <-updates:
			if !ok {
				return g.Wait()
			}
			g.Go(func() error {
				h.handleUpdate(ctx, update)
				return nil
			})
		}
	}
}

func (h *Handler) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	if update.CallbackQuery != nil {
		h.logger.Debug("callback received",
			zap.Int64("user_id", update.CallbackQuery.From.ID),
			zap.String("data", update.CallbackQuery.Data),
		)
		h.handleCallback(ctx, update.CallbackQuery)
		return
	}

	if update.Message == nil || update.Message.From == nil {
		h.logger.Debug("update without message and callback")
		return
	}

	h.logger.Debug("update received",
		zap.Int64("chat_id", update.Message.Chat.ID),
		zap.String("text", update.Message.Text),
	)

	from := update.Message.From
	chatID := update.Message.Chat.ID

	if _, err := h.userService.EnsureUser(ctx, from.ID, chatID, from.UserName); err != nil {
		h.logger.Error("failed to ensure user",
			zap.Int64("user_id", from.ID),
			zap.Error(err),
		)
	}

	if update.Message.IsCommand() {
		switch update.Message.Command() {
		case "start":
			_ = h.withErrorHandling(h.handleStart(from.ID))(ctx, chatID)
		case "today":
			_ = h.withErrorHandling(h.handleToday(from.ID))(ctx, chatID)
		case "hint":
			_ = h.withErrorHandling(h.handleHint(from.ID))(ctx, chatID)
		case "stats":
			_ = h.withErrorHandling(h.handleStats(from.ID))(ctx, chatID)
		case "achievements":
			_ = h.withErrorHandling(h.handleAchievements(from.ID))(ctx, chatID)
		case "leaderboard":
			_ = h.withErrorHandling(h.handleLeaderboard())(ctx, chatID)
		case "help":
			_ = h.send(newHTMLMessage(chatID, helpText(h.maxAttempts)))
		default:
			_ = h.send(newHTMLMessage(chatID, msgUnknownCommand))
		}
		return
	}

	_ = h.withErrorHandling(h.handleGuess(from.ID, update.Message.Text))(ctx, chatID)
}

func (h *Handler) send(c tgbotapi.Chattable) error {
	if _, err := h.sender.Send(c); err != nil {
		h.logger.Error("failed to send telegram message",
			zap.Error(err),
		)
		return err
	}
	return nil
}
