package telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

const (
	callbackHint  = "hint"
	callbackStats = "stats"
)

// buildPuzzleKeyboard is attached to messages of an unfinished puzzle.
func buildPuzzleKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("💡 Hint", callbackHint),
			tgbotapi.NewInlineKeyboardButtonData("📊 Stats", callbackStats),
		),
	)
}

func (h *Handler) handleCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	if _, err := h.sender.Request(tgbotapi.NewCallback(cb.ID, "")); err != nil {
		h.logger.Warn("failed to answer callback", zap.Error(err))
	}

	if cb.Message == nil {
		return
	}
	chatID := cb.Message.Chat.ID

	switch cb.Data {
	case callbackHint:
		_ = h.withErrorHandling(h.handleHint(cb.From.ID))(ctx, chatID)
	case callbackStats:
		_ = h.withErrorHandling(h.handleStats(cb.From.ID))(ctx, chatID)
	default:
		h.logger.Debug("unknown callback", zap.String("data", cb.Data))
	}
}
