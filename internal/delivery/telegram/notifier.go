package telegram

import (
	"errors"
	"fmt"
	"net/http"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/aliskhannn/rebuzzle-bot/internal/domain/entities"
	"github.com/aliskhannn/rebuzzle-bot/internal/service"
)

// AnnouncePuzzle implements service.PuzzleNotifier.
func (h *Handler) AnnouncePuzzle(chatID int64, puzzle *entities.Puzzle) error {
	msg := newHTMLMessage(chatID, renderAnnouncement(puzzle))
	msg.ReplyMarkup = buildPuzzleKeyboard()

	if _, err := h.sender.Send(msg); err != nil {
		var apiErr *tgbotapi.Error
		if errors.As(err, &apiErr) && apiErr.Code == http.StatusForbidden {
			return fmt.Errorf("announce to chat %d: %w", chatID, service.ErrRecipientUnavailable)
		}
		return fmt.Errorf("announce to chat %d: %w", chatID, err)
	}
	return nil
}
