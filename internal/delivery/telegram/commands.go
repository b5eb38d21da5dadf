package telegram

import (
	"context"
	"errors"

	"github.com/aliskhannn/rebuzzle-bot/internal/achievement"
	"github.com/aliskhannn/rebuzzle-bot/internal/service"
)

func (h *Handler) handleStart(userID int64) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		if err := h.send(newHTMLMessage(chatID, welcomeText(h.maxAttempts))); err != nil {
			return err
		}
		return h.handleToday(userID)(ctx, chatID)
	}
}

func (h *Handler) handleToday(userID int64) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		state, err := h.gameService.Today(ctx, userID)
		if err != nil {
			return err
		}

		msg := newHTMLMessage(chatID, renderPuzzle(state))
		if !state.Attempt.Finished() {
			msg.ReplyMarkup = buildPuzzleKeyboard()
		}
		return h.send(msg)
	}
}

func (h *Handler) handleHint(userID int64) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		hint, used, err := h.gameService.RequestHint(ctx, userID)
		switch {
		case errors.Is(err, service.ErrNoHintsLeft):
			return h.send(newHTMLMessage(chatID, msgNoHintsLeft))
		case errors.Is(err, service.ErrPuzzleFinished):
			return h.send(newHTMLMessage(chatID, msgAlreadyFinished))
		case err != nil:
			return err
		}

		return h.send(newHTMLMessage(chatID, renderHint(hint, used)))
	}
}

func (h *Handler) handleGuess(userID int64, text string) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		res, err := h.gameService.SubmitGuess(ctx, userID, text)
		switch {
		case errors.Is(err, service.ErrEmptyGuess):
			return h.send(newHTMLMessage(chatID, msgEmptyGuess))
		case errors.Is(err, service.ErrPuzzleFinished):
			return h.send(newHTMLMessage(chatID, msgAlreadyFinished))
		case err != nil:
			return err
		}

		msg := newHTMLMessage(chatID, renderGuessResult(res))
		if !res.Finished {
			msg.ReplyMarkup = buildPuzzleKeyboard()
		}
		return h.send(msg)
	}
}

func (h *Handler) handleStats(userID int64) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		summary, err := h.statsService.GetStats(ctx, userID)
		if err != nil {
			return err
		}
		return h.send(newHTMLMessage(chatID, renderStats(summary)))
	}
}

func (h *Handler) handleAchievements(userID int64) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		defs, err := h.statsService.Achievements(ctx, userID)
		if err != nil {
			return err
		}
		return h.send(newHTMLMessage(chatID, renderAchievements(defs, len(achievement.All()))))
	}
}

func (h *Handler) handleLeaderboard() HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		entries, err := h.statsService.Leaderboard(ctx, leaderboardSize)
		if err != nil {
			return err
		}
		return h.send(newHTMLMessage(chatID, renderLeaderboard(entries)))
	}
}
