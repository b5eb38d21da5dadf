// messages.go contains message templates and formatting functions for Telegram.

package telegram

import (
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/aliskhannn/rebuzzle-bot/internal/domain/entities"
	"github.com/aliskhannn/rebuzzle-bot/internal/service"
)

const (
	msgInternalError   = "Something went wrong. Please try again later."
	msgUnknownCommand  = "Unknown command. Send /help to see what I can do."
	msgNoHintsLeft     = "No more hints for today's puzzle. You've got this! 💪"
	msgAlreadyFinished = "You've already finished today's puzzle. Come back tomorrow for a new one! 🌅"
	msgEmptyGuess      = "Send me your answer as a text message."
)

// esc escapes plain text for HTML parse mode.
func esc(s string) string {
	return tgbotapi.EscapeText(tgbotapi.ModeHTML, s)
}

func newHTMLMessage(chatID int64, text string) tgbotapi.MessageConfig {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	return msg
}

func welcomeText(maxAttempts int) string {
	var sb strings.Builder
	sb.WriteString("👋 <b>Welcome to Rebuzzle!</b>\n\n")
	sb.WriteString("Every day there is a new rebus: a word or phrase hidden in emoji, letters and their layout.\n\n")
	sb.WriteString(rulesText(maxAttempts))
	return sb.String()
}

func helpText(maxAttempts int) string {
	var sb strings.Builder
	sb.WriteString(rulesText(maxAttempts))
	sb.WriteString("\n\n<b>Commands</b>\n")
	sb.WriteString("/today - today's puzzle\n")
	sb.WriteString("/hint - reveal the next hint\n")
	sb.WriteString("/stats - your stats\n")
	sb.WriteString("/achievements - unlocked achievements\n")
	sb.WriteString("/leaderboard - top players\n")
	sb.WriteString("/help - this message")
	return sb.String()
}

func rulesText(maxAttempts int) string {
	return fmt.Sprintf(
		"<b>How to play</b>\n"+
			"Type your answer as a normal message. You have %d attempts.\n"+
			"Small typos, word order and contractions are forgiven.\n"+
			"Solve fast, without hints and on your first try for the best score. "+
			"Come back every day to build your streak! 🔥",
		maxAttempts,
	)
}

func renderPuzzle(state *service.TodayState) string {
	var sb strings.Builder
	p := state.Puzzle

	fmt.Fprintf(&sb, "🧩 <b>Today's Rebuzzle</b> · %s\n\n", esc(difficultyLabel(p.Difficulty)))
	fmt.Fprintf(&sb, "<pre>%s</pre>\n\n", esc(p.Rebus))

	switch {
	case state.Attempt.Finished() && state.Attempt.Solved:
		fmt.Fprintf(&sb, "✅ Solved! The answer was <b>%s</b> (+%d points).", esc(p.Answer), state.Attempt.Score)
	case state.Attempt.Finished():
		fmt.Fprintf(&sb, "❌ Out of attempts. The answer was <b>%s</b>.", esc(p.Answer))
	default:
		fmt.Fprintf(&sb, "Attempts left: <b>%d</b> · Hints left: <b>%d</b>\nSend your guess!",
			state.AttemptsLeft, state.HintsLeft)
	}

	return sb.String()
}

func renderAnnouncement(p *entities.Puzzle) string {
	return fmt.Sprintf(
		"🌅 <b>A new Rebuzzle is here!</b> · %s\n\n<pre>%s</pre>\n\nSend your guess!",
		esc(difficultyLabel(p.Difficulty)),
		esc(p.Rebus),
	)
}

func renderHint(hint string, used int) string {
	return fmt.Sprintf("💡 <b>Hint %d:</b> %s", used, esc(hint))
}

func renderGuessResult(res *service.GuessResult) string {
	var sb strings.Builder
	v := res.Verdict

	switch {
	case v.IsCorrect:
		sb.WriteString("🎉 <b>Correct!</b>")
		if res.Puzzle != nil {
			fmt.Fprintf(&sb, " The answer is <b>%s</b>.", esc(res.Puzzle.Answer))
		}
		sb.WriteString("\n")
		if res.Score != nil {
			sb.WriteString("\n")
			sb.WriteString(renderScore(res.Score))
		}
	case res.Finished:
		sb.WriteString("❌ <b>Not quite, and that was your last attempt.</b>")
		if res.Puzzle != nil {
			fmt.Fprintf(&sb, "\nThe answer was <b>%s</b>.", esc(res.Puzzle.Answer))
			if res.Puzzle.Explanation != "" {
				fmt.Fprintf(&sb, "\n<i>%s</i>", esc(res.Puzzle.Explanation))
			}
		}
		sb.WriteString("\n")
	default:
		sb.WriteString("🤔 <b>Not quite.</b>\n")
		for _, s := range v.Suggestions {
			fmt.Fprintf(&sb, "• %s\n", esc(s))
		}
		fmt.Fprintf(&sb, "Attempts left: <b>%d</b>\n", res.AttemptsLeft)
	}

	if len(res.Unlocked) > 0 {
		sb.WriteString("\n🏆 <b>Achievements unlocked</b>\n")
		for _, a := range res.Unlocked {
			fmt.Fprintf(&sb, "%s <b>%s</b> (+%d): %s\n", a.Icon, esc(a.Name), a.Points, esc(a.Description))
		}
	}

	if res.Stats != nil {
		fmt.Fprintf(&sb, "\n🔥 Streak: <b>%d</b> · ⭐ Points: <b>%d</b> · Level <b>%d</b>",
			res.Stats.Streak, res.Stats.Points, res.Stats.Level)
	}

	return strings.TrimRight(sb.String(), "\n")
}

func renderScore(b *entities.ScoreBreakdown) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Base: %d\n", b.BaseScore)
	if b.SpeedBonus > 0 {
		fmt.Fprintf(&sb, "⚡ Speed: +%d\n", b.SpeedBonus)
	}
	if b.AccuracyPenalty > 0 {
		fmt.Fprintf(&sb, "🎯 Wrong guesses: −%d\n", b.AccuracyPenalty)
	}
	if b.HintPenalty > 0 {
		fmt.Fprintf(&sb, "💡 Hints: −%d\n", b.HintPenalty)
	}
	if b.StreakBonus > 0 {
		fmt.Fprintf(&sb, "🔥 Streak: +%d\n", b.StreakBonus)
	}
	if b.DifficultyBonus > 0 {
		fmt.Fprintf(&sb, "🧠 Difficulty: +%d\n", b.DifficultyBonus)
	}
	fmt.Fprintf(&sb, "<b>Total: %d</b>", b.TotalScore)
	return sb.String()
}

func renderStats(summary *service.StatsSummary) string {
	s := summary.Stats
	var sb strings.Builder

	sb.WriteString("📊 <b>Your stats</b>\n\n")
	fmt.Fprintf(&sb, "⭐ Points: <b>%d</b> (level %d)\n", s.Points, s.Level)
	if summary.Rank > 0 {
		fmt.Fprintf(&sb, "🏅 Rank: <b>#%d</b>\n", summary.Rank)
	}
	fmt.Fprintf(&sb, "🧩 Solved: <b>%d</b> of %d (%.0f%%)\n", s.Wins, s.TotalGames, s.WinRate())
	fmt.Fprintf(&sb, "🔥 Streak: <b>%d</b> (best %d)\n", s.Streak, s.BestStreak)
	fmt.Fprintf(&sb, "📅 Days in a row: <b>%d</b>\n", s.DailyChallengeStreak)
	fmt.Fprintf(&sb, "🎯 Perfect solves: <b>%d</b>\n", s.PerfectSolves)
	fmt.Fprintf(&sb, "🏆 Achievements: <b>%d</b>", len(s.Achievements))

	return sb.String()
}

func renderAchievements(defs []entities.AchievementDefinition, total int) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "🏆 <b>Achievements</b> %d/%d\n", len(defs), total)

	if len(defs) == 0 {
		sb.WriteString("\nNothing unlocked yet. Solve today's puzzle to earn your first!")
		return sb.String()
	}

	sb.WriteString("\n")
	for _, d := range defs {
		fmt.Fprintf(&sb, "%s <b>%s</b> · <i>%s</i>\n%s\n", d.Icon, esc(d.Name), d.Rarity, esc(d.Description))
	}
	return strings.TrimRight(sb.String(), "\n")
}

func renderLeaderboard(entries []entities.LeaderboardEntry) string {
	if len(entries) == 0 {
		return "🏅 <b>Leaderboard</b>\n\nNo players yet. Be the first!"
	}

	var sb strings.Builder
	sb.WriteString("🏅 <b>Leaderboard</b>\n\n")
	for _, e := range entries {
		name := e.Username
		if name == "" {
			name = fmt.Sprintf("player %d", e.UserID)
		}
		fmt.Fprintf(&sb, "%s %s · <b>%d</b> pts · 🔥%d\n", rankBadge(e.Rank), esc(name), e.Points, e.Streak)
	}
	return strings.TrimRight(sb.String(), "\n")
}

func rankBadge(rank int) string {
	switch rank {
	case 1:
		return "🥇"
	case 2:
		return "🥈"
	case 3:
		return "🥉"
	default:
		return fmt.Sprintf("%d.", rank)
	}
}

func difficultyLabel(level int) string {
	switch {
	case level <= 3:
		return "easy"
	case level <= 6:
		return "medium"
	case level <= 8:
		return "hard"
	default:
		return "expert"
	}
}
