package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/aliskhannn/rebuzzle-bot/internal/achievement"
	"github.com/aliskhannn/rebuzzle-bot/internal/domain/entities"
	"github.com/aliskhannn/rebuzzle-bot/internal/infra/postgres/repository"
	"github.com/aliskhannn/rebuzzle-bot/internal/scoring"
	"github.com/aliskhannn/rebuzzle-bot/internal/validation"
)

var (
	ErrPuzzleFinished = errors.New("puzzle already finished")
	ErrEmptyGuess     = errors.New("empty guess")
	ErrNoHintsLeft    = errors.New("no hints left")
)

// GameConfig is the game section of the application config.
type GameConfig struct {
	MaxAttempts       int     `mapstructure:"max_attempts"`
	SpeedSolveSeconds float64 `mapstructure:"speed_solve_seconds"` // solves at or under count as speed solves
	UseAI             bool    `mapstructure:"use_ai"`
}

func DefaultGameConfig() GameConfig {
	return GameConfig{
		MaxAttempts:       3,
		SpeedSolveSeconds: 60,
		UseAI:             true,
	}
}

// GuessResult is the outcome of one submitted guess.
type GuessResult struct {
	Puzzle       *entities.Puzzle
	Verdict      entities.ValidationVerdict
	Finished     bool
	AttemptsLeft int
	Score        *entities.ScoreBreakdown // set when solved
	Unlocked     []entities.AchievementDefinition
	Stats        *entities.UserStats // set when finished
}

// TodayState is today's puzzle together with the user's progress on it.
type TodayState struct {
	Puzzle       *entities.Puzzle
	Attempt      *entities.PuzzleAttempt
	AttemptsLeft int
	HintsLeft    int
}

type GameService struct {
	cfg          GameConfig
	puzzles      PuzzleRepository
	attempts     AttemptRepository
	stats        StatsRepository
	achievements AchievementRepository
	tr           Transactor
	validator    AnswerValidator
	scorer       *scoring.Engine
	evaluator    *achievement.Evaluator
	logger       *zap.Logger
	now          func() time.Time
}

func NewGameService(
	cfg GameConfig,
	puzzles PuzzleRepository,
	attempts AttemptRepository,
	stats StatsRepository,
	achievements AchievementRepository,
	tr Transactor,
	validator AnswerValidator,
	scorer *scoring.Engine,
	evaluator *achievement.Evaluator,
	logger *zap.Logger,
) *GameService {
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = DefaultGameConfig().MaxAttempts
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GameService{
		cfg:          cfg,
		puzzles:      puzzles,
		attempts:     attempts,
		stats:        stats,
		achievements: achievements,
		tr:           tr,
		validator:    validator,
		scorer:       scorer,
		evaluator:    evaluator,
		logger:       logger,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// Today returns today's puzzle and starts the user's clock on it.
func (s *GameService) Today(ctx context.Context, userID int64) (*TodayState, error) {
	now := s.now()
	puzzle := s.puzzles.GetForDate(now)

	if err := s.attempts.Ensure(ctx, entities.NewPuzzleAttempt(userID, puzzle.ID, now)); err != nil {
		return nil, err
	}
	attempt, err := s.attempts.Get(ctx, userID, entities.DayOf(now))
	if err != nil {
		return nil, err
	}

	return &TodayState{
		Puzzle:       puzzle,
		Attempt:      attempt,
		AttemptsLeft: attempt.AttemptsLeft(s.cfg.MaxAttempts),
		HintsLeft:    max(0, len(puzzle.Hints)-attempt.HintsUsed),
	}, nil
}

// RequestHint reveals the next hint of today's puzzle.
func (s *GameService) RequestHint(ctx context.Context, userID int64) (string, int, error) {
	now := s.now()
	puzzle := s.puzzles.GetForDate(now)

	var hint string
	var used int
	err := s.tr.WithinTx(ctx, func(ctx context.Context) error {
		attempt, err := s.lockAttempt(ctx, userID, puzzle.ID, now)
		if err != nil {
			return err
		}
		if attempt.Finished() {
			return ErrPuzzleFinished
		}
		if attempt.HintsUsed >= len(puzzle.Hints) {
			return ErrNoHintsLeft
		}

		hint = puzzle.Hints[attempt.HintsUsed]
		attempt.HintsUsed++
		used = attempt.HintsUsed
		return s.attempts.Update(ctx, attempt)
	})
	if err != nil {
		return "", 0, err
	}

	return hint, used, nil
}

// SubmitGuess validates a guess against today's puzzle and, when the puzzle
// ends, updates stats, score and achievements in one transaction.
func (s *GameService) SubmitGuess(ctx context.Context, userID int64, text string) (*GuessResult, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyGuess
	}

	now := s.now()
	puzzle := s.puzzles.GetForDate(now)

	// The judge may be slow, so validate before taking row locks.
	existing, err := s.attempts.Get(ctx, userID, entities.DayOf(now))
	switch {
	case errors.Is(err, repository.ErrAttemptNotFound):
	case err != nil:
		return nil, err
	case existing.Finished():
		return nil, ErrPuzzleFinished
	}

	verdict := s.validator.Validate(ctx, entities.GuessAttempt{
		Text:          text,
		CorrectAnswer: puzzle.Answer,
		PuzzleContext: puzzle.Rebus,
		Explanation:   puzzle.Explanation,
	}, validation.ValidateOptions{UseAI: s.cfg.UseAI})

	result := &GuessResult{Puzzle: puzzle, Verdict: verdict}

	err = s.tr.WithinTx(ctx, func(ctx context.Context) error {
		attempt, err := s.lockAttempt(ctx, userID, puzzle.ID, now)
		if err != nil {
			return err
		}
		if attempt.Finished() {
			return ErrPuzzleFinished
		}
		attempt.Attempts++

		if verdict.IsCorrect || attempt.Attempts >= s.cfg.MaxAttempts {
			if err := s.finish(ctx, puzzle, attempt, result, now); err != nil {
				return err
			}
		}

		result.AttemptsLeft = attempt.AttemptsLeft(s.cfg.MaxAttempts)
		return s.attempts.Update(ctx, attempt)
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (s *GameService) lockAttempt(
	ctx context.Context, userID int64, puzzleID string, now time.Time,
) (*entities.PuzzleAttempt, error) {
	if err := s.attempts.Ensure(ctx, entities.NewPuzzleAttempt(userID, puzzleID, now)); err != nil {
		return nil, err
	}
	return s.attempts.GetForUpdate(ctx, userID, entities.DayOf(now))
}

// finish closes the attempt as a win or loss and applies it to the stats.
func (s *GameService) finish(
	ctx context.Context,
	puzzle *entities.Puzzle,
	attempt *entities.PuzzleAttempt,
	result *GuessResult,
	now time.Time,
) error {
	solved := result.Verdict.IsCorrect

	if err := s.stats.Ensure(ctx, attempt.UserID); err != nil {
		return err
	}
	stats, err := s.stats.GetForUpdate(ctx, attempt.UserID)
	if err != nil {
		return fmt.Errorf("load stats: %w", err)
	}
	if stats.Achievements, err = s.achievements.List(ctx, attempt.UserID); err != nil {
		return err
	}

	elapsed := now.Sub(attempt.StartedAt)
	wrong := attempt.Attempts
	if solved {
		wrong--
	}

	stats.RecordGame(entities.GameOutcome{
		Solved:         solved,
		WrongAttempts:  wrong,
		HintsUsed:      attempt.HintsUsed,
		Fast:           solved && elapsed.Seconds() <= s.cfg.SpeedSolveSeconds,
		WasLastAttempt: attempt.Attempts == s.cfg.MaxAttempts,
	}, now)

	score := 0
	if solved {
		breakdown := s.scorer.Calculate(entities.ScoreInput{
			TimeTakenSeconds: elapsed.Seconds(),
			WrongAttempts:    wrong,
			HintsUsed:        attempt.HintsUsed,
			StreakDays:       stats.Streak,
			DifficultyLevel:  puzzle.Difficulty,
		})
		score = breakdown.TotalScore
		result.Score = &breakdown
		stats.Points += score
		stats.Level = s.scorer.Level(stats.Points)
	}
	attempt.Finish(solved, score, now)

	if err := s.stats.Save(ctx, stats); err != nil {
		return err
	}

	rank, err := s.stats.Rank(ctx, attempt.UserID)
	if err != nil {
		return err
	}

	unlocked := s.evaluator.Evaluate(*stats, achievement.AttemptContext{
		Solved:              solved,
		TimeTaken:           elapsed,
		HintsUsed:           attempt.HintsUsed,
		AttemptNumber:       attempt.Attempts,
		WasLastAttempt:      attempt.Attempts == s.cfg.MaxAttempts,
		At:                  now,
		LeaderboardPosition: rank,
	})

	if len(unlocked) > 0 {
		ids := make([]string, 0, len(unlocked))
		for _, a := range unlocked {
			ids = append(ids, a.ID)
			stats.Points += a.Points
		}
		stats.Level = s.scorer.Level(stats.Points)
		stats.Unlock(ids...)

		if err := s.achievements.Add(ctx, attempt.UserID, ids, now); err != nil {
			return err
		}
		if err := s.stats.Save(ctx, stats); err != nil {
			return err
		}

		s.logger.Info("achievements unlocked",
			zap.Int64("user_id", attempt.UserID),
			zap.Strings("ids", ids),
		)
	}

	result.Finished = true
	result.Unlocked = unlocked
	result.Stats = stats
	return nil
}
