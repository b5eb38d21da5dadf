package service

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/aliskhannn/rebuzzle-bot/internal/domain/entities"
)

const (
	announceBatchSize     = 100
	announceMaxConcurrent = 10
)

// ErrRecipientUnavailable is returned by notifiers when the chat can no
// longer receive messages, e.g. the user blocked the bot.
var ErrRecipientUnavailable = errors.New("recipient unavailable")

// SchedulerConfig is the scheduler section of the application config.
type SchedulerConfig struct {
	DailyCron string `mapstructure:"daily_cron"`
}

// DailyService rolls the game over to a new day: it resets lapsed streaks
// and announces the new puzzle.
type DailyService struct {
	cfg      SchedulerConfig
	users    UserRepository
	stats    StatsRepository
	puzzles  PuzzleRepository
	notifier PuzzleNotifier
	logger   *zap.Logger
	now      func() time.Time
}

func NewDailyService(
	cfg SchedulerConfig,
	users UserRepository,
	stats StatsRepository,
	puzzles PuzzleRepository,
	logger *zap.Logger,
) *DailyService {
	return &DailyService{
		cfg:     cfg,
		users:   users,
		stats:   stats,
		puzzles: puzzles,
		logger:  logger,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// SetNotifier sets the notifier (called after handler is created).
func (s *DailyService) SetNotifier(notifier PuzzleNotifier) {
	s.notifier = notifier
}

// Start runs the daily job on the configured schedule until ctx is done.
func (s *DailyService) Start(ctx context.Context) error {
	c := cron.New(cron.WithLocation(time.UTC))

	_, err := c.AddFunc(s.cfg.DailyCron, func() {
		s.logger.Info("cron triggered: daily rollover")
		if err := s.RunDaily(ctx); err != nil {
			s.logger.Error("daily rollover failed", zap.Error(err))
		}
	})
	if err != nil {
		return fmt.Errorf("add cron job %q: %w", s.cfg.DailyCron, err)
	}

	c.Start()
	s.logger.Info("daily scheduler started", zap.String("spec", s.cfg.DailyCron))

	<-ctx.Done()

	<-c.Stop().Done()
	s.logger.Info("daily scheduler stopped")
	return nil
}

// RunDaily resets lapsed streaks and announces today's puzzle.
func (s *DailyService) RunDaily(ctx context.Context) error {
	now := s.now()

	reset, err := s.stats.ResetLapsedStreaks(ctx, entities.DayOf(now).AddDate(0, 0, -1))
	if err != nil {
		return err
	}
	s.logger.Info("lapsed streaks reset", zap.Int64("users", reset))

	if s.notifier == nil {
		return fmt.Errorf("notifier not initialized")
	}

	puzzle := s.puzzles.GetForDate(now)
	var afterID int64
	total := 0

	for {
		users, err := s.users.ListActive(ctx, afterID, announceBatchSize)
		if err != nil {
			return fmt.Errorf("list active users: %w", err)
		}
		if len(users) == 0 {
			break
		}

		total += s.announceBatch(ctx, users, puzzle)

		if len(users) < announceBatchSize {
			break
		}
		afterID = users[len(users)-1].ID
	}

	s.logger.Info("daily puzzle announced",
		zap.String("puzzle_id", puzzle.ID),
		zap.Int("sent", total),
	)
	return nil
}

// announceBatch sends to a batch of users concurrently and returns the number
// of successful sends.
func (s *DailyService) announceBatch(ctx context.Context, users []*entities.User, puzzle *entities.Puzzle) int {
	var sent atomic.Int64
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(announceMaxConcurrent)

	for _, u := range users {
		g.Go(func() error {
			if ctx.Err() != nil {
				return nil
			}
			if err := s.notifier.AnnouncePuzzle(u.ChatID, puzzle); err != nil {
				if errors.Is(err, ErrRecipientUnavailable) {
					if err := s.users.Deactivate(ctx, u.ID); err != nil {
						s.logger.Error("failed to deactivate user", zap.Int64("user_id", u.ID), zap.Error(err))
					}
				}
				s.logger.Warn("failed to announce puzzle",
					zap.Int64("user_id", u.ID),
					zap.Error(err),
				)
				return nil
			}
			sent.Add(1)
			return nil
		})
	}

	_ = g.Wait()
	return int(sent.Load())
}
