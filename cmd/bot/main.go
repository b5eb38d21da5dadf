package main

import (
	"context"
	"errors"
	"log"
	"os/signal"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/aliskhannn/rebuzzle-bot/internal/achievement"
	"github.com/aliskhannn/rebuzzle-bot/internal/config"
	"github.com/aliskhannn/rebuzzle-bot/internal/delivery/telegram"
	"github.com/aliskhannn/rebuzzle-bot/internal/infra/postgres"
	"github.com/aliskhannn/rebuzzle-bot/internal/infra/postgres/repository"
	"github.com/aliskhannn/rebuzzle-bot/internal/infra/valkey"
	"github.com/aliskhannn/rebuzzle-bot/internal/judge"
	"github.com/aliskhannn/rebuzzle-bot/internal/logger"
	puzzlerepo "github.com/aliskhannn/rebuzzle-bot/internal/repository"
	"github.com/aliskhannn/rebuzzle-bot/internal/scoring"
	"github.com/aliskhannn/rebuzzle-bot/internal/service"
	"github.com/aliskhannn/rebuzzle-bot/internal/validation"
)

func main() {
	// .env is optional; real deployments pass variables directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	lg, err := logger.New(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = lg.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, lg); err != nil {
		lg.Fatal("bot stopped with error", zap.Error(err))
	}
	lg.Info("shutdown complete")
}

func run(ctx context.Context, cfg *config.Config, lg *zap.Logger) error {
	dsn, err := cfg.DB.DSN()
	if err != nil {
		return err
	}

	if err := postgres.MigrateUp(dsn, lg); err != nil {
		return err
	}

	pool, err := postgres.NewPool(ctx, dsn, postgres.PoolConfig{
		MaxConns:          cfg.DB.MaxConnections,
		MinConns:          cfg.DB.MinConnections,
		MaxConnLifetime:   cfg.DB.MaxConnLifetime,
		HealthCheckPeriod: cfg.DB.HealthCheckPeriod,
	})
	if err != nil {
		return err
	}
	defer pool.Close()

	puzzles, err := puzzlerepo.NewPuzzleRepository(cfg.PuzzlesJSONPath)
	if err != nil {
		return err
	}
	lg.Info("puzzle catalogue loaded", zap.Int("puzzles", puzzles.Len()))

	answerJudge, closeJudge, err := newJudge(ctx, cfg, lg)
	if err != nil {
		return err
	}
	defer closeJudge()

	// Initialize repositories.
	userRepo := repository.NewUserRepository(pool)
	statsRepo := repository.NewStatsRepository(pool)
	attemptRepo := repository.NewAttemptRepository(pool)
	achievementRepo := repository.NewAchievementRepository(pool)
	transactor := postgres.NewTransactor(pool)

	// Initialize services.
	validator := validation.NewValidator(cfg.Validation, answerJudge, lg.Named("validation"))
	userService := service.NewUserService(userRepo, statsRepo)
	gameService := service.NewGameService(
		cfg.Game,
		puzzles,
		attemptRepo,
		statsRepo,
		achievementRepo,
		transactor,
		validator,
		scoring.NewEngine(cfg.Scoring),
		achievement.Default(),
		lg.Named("game"),
	)
	statsService := service.NewStatsService(statsRepo, achievementRepo)
	dailyService := service.NewDailyService(cfg.Scheduler, userRepo, statsRepo, puzzles, lg.Named("daily"))

	bot, err := tgbotapi.NewBotAPI(cfg.TelegramAPIToken)
	if err != nil {
		return err
	}
	bot.Debug = cfg.Env != "production"
	lg.Info("authorized on telegram", zap.String("account", bot.Self.UserName))

	commands := []tgbotapi.BotCommand{
		{Command: "start", Description: "Start playing"},
		{Command: "today", Description: "Today's puzzle"},
		{Command: "hint", Description: "Reveal a hint"},
		{Command: "stats", Description: "Your stats"},
		{Command: "achievements", Description: "Your achievements"},
		{Command: "leaderboard", Description: "Top players"},
		{Command: "help", Description: "How to play"},
	}
	if _, err := bot.Request(tgbotapi.NewSetMyCommands(commands...)); err != nil {
		lg.Warn("failed to set bot commands", zap.Error(err))
	}

	handler := telegram.NewHandler(
		bot,
		lg.Named("telegram"),
		userService,
		gameService,
		statsService,
		cfg.Game.MaxAttempts,
	)
	dailyService.SetNotifier(handler)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return handler.Run(gctx) })
	g.Go(func() error { return dailyService.Start(gctx) })

	err = g.Wait()
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// newJudge builds the remote judge, or returns nil when the AI stage is off.
func newJudge(ctx context.Context, cfg *config.Config, lg *zap.Logger) (validation.Judge, func(), error) {
	noop := func() {}

	if !cfg.AIEnabled() {
		lg.Info("ai validation disabled")
		return nil, noop, nil
	}

	gemini, err := judge.NewGeminiJudge(ctx, cfg.Gemini, lg.Named("judge"))
	if err != nil {
		return nil, noop, err
	}

	if !cfg.Valkey.Enabled {
		return gemini, noop, nil
	}

	client, err := valkey.NewClient(cfg.Valkey)
	if err != nil {
		return nil, noop, err
	}
	lg.Info("verdict cache enabled", zap.String("addr", cfg.Valkey.Addr))

	return judge.NewCachedJudge(gemini, client, cfg.Valkey.VerdictTTL, lg.Named("judge_cache")), client.Close, nil
}
