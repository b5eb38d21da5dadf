package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/aliskhannn/rebuzzle-bot/internal/infra/valkey"
	"github.com/aliskhannn/rebuzzle-bot/internal/judge"
	"github.com/aliskhannn/rebuzzle-bot/internal/scoring"
	"github.com/aliskhannn/rebuzzle-bot/internal/service"
	"github.com/aliskhannn/rebuzzle-bot/internal/validation"
)

var ErrMissingEnvironmentVariables = errors.New("missing required environment variables")

// Config holds application configuration loaded from files and environment variables.
type Config struct {
	Env              string                  `mapstructure:"env"`               // current application environment (local, dev, production etc)
	TelegramAPIToken string                  `mapstructure:"-"`                 // Telegram API token loaded from environment
	PuzzlesJSONPath  string                  `mapstructure:"puzzles_json_path"` // path to the puzzle catalogue
	DB               DB                      `mapstructure:"database"`          // database configuration section
	Validation       validation.Config       `mapstructure:"validation"`
	Scoring          scoring.Config          `mapstructure:"scoring"`
	Gemini           judge.Config            `mapstructure:"gemini"`
	Valkey           valkey.Config           `mapstructure:"valkey"`
	Game             service.GameConfig      `mapstructure:"game"`
	Scheduler        service.SchedulerConfig `mapstructure:"scheduler"`
}

// DB contains database-related configuration parameters.
type DB struct {
	URL               string        `mapstructure:"-"`                   // database connection string loaded from environment
	MaxConnections    int32         `mapstructure:"max_connections"`     // maximum number of open connections in the pool
	MinConnections    int32         `mapstructure:"min_connections"`     // connections kept open while idle
	MaxConnLifetime   time.Duration `mapstructure:"max_conn_lifetime"`   // maximum lifetime of a single connection
	HealthCheckPeriod time.Duration `mapstructure:"health_check_period"` // how often idle connections are checked
}

// DSN returns the database connection string if it is configured.
func (db DB) DSN() (string, error) {
	if db.URL == "" {
		return "", ErrMissingEnvironmentVariables
	}
	return db.URL, nil
}

// AIEnabled reports whether the remote judge can be used.
func (c *Config) AIEnabled() bool {
	return c.Validation.Enabled && c.Gemini.APIKey != ""
}

// Load reads configuration from config files and environment variables.
func Load() (*Config, error) {
	return load("./config")
}

func load(paths ...string) (*Config, error) {
	// Initialize Viper instance and base config options.
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	for _, p := range paths {
		v.AddConfigPath(p)
	}

	setDefaults(v)

	// Configure environment variable handling and key mapping.
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_")) // map nested keys to ENV style names
	v.AutomaticEnv()

	// Bind explicit environment variables to configuration keys.
	_ = v.BindEnv("telegram_api_token", "TELEGRAM_API_TOKEN")
	_ = v.BindEnv("database_url", "DATABASE_URL")
	_ = v.BindEnv("gemini_api_key", "GEMINI_API_KEY")
	_ = v.BindEnv("valkey_password", "VALKEY_PASSWORD")
	_ = v.BindEnv("env", "APP_ENV")

	// Try to read configuration file if present.
	if err := v.ReadInConfig(); err != nil {
		var fileLookupErr viper.ConfigFileNotFoundError
		if !errors.As(err, &fileLookupErr) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	// Unmarshal configuration into strongly typed struct.
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	// Load sensitive values from environment variables.
	cfg.TelegramAPIToken = v.GetString("telegram_api_token")
	if cfg.TelegramAPIToken == "" {
		return nil, ErrMissingEnvironmentVariables
	}

	cfg.DB.URL = v.GetString("database_url")
	if cfg.DB.URL == "" {
		return nil, ErrMissingEnvironmentVariables
	}

	// Optional: without a key the AI stage is disabled.
	cfg.Gemini.APIKey = v.GetString("gemini_api_key")
	cfg.Valkey.Password = v.GetString("valkey_password")

	return &cfg, nil
}

// setDefaults registers a default for every key so env overrides work without a config file.
func setDefaults(v *viper.Viper) {
	v.SetDefault("env", "local")
	v.SetDefault("puzzles_json_path", "assets/data/puzzles.json")

	v.SetDefault("database.max_connections", 20)
	v.SetDefault("database.min_connections", 2)
	v.SetDefault("database.max_conn_lifetime", "30s")
	v.SetDefault("database.health_check_period", "1m")

	vc := validation.DefaultConfig()
	v.SetDefault("validation.enabled", vc.Enabled)
	v.SetDefault("validation.always_use_ai", vc.AlwaysUseAI)
	v.SetDefault("validation.quick_accept_threshold", vc.QuickAcceptThreshold)
	v.SetDefault("validation.minor_typo_threshold", vc.MinorTypoThreshold)
	v.SetDefault("validation.ai_minimum_similarity", vc.AIMinimumSimilarity)
	v.SetDefault("validation.ai_timeout", vc.AITimeout)
	v.SetDefault("validation.tolerate_word_order_variations", vc.TolerateWordOrderVariations)
	v.SetDefault("validation.expand_contractions", vc.ExpandContractions)
	v.SetDefault("validation.ignore_punctuation", vc.IgnorePunctuation)
	v.SetDefault("validation.ignore_capitalization", vc.IgnoreCapitalization)
	v.SetDefault("validation.max_typo_ratio", vc.MaxTypoRatio)

	sc := scoring.DefaultConfig()
	v.SetDefault("scoring.base_score", sc.BaseScore)
	v.SetDefault("scoring.min_score", sc.MinScore)
	v.SetDefault("scoring.points_per_level", sc.PointsPerLevel)
	v.SetDefault("scoring.speed_bonus.max_bonus", sc.Speed.MaxBonus)
	v.SetDefault("scoring.speed_bonus.fast_threshold", sc.Speed.FastThreshold)
	v.SetDefault("scoring.speed_bonus.slow_threshold", sc.Speed.SlowThreshold)
	v.SetDefault("scoring.accuracy.penalty_per_attempt", sc.Accuracy.PenaltyPerAttempt)
	v.SetDefault("scoring.hints.penalty_per_hint", sc.Hints.PenaltyPerHint)
	v.SetDefault("scoring.hints.max_penalty", sc.Hints.MaxPenalty)
	v.SetDefault("scoring.streak.bonus_per_day", sc.Streak.BonusPerDay)
	v.SetDefault("scoring.streak.max_bonus", sc.Streak.MaxBonus)
	v.SetDefault("scoring.difficulty.bonus_per_level", sc.Difficulty.BonusPerLevel)
	v.SetDefault("scoring.difficulty.baseline", sc.Difficulty.Baseline)
	v.SetDefault("scoring.difficulty.max_bonus", sc.Difficulty.MaxBonus)

	v.SetDefault("gemini.model", "gemini-2.5-flash")
	v.SetDefault("gemini.temperature", 0.1)
	v.SetDefault("gemini.max_output_tokens", 512)
	v.SetDefault("gemini.timeout", "10s")
	v.SetDefault("gemini.max_retries", 2)

	v.SetDefault("valkey.enabled", false)
	v.SetDefault("valkey.addr", "localhost:6379")
	v.SetDefault("valkey.username", "")
	v.SetDefault("valkey.db", 0)
	v.SetDefault("valkey.disable_cache", true)
	v.SetDefault("valkey.verdict_ttl", "24h")

	gc := service.DefaultGameConfig()
	v.SetDefault("game.max_attempts", gc.MaxAttempts)
	v.SetDefault("game.speed_solve_seconds", gc.SpeedSolveSeconds)
	v.SetDefault("game.use_ai", gc.UseAI)

	v.SetDefault("scheduler.daily_cron", "5 0 * * *")
}
