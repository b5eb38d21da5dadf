// Package scoring turns a solved puzzle into points. Every coefficient comes
// from Config; the functions here only encode the formulas.
package scoring

import (
	"math"

	"github.com/aliskhannn/rebuzzle-bot/internal/domain/entities"
)

const defaultPointsPerLevel = 1000

// Config holds all scoring coefficients.
type Config struct {
	BaseScore      int              `mapstructure:"base_score"`
	MinScore       int              `mapstructure:"min_score"`
	PointsPerLevel int              `mapstructure:"points_per_level"`
	Speed          SpeedConfig      `mapstructure:"speed_bonus"`
	Accuracy       AccuracyConfig   `mapstructure:"accuracy"`
	Hints          HintsConfig      `mapstructure:"hints"`
	Streak         StreakConfig     `mapstructure:"streak"`
	Difficulty     DifficultyConfig `mapstructure:"difficulty"`
}

// SpeedConfig: full bonus at or under FastThreshold seconds, none at or over SlowThreshold.
type SpeedConfig struct {
	MaxBonus      int     `mapstructure:"max_bonus"`
	FastThreshold float64 `mapstructure:"fast_threshold"`
	SlowThreshold float64 `mapstructure:"slow_threshold"`
}

type AccuracyConfig struct {
	PenaltyPerAttempt int `mapstructure:"penalty_per_attempt"`
}

type HintsConfig struct {
	PenaltyPerHint int `mapstructure:"penalty_per_hint"`
	MaxPenalty     int `mapstructure:"max_penalty"`
}

type StreakConfig struct {
	BonusPerDay int `mapstructure:"bonus_per_day"`
	MaxBonus    int `mapstructure:"max_bonus"`
}

type DifficultyConfig struct {
	BonusPerLevel int `mapstructure:"bonus_per_level"`
	Baseline      int `mapstructure:"baseline"`
	MaxBonus      int `mapstructure:"max_bonus"`
}

// DefaultConfig returns the production coefficients.
func DefaultConfig() Config {
	return Config{
		BaseScore:      1000,
		MinScore:       100,
		PointsPerLevel: defaultPointsPerLevel,
		Speed: SpeedConfig{
			MaxBonus:      500,
			FastThreshold: 30,
			SlowThreshold: 300,
		},
		Accuracy: AccuracyConfig{PenaltyPerAttempt: 100},
		Hints:    HintsConfig{PenaltyPerHint: 50, MaxPenalty: 200},
		Streak:   StreakConfig{BonusPerDay: 10, MaxBonus: 200},
		Difficulty: DifficultyConfig{
			BonusPerLevel: 50,
			Baseline:      5,
			MaxBonus:      250,
		},
	}
}

// Engine computes scores from a fixed Config.
type Engine struct {
	cfg Config
}

func NewEngine(cfg Config) *Engine {
	return &Engine{cfg: cfg}
}

// Config returns the engine's coefficients.
func (e *Engine) Config() Config {
	return e.cfg
}

// SpeedBonus interpolates linearly between the fast and slow thresholds.
func (e *Engine) SpeedBonus(seconds float64) int {
	c := e.cfg.Speed
	if seconds <= c.FastThreshold {
		return c.MaxBonus
	}
	if seconds >= c.SlowThreshold {
		return 0
	}
	ratio := (seconds - c.FastThreshold) / (c.SlowThreshold - c.FastThreshold)
	return int(math.Round(float64(c.MaxBonus) * (1 - ratio)))
}

func (e *Engine) AccuracyPenalty(wrongAttempts int) int {
	return max(0, wrongAttempts) * e.cfg.Accuracy.PenaltyPerAttempt
}

func (e *Engine) HintPenalty(hintsUsed int) int {
	return min(max(0, hintsUsed)*e.cfg.Hints.PenaltyPerHint, e.cfg.Hints.MaxPenalty)
}

func (e *Engine) StreakBonus(days int) int {
	return min(max(0, days)*e.cfg.Streak.BonusPerDay, e.cfg.Streak.MaxBonus)
}

func (e *Engine) DifficultyBonus(level int) int {
	c := e.cfg.Difficulty
	if level <= c.Baseline {
		return 0
	}
	return min((level-c.Baseline)*c.BonusPerLevel, c.MaxBonus)
}

// Calculate combines all components; the total never drops below MinScore.
func (e *Engine) Calculate(in entities.ScoreInput) entities.ScoreBreakdown {
	b := entities.ScoreBreakdown{
		BaseScore:       e.cfg.BaseScore,
		SpeedBonus:      e.SpeedBonus(in.TimeTakenSeconds),
		AccuracyPenalty: e.AccuracyPenalty(in.WrongAttempts),
		HintPenalty:     e.HintPenalty(in.HintsUsed),
		StreakBonus:     e.StreakBonus(in.StreakDays),
		DifficultyBonus: e.DifficultyBonus(in.DifficultyLevel),
	}

	raw := b.BaseScore + b.SpeedBonus - b.AccuracyPenalty - b.HintPenalty + b.StreakBonus + b.DifficultyBonus
	b.TotalScore = max(e.cfg.MinScore, raw)
	return b
}

// Level returns the level for the given points under the engine's config.
func (e *Engine) Level(points int) int {
	return CalculateLevel(points, e.cfg.PointsPerLevel)
}

// CalculateLevel = max(1, floor(points/pointsPerLevel)+1).
func CalculateLevel(points, pointsPerLevel int) int {
	if pointsPerLevel <= 0 {
		pointsPerLevel = defaultPointsPerLevel
	}
	if points < 0 {
		return 1
	}
	return max(1, points/pointsPerLevel+1)
}
