package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aliskhannn/rebuzzle-bot/internal/domain/entities"
)

func TestSpeedBonus(t *testing.T) {
	t.Parallel()

	e := NewEngine(DefaultConfig())

	tests := []struct {
		seconds float64
		want    int
	}{
		{0, 500},
		{29, 500},
		{30, 500},
		{165, 250}, // halfway
		{300, 0},
		{3600, 0},
		{57, 450}, // 500 * (1 - 27/270)
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, e.SpeedBonus(tt.seconds), "t=%v", tt.seconds)
	}
}

func TestPenaltiesAndBonuses(t *testing.T) {
	t.Parallel()

	e := NewEngine(DefaultConfig())

	assert.Equal(t, 0, e.AccuracyPenalty(0))
	assert.Equal(t, 200, e.AccuracyPenalty(2))

	assert.Equal(t, 50, e.HintPenalty(1))
	assert.Equal(t, 200, e.HintPenalty(4))
	assert.Equal(t, 200, e.HintPenalty(10), "capped")

	assert.Equal(t, 0, e.StreakBonus(0))
	assert.Equal(t, 70, e.StreakBonus(7))
	assert.Equal(t, 200, e.StreakBonus(365), "capped")

	assert.Equal(t, 0, e.DifficultyBonus(3))
	assert.Equal(t, 0, e.DifficultyBonus(5))
	assert.Equal(t, 100, e.DifficultyBonus(7))
	assert.Equal(t, 250, e.DifficultyBonus(10), "capped")
}

func TestCalculateFastSolveGetsMaxSpeedBonus(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	e := NewEngine(cfg)

	got := e.Calculate(entities.ScoreInput{
		TimeTakenSeconds: cfg.Speed.FastThreshold - 1,
		WrongAttempts:    0,
		StreakDays:       0,
		DifficultyLevel:  cfg.Difficulty.Baseline,
	})

	assert.Equal(t, cfg.Speed.MaxBonus, got.SpeedBonus)
	assert.Equal(t, cfg.BaseScore+cfg.Speed.MaxBonus, got.TotalScore)
}

func TestCalculateNeverBelowMinScore(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	e := NewEngine(cfg)

	got := e.Calculate(entities.ScoreInput{
		TimeTakenSeconds: 10_000,
		WrongAttempts:    50,
		HintsUsed:        50,
	})

	assert.Equal(t, cfg.MinScore, got.TotalScore)
	assert.Equal(t, 5000, got.AccuracyPenalty)
	assert.Equal(t, cfg.Hints.MaxPenalty, got.HintPenalty)
}

func TestCalculateBreakdownSums(t *testing.T) {
	t.Parallel()

	e := NewEngine(DefaultConfig())

	got := e.Calculate(entities.ScoreInput{
		TimeTakenSeconds: 165,
		WrongAttempts:    1,
		HintsUsed:        1,
		StreakDays:       3,
		DifficultyLevel:  8,
	})

	assert.Equal(t, entities.ScoreBreakdown{
		BaseScore:       1000,
		SpeedBonus:      250,
		AccuracyPenalty: 100,
		HintPenalty:     50,
		StreakBonus:     30,
		DifficultyBonus: 150,
		TotalScore:      1280,
	}, got)
}

func TestCalculateLevel(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1, CalculateLevel(0, 1000))
	assert.Equal(t, 1, CalculateLevel(999, 1000))
	assert.Equal(t, 2, CalculateLevel(1000, 1000))
	assert.Equal(t, 11, CalculateLevel(10_500, 1000))
	assert.Equal(t, 1, CalculateLevel(-50, 1000))
	assert.Equal(t, 3, CalculateLevel(2000, 0), "falls back to default points per level")
	assert.Equal(t, 6, NewEngine(DefaultConfig()).Level(5000))
}
