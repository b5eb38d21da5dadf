package validation

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/aliskhannn/rebuzzle-bot/internal/domain/entities"
)

type fakeJudge struct {
	calls   atomic.Int32
	delay   time.Duration
	verdict *entities.JudgeVerdict
	err     error
	last    atomic.Pointer[entities.JudgeRequest]
}

func (f *fakeJudge) Judge(ctx context.Context, req entities.JudgeRequest) (*entities.JudgeVerdict, error) {
	f.calls.Add(1)
	f.last.Store(&req)
	if f.delay > 0 {
		select {
		case <-time.After(f.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return f.verdict, f.err
}

func newTestValidator(judge Judge, mutate ...func(*Config)) *Validator {
	cfg := DefaultConfig()
	cfg.AITimeout = 50 * time.Millisecond
	for _, m := range mutate {
		m(&cfg)
	}
	return NewValidator(cfg, judge, zap.NewNop())
}

func guess(text, answer string) entities.GuessAttempt {
	return entities.GuessAttempt{Text: text, CorrectAnswer: answer, PuzzleContext: "☀️🌻"}
}

func TestValidateNormalizedMatchSkipsJudge(t *testing.T) {
	t.Parallel()

	judge := &fakeJudge{verdict: &entities.JudgeVerdict{IsCorrect: false, Confidence: 1}}
	v := newTestValidator(judge, func(c *Config) { c.AlwaysUseAI = true })

	got := v.Validate(context.Background(), guess("SUNFLOWER!", "sunflower"), ValidateOptions{UseAI: true})

	assert.True(t, got.IsCorrect)
	assert.Equal(t, entities.MethodNormalized, got.Method)
	assert.Equal(t, 1.0, got.Confidence)
	assert.Zero(t, judge.calls.Load())
}

func TestValidateWordOrder(t *testing.T) {
	t.Parallel()

	judge := &fakeJudge{}
	v := newTestValidator(judge)

	got := v.Validate(context.Background(), guess("fun having when flies time", "time flies when having fun"), ValidateOptions{UseAI: true})

	assert.True(t, got.IsCorrect)
	assert.Equal(t, entities.MethodNormalized, got.Method)
	assert.Equal(t, 0.95, got.Confidence)
	assert.Zero(t, judge.calls.Load())
}

func TestValidateQuickAcceptIsExact(t *testing.T) {
	t.Parallel()

	judge := &fakeJudge{}
	v := newTestValidator(judge)

	// Spacing differs, so Normalize disagrees, but the legacy form is identical.
	got := v.Validate(context.Background(), guess("sun flower", "sunflower"), ValidateOptions{UseAI: true})

	assert.True(t, got.IsCorrect)
	assert.Equal(t, entities.MethodExact, got.Method)
	assert.GreaterOrEqual(t, got.Confidence, 0.98)
	assert.Zero(t, judge.calls.Load())
}

func TestValidateMinorTypoIsFuzzyAccept(t *testing.T) {
	t.Parallel()

	judge := &fakeJudge{}
	v := newTestValidator(judge)

	// One substitution over 21 letters.
	got := v.Validate(context.Background(), guess("a penny for your thoughtz", "a penny for your thoughts"), ValidateOptions{UseAI: true})

	assert.True(t, got.IsCorrect)
	assert.Equal(t, entities.MethodFuzzy, got.Method)
	assert.GreaterOrEqual(t, got.Confidence, 0.95)
	assert.Less(t, got.Confidence, 0.98)
	assert.Zero(t, judge.calls.Load())
}

func TestValidateUsesJudge(t *testing.T) {
	t.Parallel()

	judge := &fakeJudge{verdict: &entities.JudgeVerdict{
		IsCorrect:  true,
		Confidence: 0.9,
		Reasoning:  "article dropped",
	}}
	v := newTestValidator(judge)

	got := v.Validate(context.Background(), guess("piece cake", "a piece of cake"), ValidateOptions{UseAI: true})

	assert.True(t, got.IsCorrect)
	assert.Equal(t, entities.MethodAI, got.Method)
	assert.Equal(t, 0.9, got.Confidence)
	assert.Equal(t, "article dropped", got.Reasoning)
	require.EqualValues(t, 1, judge.calls.Load())

	req := judge.last.Load()
	require.NotNil(t, req)
	assert.Equal(t, "piece cake", req.GuessText)
	assert.Equal(t, "a piece of cake", req.CorrectAnswer)
	assert.Equal(t, "☀️🌻", req.PuzzleContext)
}

func TestValidateJudgeGating(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		mutate    func(*Config)
		useAI     bool
		guess     string
		wantCalls int32
	}{
		{name: "caller did not opt in", useAI: false, guess: "piece cake", wantCalls: 0},
		{name: "too dissimilar", useAI: true, guess: "zzzzzz", wantCalls: 0},
		{name: "always use ai ignores similarity", mutate: func(c *Config) { c.AlwaysUseAI = true }, guess: "zzzzzz", wantCalls: 1},
		{name: "disabled", mutate: func(c *Config) { c.Enabled = false; c.AlwaysUseAI = true }, useAI: true, guess: "piece cake", wantCalls: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			judge := &fakeJudge{verdict: &entities.JudgeVerdict{IsCorrect: false, Confidence: 0.8}}
			var mutate []func(*Config)
			if tt.mutate != nil {
				mutate = append(mutate, tt.mutate)
			}
			v := newTestValidator(judge, mutate...)

			v.Validate(context.Background(), guess(tt.guess, "a piece of cake"), ValidateOptions{UseAI: tt.useAI})
			assert.Equal(t, tt.wantCalls, judge.calls.Load())
		})
	}
}

func TestValidateNilJudge(t *testing.T) {
	t.Parallel()

	v := NewValidator(DefaultConfig(), nil, nil)
	got := v.Validate(context.Background(), guess("piece cake", "a piece of cake"), ValidateOptions{UseAI: true})

	assert.False(t, got.IsCorrect)
	assert.Equal(t, entities.MethodFuzzy, got.Method)
}

func TestValidateJudgeTimeoutFallsBack(t *testing.T) {
	t.Parallel()

	judge := &fakeJudge{
		delay:   time.Second,
		verdict: &entities.JudgeVerdict{IsCorrect: true, Confidence: 1},
	}
	v := newTestValidator(judge)

	start := time.Now()
	got := v.Validate(context.Background(), guess("piece cake", "a piece of cake"), ValidateOptions{UseAI: true})

	assert.Less(t, time.Since(start), 500*time.Millisecond)
	assert.False(t, got.IsCorrect)
	assert.Equal(t, entities.MethodFuzzy, got.Method)
	assert.Equal(t, Similarity("piececake", "apieceofcake"), got.Confidence)
	assert.EqualValues(t, 1, judge.calls.Load())
}

func TestValidateJudgeErrorFallsBack(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		judge *fakeJudge
	}{
		{name: "error", judge: &fakeJudge{err: errors.New("boom")}},
		{name: "nil verdict", judge: &fakeJudge{}},
		{name: "confidence out of range", judge: &fakeJudge{verdict: &entities.JudgeVerdict{IsCorrect: true, Confidence: 7}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			v := newTestValidator(tt.judge)
			got := v.Validate(context.Background(), guess("piece cake", "a piece of cake"), ValidateOptions{UseAI: true})

			assert.False(t, got.IsCorrect)
			assert.Equal(t, entities.MethodFuzzy, got.Method)
		})
	}
}

func TestValidateJudgePanicFallsBack(t *testing.T) {
	t.Parallel()

	v := newTestValidator(panicJudge{})
	got := v.Validate(context.Background(), guess("piece cake", "a piece of cake"), ValidateOptions{UseAI: true})

	assert.False(t, got.IsCorrect)
	assert.Equal(t, entities.MethodFuzzy, got.Method)
}

type panicJudge struct{}

func (panicJudge) Judge(context.Context, entities.JudgeRequest) (*entities.JudgeVerdict, error) {
	panic("judge exploded")
}

func TestValidateRejectSuggestions(t *testing.T) {
	t.Parallel()

	v := newTestValidator(nil)

	t.Run("close guess gets hints", func(t *testing.T) {
		got := v.Validate(context.Background(), guess("brake the ice", "break the ice now"), ValidateOptions{})
		assert.False(t, got.IsCorrect)
		assert.Greater(t, got.Confidence, 0.5)
		assert.Contains(t, got.Suggestions, "The answer has 4 words")
	})

	t.Run("distant guess gets none", func(t *testing.T) {
		got := v.Validate(context.Background(), guess("xyz", "break the ice"), ValidateOptions{})
		assert.False(t, got.IsCorrect)
		assert.Empty(t, got.Suggestions)
	})
}
