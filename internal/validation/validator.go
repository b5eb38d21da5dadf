package validation

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/aliskhannn/rebuzzle-bot/internal/domain/entities"
)

const (
	normalizedConfidence = 1.0
	wordOrderConfidence  = 0.95
	suggestionSimilarity = 0.5
)

var (
	ErrJudgeTimeout     = errors.New("judge timed out")
	ErrMalformedVerdict = errors.New("malformed judge verdict")
)

// Judge is the remote semantic judge consulted when deterministic checks are
// inconclusive. Implementations may be slow or fail; the validator bounds and
// absorbs both.
type Judge interface {
	Judge(ctx context.Context, req entities.JudgeRequest) (*entities.JudgeVerdict, error)
}

// ValidateOptions carries per-call choices of the caller.
type ValidateOptions struct {
	UseAI bool // caller opts in to the AI stage
}

// Validator runs the layered answer-validation pipeline.
type Validator struct {
	cfg    Config
	judge  Judge
	logger *zap.Logger
}

// NewValidator creates a Validator. judge may be nil, which disables the AI stage.
func NewValidator(cfg Config, judge Judge, logger *zap.Logger) *Validator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Validator{
		cfg:    cfg,
		judge:  judge,
		logger: logger,
	}
}

// Validate returns the verdict of the first stage that accepts the guess, or
// the deterministic fuzzy rejection. It never returns an error: judge failures
// are logged and degrade to the fuzzy verdict.
func (v *Validator) Validate(
	ctx context.Context, attempt entities.GuessAttempt, opts ValidateOptions,
) entities.ValidationVerdict {
	normOpts := v.cfg.NormalizeOptions()

	// 1. Equal after normalization.
	if Normalize(attempt.Text, normOpts) == Normalize(attempt.CorrectAnswer, normOpts) {
		return entities.ValidationVerdict{
			IsCorrect:  true,
			Confidence: normalizedConfidence,
			Method:     entities.MethodNormalized,
			Reasoning:  "Answer matches after normalization",
		}
	}

	// 2. Same words, different order.
	if MatchesWithWordOrderTolerance(attempt.Text, attempt.CorrectAnswer, v.cfg) {
		return entities.ValidationVerdict{
			IsCorrect:  true,
			Confidence: wordOrderConfidence,
			Method:     entities.MethodNormalized,
			Reasoning:  "Answer matches with words in a different order",
		}
	}

	// 3-4. Legacy quick check.
	sim := Similarity(LegacyNormalize(attempt.Text), LegacyNormalize(attempt.CorrectAnswer))
	if sim >= v.cfg.QuickAcceptThreshold {
		return entities.ValidationVerdict{
			IsCorrect:  true,
			Confidence: sim,
			Method:     entities.MethodExact,
			Reasoning:  "Answer matches",
		}
	}
	if sim >= v.cfg.MinorTypoThreshold {
		return entities.ValidationVerdict{
			IsCorrect:  true,
			Confidence: sim,
			Method:     entities.MethodFuzzy,
			Reasoning:  "Accepted with a minor typo",
		}
	}

	// 5. Remote judge.
	if v.shouldUseAI(sim, opts) {
		verdict, err := v.judgeWithTimeout(ctx, attempt)
		if err == nil {
			return entities.ValidationVerdict{
				IsCorrect:   verdict.IsCorrect,
				Confidence:  verdict.Confidence,
				Method:      entities.MethodAI,
				Reasoning:   verdict.Reasoning,
				Suggestions: verdict.Suggestions,
			}
		}
		v.logger.Warn("ai validation failed, falling back to fuzzy verdict",
			zap.Float64("similarity", sim),
			zap.Duration("timeout", v.cfg.AITimeout),
			zap.Error(err),
		)
	}

	// 6. Deterministic rejection.
	verdict := entities.ValidationVerdict{
		IsCorrect:  false,
		Confidence: sim,
		Method:     entities.MethodFuzzy,
		Reasoning:  "Answer does not match",
	}
	if sim > suggestionSimilarity {
		verdict.Suggestions = suggestionsFor(attempt.Text, attempt.CorrectAnswer, normOpts)
	}
	return verdict
}

func (v *Validator) shouldUseAI(sim float64, opts ValidateOptions) bool {
	if !v.cfg.Enabled || v.judge == nil {
		return false
	}
	return v.cfg.AlwaysUseAI || (opts.UseAI && sim >= v.cfg.AIMinimumSimilarity)
}

type judgeResult struct {
	verdict *entities.JudgeVerdict
	err     error
}

// judgeWithTimeout races the judge against the configured timeout. The judge
// keeps the caller's context, so the timer does not abort it; a late result
// lands in the buffered channel and is dropped.
func (v *Validator) judgeWithTimeout(ctx context.Context, attempt entities.GuessAttempt) (*entities.JudgeVerdict, error) {
	req := entities.JudgeRequest{
		GuessText:     attempt.Text,
		CorrectAnswer: attempt.CorrectAnswer,
		PuzzleContext: attempt.PuzzleContext,
		Explanation:   attempt.Explanation,
	}

	done := make(chan judgeResult, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- judgeResult{err: fmt.Errorf("judge panicked: %v", r)}
			}
		}()
		verdict, err := v.judge.Judge(ctx, req)
		done <- judgeResult{verdict: verdict, err: err}
	}()

	timer := time.NewTimer(v.cfg.AITimeout)
	defer timer.Stop()

	select {
	case res := <-done:
		if res.err != nil {
			return nil, res.err
		}
		if err := checkVerdict(res.verdict); err != nil {
			return nil, err
		}
		return res.verdict, nil
	case <-timer.C:
		return nil, ErrJudgeTimeout
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func checkVerdict(verdict *entities.JudgeVerdict) error {
	if verdict == nil {
		return fmt.Errorf("%w: empty", ErrMalformedVerdict)
	}
	if verdict.Confidence < 0 || verdict.Confidence > 1 {
		return fmt.Errorf("%w: confidence %v", ErrMalformedVerdict, verdict.Confidence)
	}
	return nil
}

func suggestionsFor(guess, answer string, opts NormalizeOptions) []string {
	suggestions := []string{"Check your spelling, you're close!"}

	g := strings.Fields(Normalize(guess, opts))
	a := strings.Fields(Normalize(answer, opts))
	switch {
	case len(g) != len(a):
		suggestions = append(suggestions, fmt.Sprintf("The answer has %d word%s", len(a), plural(len(a))))
	case letterCount(guess) < letterCount(answer):
		suggestions = append(suggestions, "Your answer is a little too short")
	case letterCount(guess) > letterCount(answer):
		suggestions = append(suggestions, "Your answer is a little too long")
	}

	return suggestions
}

func letterCount(s string) int {
	return utf8.RuneCountInString(LegacyNormalize(s))
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
