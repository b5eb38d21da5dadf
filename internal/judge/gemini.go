// Package judge implements the remote semantic judge that decides whether a
// guess means the same as the answer when deterministic checks are not enough.
package judge

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
	"google.golang.org/genai"

	"github.com/aliskhannn/rebuzzle-bot/internal/domain/entities"
	"github.com/aliskhannn/rebuzzle-bot/internal/validation"
)

var ErrMissingAPIKey = errors.New("missing gemini api key")

// Config configures the Gemini judge.
type Config struct {
	APIKey          string        `mapstructure:"-"`
	Model           string        `mapstructure:"model"`
	Temperature     float32       `mapstructure:"temperature"`
	MaxOutputTokens int32         `mapstructure:"max_output_tokens"`
	Timeout         time.Duration `mapstructure:"timeout"`     // per HTTP request
	MaxRetries      uint64        `mapstructure:"max_retries"` // retries after the first call
}

const systemPrompt = `You judge answers to rebus puzzles.
Decide whether the player's guess has the same meaning as the correct answer.
Be lenient with:
- contractions ("you're" and "you are" are the same)
- word order when the phrase keeps its meaning
- minor typos and misspellings
- punctuation and capitalization
- dropped or added articles ("a", "an", "the")
Reject guesses that name a different thing, even if they look similar.
Reply with JSON only: isCorrect, confidence between 0 and 1, a short reasoning,
and suggestions that help the player without revealing the answer.`

var verdictSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"isCorrect":  map[string]any{"type": "boolean"},
		"confidence": map[string]any{"type": "number", "minimum": 0, "maximum": 1},
		"reasoning":  map[string]any{"type": "string"},
		"suggestions": map[string]any{
			"type":  "array",
			"items": map[string]any{"type": "string"},
		},
	},
	"required": []string{"isCorrect", "confidence", "reasoning"},
}

// generator is the part of *genai.Models the judge calls.
type generator interface {
	GenerateContent(
		ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig,
	) (*genai.GenerateContentResponse, error)
}

// GeminiJudge asks a Gemini model for a structured verdict.
type GeminiJudge struct {
	cfg     Config
	models  generator
	backOff func() backoff.BackOff
	logger  *zap.Logger
}

// NewGeminiJudge creates a judge backed by the Gemini API.
func NewGeminiJudge(ctx context.Context, cfg Config, logger *zap.Logger) (*GeminiJudge, error) {
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}

	client, err := genai.NewClient(context.WithoutCancel(ctx), &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
		HTTPOptions: genai.HTTPOptions{
			Timeout: genai.Ptr(cfg.Timeout),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	return newGeminiJudge(cfg, client.Models, logger), nil
}

func newGeminiJudge(cfg Config, models generator, logger *zap.Logger) *GeminiJudge {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GeminiJudge{cfg: cfg, models: models, backOff: defaultBackOff, logger: logger}
}

func defaultBackOff() backoff.BackOff {
	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = 200 * time.Millisecond
	policy.MaxInterval = 2 * time.Second
	policy.MaxElapsedTime = 0
	return policy
}

// Judge implements validation.Judge.
func (j *GeminiJudge) Judge(ctx context.Context, req entities.JudgeRequest) (*entities.JudgeVerdict, error) {
	config := &genai.GenerateContentConfig{
		Temperature:        genai.Ptr(j.cfg.Temperature),
		MaxOutputTokens:    j.cfg.MaxOutputTokens,
		SystemInstruction:  genai.NewContentFromText(systemPrompt, genai.RoleUser),
		ResponseMIMEType:   "application/json",
		ResponseJsonSchema: verdictSchema,
	}
	contents := []*genai.Content{genai.NewContentFromText(buildPrompt(req), genai.RoleUser)}

	var response *genai.GenerateContentResponse
	operation := func() error {
		resp, err := j.models.GenerateContent(ctx, j.cfg.Model, contents, config)
		if err != nil {
			if !isTransient(err) {
				return backoff.Permanent(err)
			}
			return err
		}
		response = resp
		return nil
	}

	notify := func(err error, wait time.Duration) {
		j.logger.Warn("gemini request failed, retrying",
			zap.String("model", j.cfg.Model),
			zap.Duration("retry_in", wait),
			zap.Error(err),
		)
	}

	b := backoff.WithContext(backoff.WithMaxRetries(j.backOff(), j.cfg.MaxRetries), ctx)
	if err := backoff.RetryNotify(operation, b, notify); err != nil {
		return nil, fmt.Errorf("generate verdict: %w", err)
	}

	if response == nil {
		return nil, fmt.Errorf("nil response: %w", validation.ErrMalformedVerdict)
	}
	return parseVerdict(response.Text())
}

func buildPrompt(req entities.JudgeRequest) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Correct answer: %q\n", req.CorrectAnswer)
	fmt.Fprintf(&sb, "Player guess: %q\n", req.GuessText)
	if req.PuzzleContext != "" {
		fmt.Fprintf(&sb, "Puzzle: %s\n", req.PuzzleContext)
	}
	if req.Explanation != "" {
		fmt.Fprintf(&sb, "Explanation: %s\n", req.Explanation)
	}
	sb.WriteString("Is the guess correct?")
	return sb.String()
}

type verdictPayload struct {
	IsCorrect   *bool    `json:"isCorrect"`
	Confidence  *float64 `json:"confidence"`
	Reasoning   string   `json:"reasoning"`
	Suggestions []string `json:"suggestions"`
}

func parseVerdict(payload string) (*entities.JudgeVerdict, error) {
	payload = strings.TrimSpace(payload)
	if payload == "" {
		return nil, fmt.Errorf("empty response: %w", validation.ErrMalformedVerdict)
	}

	var p verdictPayload
	if err := json.Unmarshal([]byte(payload), &p); err != nil {
		return nil, fmt.Errorf("decode verdict: %w: %w", validation.ErrMalformedVerdict, err)
	}
	if p.IsCorrect == nil || p.Confidence == nil {
		return nil, fmt.Errorf("incomplete verdict: %w", validation.ErrMalformedVerdict)
	}
	if *p.Confidence < 0 || *p.Confidence > 1 {
		return nil, fmt.Errorf("confidence %v out of range: %w", *p.Confidence, validation.ErrMalformedVerdict)
	}

	return &entities.JudgeVerdict{
		IsCorrect:   *p.IsCorrect,
		Confidence:  *p.Confidence,
		Reasoning:   p.Reasoning,
		Suggestions: p.Suggestions,
	}, nil
}

// isTransient reports whether a failed call is worth repeating.
func isTransient(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Code == http.StatusTooManyRequests || apiErr.Code >= http.StatusInternalServerError
	}
	return true
}
