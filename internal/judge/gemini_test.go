package judge

import (
	"context"
	"errors"
	"testing"

	"github.com/cenkalti/backoff/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	"github.com/aliskhannn/rebuzzle-bot/internal/domain/entities"
	"github.com/aliskhannn/rebuzzle-bot/internal/validation"
)

type fakeGenerator struct {
	replies []string
	errs    []error
	calls   int
	model   string
	config  *genai.GenerateContentConfig
	prompt  string
}

func (f *fakeGenerator) GenerateContent(
	_ context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig,
) (*genai.GenerateContentResponse, error) {
	i := f.calls
	f.calls++
	f.model = model
	f.config = config
	if len(contents) > 0 && len(contents[0].Parts) > 0 {
		f.prompt = contents[0].Parts[0].Text
	}

	if i < len(f.errs) && f.errs[i] != nil {
		return nil, f.errs[i]
	}
	text := ""
	if i < len(f.replies) {
		text = f.replies[i]
	}
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{Content: genai.NewContentFromText(text, genai.RoleModel)}},
	}, nil
}

func newTestJudge(gen *fakeGenerator, retries uint64) *GeminiJudge {
	j := newGeminiJudge(Config{Model: "gemini-2.5-flash", MaxRetries: retries}, gen, nil)
	j.backOff = func() backoff.BackOff { return &backoff.ZeroBackOff{} }
	return j
}

var pieceOfCake = entities.JudgeRequest{
	GuessText:     "piece cake",
	CorrectAnswer: "a piece of cake",
	PuzzleContext: "🍰 PIECE",
	Explanation:   "A slice of cake drawn next to the word PIECE",
}

func TestGeminiJudge_Verdict(t *testing.T) {
	t.Parallel()

	gen := &fakeGenerator{replies: []string{
		`{"isCorrect":true,"confidence":0.92,"reasoning":"Articles dropped","suggestions":["Nice!"]}`,
	}}
	v, err := newTestJudge(gen, 0).Judge(context.Background(), pieceOfCake)

	require.NoError(t, err)
	assert.True(t, v.IsCorrect)
	assert.InDelta(t, 0.92, v.Confidence, 1e-9)
	assert.Equal(t, "Articles dropped", v.Reasoning)
	assert.Equal(t, []string{"Nice!"}, v.Suggestions)

	assert.Equal(t, "gemini-2.5-flash", gen.model)
	assert.Equal(t, "application/json", gen.config.ResponseMIMEType)
	assert.NotNil(t, gen.config.SystemInstruction)
	assert.Contains(t, gen.prompt, `"piece cake"`)
	assert.Contains(t, gen.prompt, `"a piece of cake"`)
	assert.Contains(t, gen.prompt, "🍰 PIECE")
}

func TestGeminiJudge_Malformed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		reply string
	}{
		{name: "empty", reply: "  "},
		{name: "not json", reply: "yes, it is correct"},
		{name: "missing confidence", reply: `{"isCorrect":true,"reasoning":"ok"}`},
		{name: "confidence above one", reply: `{"isCorrect":true,"confidence":1.5,"reasoning":"ok"}`},
		{name: "negative confidence", reply: `{"isCorrect":false,"confidence":-0.1,"reasoning":"ok"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			gen := &fakeGenerator{replies: []string{tt.reply}}
			_, err := newTestJudge(gen, 2).Judge(context.Background(), pieceOfCake)
			assert.ErrorIs(t, err, validation.ErrMalformedVerdict)
			assert.Equal(t, 1, gen.calls, "malformed replies are not retried")
		})
	}
}

func TestGeminiJudge_RetriesTransientErrors(t *testing.T) {
	t.Parallel()

	gen := &fakeGenerator{
		errs: []error{
			genai.APIError{Code: 503, Message: "overloaded"},
			errors.New("connection reset"),
		},
		replies: []string{"", "", `{"isCorrect":false,"confidence":0.8,"reasoning":"different phrase"}`},
	}
	v, err := newTestJudge(gen, 2).Judge(context.Background(), pieceOfCake)

	require.NoError(t, err)
	assert.False(t, v.IsCorrect)
	assert.Equal(t, 3, gen.calls)
}

func TestGeminiJudge_GivesUpAfterMaxRetries(t *testing.T) {
	t.Parallel()

	overloaded := genai.APIError{Code: 429, Message: "quota"}
	gen := &fakeGenerator{errs: []error{overloaded, overloaded, overloaded, overloaded}}
	_, err := newTestJudge(gen, 2).Judge(context.Background(), pieceOfCake)

	require.Error(t, err)
	assert.Equal(t, 3, gen.calls)
}

func TestGeminiJudge_ClientErrorNotRetried(t *testing.T) {
	t.Parallel()

	gen := &fakeGenerator{errs: []error{genai.APIError{Code: 400, Message: "bad request"}}}
	_, err := newTestJudge(gen, 3).Judge(context.Background(), pieceOfCake)

	require.Error(t, err)
	assert.Equal(t, 1, gen.calls)
}

func TestNewGeminiJudge_MissingKey(t *testing.T) {
	t.Parallel()

	_, err := NewGeminiJudge(context.Background(), Config{Model: "gemini-2.5-flash"}, nil)
	assert.ErrorIs(t, err, ErrMissingAPIKey)
}
