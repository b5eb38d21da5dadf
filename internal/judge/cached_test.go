package judge

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valkey-io/valkey-go"

	"github.com/aliskhannn/rebuzzle-bot/internal/domain/entities"
)

type countingJudge struct {
	calls   atomic.Int32
	verdict *entities.JudgeVerdict
	err     error
}

func (c *countingJudge) Judge(context.Context, entities.JudgeRequest) (*entities.JudgeVerdict, error) {
	c.calls.Add(1)
	return c.verdict, c.err
}

func newTestCache(t *testing.T, next *countingJudge) (*CachedJudge, *miniredis.Miniredis) {
	t.Helper()

	mini := miniredis.RunT(t)
	client, err := valkey.NewClient(valkey.ClientOption{
		InitAddress:  []string{mini.Addr()},
		DisableCache: true,
	})
	require.NoError(t, err)
	t.Cleanup(client.Close)

	return NewCachedJudge(next, client, time.Hour, nil), mini
}

func TestCachedJudge_HitsCacheForEquivalentInput(t *testing.T) {
	next := &countingJudge{verdict: &entities.JudgeVerdict{IsCorrect: true, Confidence: 0.9, Reasoning: "same"}}
	cache, mini := newTestCache(t, next)
	ctx := context.Background()

	first, err := cache.Judge(ctx, entities.JudgeRequest{GuessText: "Piece cake", CorrectAnswer: "A piece of cake"})
	require.NoError(t, err)

	second, err := cache.Judge(ctx, entities.JudgeRequest{GuessText: "piece  cake!", CorrectAnswer: "a piece of cake"})
	require.NoError(t, err)

	assert.Equal(t, int32(1), next.calls.Load())
	assert.Equal(t, first, second)
	assert.Len(t, mini.Keys(), 1)

	ttl := mini.TTL(mini.Keys()[0])
	assert.Equal(t, time.Hour, ttl)
}

func TestCachedJudge_DoesNotCacheErrors(t *testing.T) {
	next := &countingJudge{err: errors.New("boom")}
	cache, mini := newTestCache(t, next)
	ctx := context.Background()

	for range 2 {
		_, err := cache.Judge(ctx, entities.JudgeRequest{GuessText: "x", CorrectAnswer: "y"})
		require.Error(t, err)
	}
	assert.Equal(t, int32(2), next.calls.Load())
	assert.Empty(t, mini.Keys())
}

func TestCachedJudge_BypassesBrokenCache(t *testing.T) {
	next := &countingJudge{verdict: &entities.JudgeVerdict{IsCorrect: false, Confidence: 0.7}}
	cache, mini := newTestCache(t, next)
	mini.Close()

	v, err := cache.Judge(context.Background(), entities.JudgeRequest{GuessText: "x", CorrectAnswer: "y"})
	require.NoError(t, err)
	assert.False(t, v.IsCorrect)
	assert.Equal(t, int32(1), next.calls.Load())
}

func TestCachedJudge_IgnoresCorruptEntry(t *testing.T) {
	next := &countingJudge{verdict: &entities.JudgeVerdict{IsCorrect: true, Confidence: 1}}
	cache, mini := newTestCache(t, next)
	req := entities.JudgeRequest{GuessText: "x", CorrectAnswer: "y"}

	require.NoError(t, mini.Set(cache.key(req), "{not json"))

	v, err := cache.Judge(context.Background(), req)
	require.NoError(t, err)
	assert.True(t, v.IsCorrect)
	assert.Equal(t, int32(1), next.calls.Load())
}
