package judge

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/goccy/go-json"
	"github.com/valkey-io/valkey-go"
	"go.uber.org/zap"

	"github.com/aliskhannn/rebuzzle-bot/internal/domain/entities"
	"github.com/aliskhannn/rebuzzle-bot/internal/validation"
)

const verdictKeyPrefix = "rebuzzle:verdict:"

// CachedJudge remembers verdicts of another judge in Valkey.
// Cache failures are logged and skipped.
type CachedJudge struct {
	next   validation.Judge
	client valkey.Client
	ttl    time.Duration
	opts   validation.NormalizeOptions
	logger *zap.Logger
}

// NewCachedJudge wraps next with a verdict cache.
func NewCachedJudge(next validation.Judge, client valkey.Client, ttl time.Duration, logger *zap.Logger) *CachedJudge {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CachedJudge{
		next:   next,
		client: client,
		ttl:    ttl,
		opts:   validation.DefaultNormalizeOptions(),
		logger: logger,
	}
}

// Judge implements validation.Judge.
func (c *CachedJudge) Judge(ctx context.Context, req entities.JudgeRequest) (*entities.JudgeVerdict, error) {
	key := c.key(req)

	if v, ok := c.load(ctx, key); ok {
		return v, nil
	}

	verdict, err := c.next.Judge(ctx, req)
	if err != nil {
		return nil, err
	}
	if verdict != nil {
		c.store(ctx, key, verdict)
	}
	return verdict, nil
}

func (c *CachedJudge) key(req entities.JudgeRequest) string {
	h := sha256.New()
	h.Write([]byte(validation.Normalize(req.GuessText, c.opts)))
	h.Write([]byte{0})
	h.Write([]byte(validation.Normalize(req.CorrectAnswer, c.opts)))
	return verdictKeyPrefix + hex.EncodeToString(h.Sum(nil))
}

func (c *CachedJudge) load(ctx context.Context, key string) (*entities.JudgeVerdict, bool) {
	cmd := c.client.B().Get().Key(key).Build()
	raw, err := c.client.Do(ctx, cmd).ToString()
	if err != nil {
		if !valkey.IsValkeyNil(err) {
			c.logger.Warn("verdict cache read failed", zap.String("key", key), zap.Error(err))
		}
		return nil, false
	}

	var v entities.JudgeVerdict
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		c.logger.Warn("verdict cache entry corrupt", zap.String("key", key), zap.Error(err))
		return nil, false
	}
	return &v, true
}

func (c *CachedJudge) store(ctx context.Context, key string, v *entities.JudgeVerdict) {
	data, err := json.Marshal(v)
	if err != nil {
		c.logger.Warn("marshal verdict", zap.Error(err))
		return
	}

	cmd := c.client.B().Set().Key(key).Value(string(data)).Ex(c.ttl).Build()
	if err := c.client.Do(ctx, cmd).Error(); err != nil {
		c.logger.Warn("verdict cache write failed", zap.String("key", key), zap.Error(err))
	}
}
