package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"transparencyai/internal/model"
)

// OutcomeCache stores filtered LLM question lists by request fingerprint
type OutcomeCache interface {
	GetQuestions(ctx context.Context, fingerprint uint64) ([]model.QuestionItem, error)
	SetQuestions(ctx context.Context, fingerprint uint64, items []model.QuestionItem) error
}

type outcomeCache struct {
	client redis.Cmdable
	ttl    time.Duration
}

// NewOutcomeCache creates a new outcome cache
func NewOutcomeCache(client redis.Cmdable, ttl time.Duration) OutcomeCache {
	return &outcomeCache{
		client: client,
		ttl:    ttl,
	}
}

func (c *outcomeCache) key(fingerprint uint64) string {
	return fmt.Sprintf("questions:%016x", fingerprint)
}

// GetQuestions returns nil, nil on a miss
func (c *outcomeCache) GetQuestions(ctx context.Context, fingerprint uint64) ([]model.QuestionItem, error) {
	data, err := c.client.Get(ctx, c.key(fingerprint)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var items []model.QuestionItem
	if err := json.Unmarshal([]byte(data), &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *outcomeCache) SetQuestions(ctx context.Context, fingerprint uint64, items []model.QuestionItem) error {
	data, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(fingerprint), data, c.ttl).Err()
}
