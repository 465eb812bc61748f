package cache

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"transparencyai/internal/model"
)

func TestFingerprint(t *testing.T) {
	a, err := Fingerprint("gemini-1.5-flash", "prompt")
	require.NoError(t, err)
	b, err := Fingerprint("gemini-1.5-flash", "prompt")
	require.NoError(t, err)
	assert.Equal(t, a, b)

	other, err := Fingerprint("gemini-2.0-flash", "prompt")
	require.NoError(t, err)
	assert.NotEqual(t, a, other)

	// model/prompt boundary is part of the hash
	shifted, err := Fingerprint("gemini-1.5-flashp", "rompt")
	require.NoError(t, err)
	assert.NotEqual(t, a, shifted)
}

func TestOutcomeCacheKey(t *testing.T) {
	c := &outcomeCache{}
	assert.Equal(t, "questions:00000000000000ff", c.key(255))
}

// TestOutcomeCacheRedis runs against a live server when REDIS_TEST_ADDR is set
func TestOutcomeCacheRedis(t *testing.T) {
	addr := os.Getenv("REDIS_TEST_ADDR")
	if addr == "" {
		t.Skip("REDIS_TEST_ADDR not set")
	}
	ctx := context.Background()
	rdb := redis.NewClient(&redis.Options{Addr: addr})
	t.Cleanup(func() { rdb.Close() })
	require.NoError(t, rdb.Ping(ctx).Err())

	c := NewOutcomeCache(rdb, time.Minute)
	fp, err := Fingerprint("test-model", t.Name()+time.Now().String())
	require.NoError(t, err)

	got, err := c.GetQuestions(ctx, fp)
	require.NoError(t, err)
	assert.Nil(t, got)

	items := []model.QuestionItem{
		{QuestionText: "Where is it made?", QuestionType: model.QuestionTypeText},
		{QuestionText: "Recyclable?", QuestionType: model.QuestionTypeSelect, Metadata: map[string]any{"options": []any{"Yes", "No"}}},
	}
	require.NoError(t, c.SetQuestions(ctx, fp, items))

	got, err = c.GetQuestions(ctx, fp)
	require.NoError(t, err)
	assert.Equal(t, items, got)
}
