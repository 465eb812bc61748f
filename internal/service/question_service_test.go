package service

import (
	"context"
	"errors"
	"testing"

	"github.com/samber/mo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"transparencyai/internal/config"
	"transparencyai/internal/model"
)

type fakeGenerator struct {
	result mo.Result[[]model.QuestionItem]
	calls  int
}

func (f *fakeGenerator) Generate(ctx context.Context, req model.QuestionRequest) mo.Result[[]model.QuestionItem] {
	f.calls++
	return f.result
}

type fakeOutcomeCache struct {
	stored map[uint64][]model.QuestionItem
	getErr error
	sets   int
}

func newFakeOutcomeCache() *fakeOutcomeCache {
	return &fakeOutcomeCache{stored: map[uint64][]model.QuestionItem{}}
}

func (f *fakeOutcomeCache) GetQuestions(ctx context.Context, fp uint64) ([]model.QuestionItem, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.stored[fp], nil
}

func (f *fakeOutcomeCache) SetQuestions(ctx context.Context, fp uint64, items []model.QuestionItem) error {
	f.sets++
	f.stored[fp] = items
	return nil
}

var enabled = &config.AIConfig{APIKey: "k", Model: "gemini-test"}

func sampleRequest() model.QuestionRequest {
	return model.QuestionRequest{
		ProductID:         "p1",
		ContextText:       "eco friendly",
		AnsweredQuestions: []model.AnsweredQuestion{model.NewAnsweredQuestion("Color?", "red")},
	}
}

func TestGenerateWithoutAPIKeyIsHeuristic(t *testing.T) {
	gen := &fakeGenerator{result: mo.Ok([]model.QuestionItem{item("LLM question")})}
	svc := NewQuestionService(&config.AIConfig{Model: "m"}, gen, nil, nil)

	req := sampleRequest()
	assert.Equal(t, HeuristicQuestions(req), svc.Generate(context.Background(), req))
	assert.Zero(t, gen.calls)
}

func TestGenerateUsesFilteredLLMOutput(t *testing.T) {
	gen := &fakeGenerator{result: mo.Ok([]model.QuestionItem{
		item("Where is it made?"),
		item("Upload a certificate"),
		item("where is it made?"),
		item("What is the warranty?"),
	})}
	svc := NewQuestionService(enabled, gen, nil, nil)

	out := svc.Generate(context.Background(), sampleRequest())
	assert.Equal(t, []string{"Where is it made?", "What is the warranty?"}, texts(out))
	assert.Equal(t, 1, gen.calls)
}

func TestGenerateFallsBack(t *testing.T) {
	tests := []struct {
		name   string
		result mo.Result[[]model.QuestionItem]
	}{
		{"failure", mo.Err[[]model.QuestionItem](&ErrProviderUnavailable{Err: errors.New("timeout")})},
		{"no items", mo.Ok[[]model.QuestionItem](nil)},
		{"all filtered", mo.Ok([]model.QuestionItem{item("Attach proof"), item("Provide documentation")})},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewQuestionService(enabled, &fakeGenerator{result: tt.result}, nil, nil)
			req := sampleRequest()
			assert.Equal(t, HeuristicQuestions(req), svc.Generate(context.Background(), req))
		})
	}
}

func TestGenerateOutcomeCache(t *testing.T) {
	gen := &fakeGenerator{result: mo.Ok([]model.QuestionItem{item("Where is it made?")})}
	outcomes := newFakeOutcomeCache()
	svc := NewQuestionService(enabled, gen, outcomes, nil)
	req := sampleRequest()

	first := svc.Generate(context.Background(), req)
	second := svc.Generate(context.Background(), req)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, gen.calls)
	assert.Equal(t, 1, outcomes.sets)
}

func TestGenerateOutcomeCacheSkipsFallbacks(t *testing.T) {
	gen := &fakeGenerator{result: mo.Err[[]model.QuestionItem](errors.New("down"))}
	outcomes := newFakeOutcomeCache()
	svc := NewQuestionService(enabled, gen, outcomes, nil)

	svc.Generate(context.Background(), sampleRequest())
	svc.Generate(context.Background(), sampleRequest())

	assert.Equal(t, 2, gen.calls)
	assert.Zero(t, outcomes.sets)
}

func TestGenerateOutcomeCacheErrorIgnored(t *testing.T) {
	gen := &fakeGenerator{result: mo.Ok([]model.QuestionItem{item("Where is it made?")})}
	outcomes := newFakeOutcomeCache()
	outcomes.getErr = errors.New("connection refused")
	svc := NewQuestionService(enabled, gen, outcomes, nil)

	out := svc.Generate(context.Background(), sampleRequest())
	require.Len(t, out, 1)
	assert.Equal(t, "Where is it made?", out[0].QuestionText)
}
