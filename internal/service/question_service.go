package service

import (
	"context"

	"go.uber.org/zap"

	"transparencyai/internal/cache"
	"transparencyai/internal/config"
	"transparencyai/internal/model"
)

// QuestionService picks between the LLM and heuristic question paths
type QuestionService struct {
	config *config.AIConfig
	llm    QuestionGenerator
	cache  cache.OutcomeCache
	logger *zap.Logger
}

// NewQuestionService creates a new question service. outcomes may be nil.
func NewQuestionService(cfg *config.AIConfig, llm QuestionGenerator, outcomes cache.OutcomeCache, logger *zap.Logger) *QuestionService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &QuestionService{
		config: cfg,
		llm:    llm,
		cache:  outcomes,
		logger: logger.Named("questions"),
	}
}

// Generate returns follow-up questions for req. It never fails: every LLM
// problem degrades to the heuristic list.
func (s *QuestionService) Generate(ctx context.Context, req model.QuestionRequest) []model.QuestionItem {
	if !s.config.IsEnabled() || s.llm == nil {
		return HeuristicQuestions(req)
	}

	log := s.logger.With(zap.String("productId", req.ProductID), zap.String("model", s.config.Model))

	fingerprint, cacheable := s.fingerprint(req, log)
	if cacheable {
		cached, err := s.cache.GetQuestions(ctx, fingerprint)
		if err != nil {
			log.Warn("outcome cache read failed", zap.Error(err))
		} else if len(cached) > 0 {
			log.Debug("outcome cache hit", zap.Int("count", len(cached)))
			return cached
		}
	}

	result := s.llm.Generate(ctx, req)
	if result.IsError() {
		log.Warn("llm generation failed, using heuristic questions", zap.Error(result.Error()))
		return HeuristicQuestions(req)
	}

	raw := result.MustGet()
	items := FilterQuestions(raw)
	if len(items) == 0 {
		log.Info("llm produced no usable questions, using heuristic questions", zap.Int("generated", len(raw)))
		return HeuristicQuestions(req)
	}

	if cacheable {
		if err := s.cache.SetQuestions(ctx, fingerprint, items); err != nil {
			log.Warn("outcome cache write failed", zap.Error(err))
		}
	}

	log.Debug("llm questions generated", zap.Int("generated", len(raw)), zap.Int("kept", len(items)))
	return items
}

func (s *QuestionService) fingerprint(req model.QuestionRequest, log *zap.Logger) (uint64, bool) {
	if s.cache == nil {
		return 0, false
	}
	fp, err := cache.Fingerprint(s.config.Model, BuildQuestionPrompt(req))
	if err != nil {
		log.Warn("outcome fingerprint failed", zap.Error(err))
		return 0, false
	}
	return fp, true
}
