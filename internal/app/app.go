// Package app wires configuration, clients and services into one value
// shared by the CLI commands.
package app

import (
	"context"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"transparencyai/internal/cache"
	"transparencyai/internal/config"
	"transparencyai/internal/service"
	"transparencyai/internal/transport/rest"
)

type App struct {
	Config          *config.Config
	Logger          *zap.Logger
	QuestionService *service.QuestionService
	ScoreService    *service.ScoreService

	redis *redis.Client
}

// New builds the services for cfg. The outcome cache is attached only when a
// Redis address is configured and answers a ping; otherwise the service runs
// without it.
func New(ctx context.Context, cfg *config.Config, logger *zap.Logger) *App {
	a := &App{Config: cfg, Logger: logger}

	var outcomes cache.OutcomeCache
	if cfg.CacheEnabled() {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := rdb.Ping(pingCtx).Err(); err != nil {
			logger.Warn("redis unavailable, outcome cache disabled", zap.String("addr", cfg.RedisAddr), zap.Error(err))
			rdb.Close()
		} else {
			logger.Info("connected to redis", zap.String("addr", cfg.RedisAddr))
			a.redis = rdb
			outcomes = cache.NewOutcomeCache(rdb, cfg.CacheTTL)
		}
	}

	a.QuestionService = service.NewQuestionService(cfg.AI, service.NewGeminiClient(cfg.AI), outcomes, logger)
	a.ScoreService = service.NewScoreService()
	return a
}

// Handler returns the HTTP API
func (a *App) Handler() http.Handler {
	return rest.NewRouter(&rest.Container{
		QuestionService: a.QuestionService,
		ScoreService:    a.ScoreService,
		CORS:            a.Config.CORS,
		Logger:          a.Logger,
	})
}

// Close releases the Redis connection if one was opened
func (a *App) Close() error {
	if a.redis != nil {
		return a.redis.Close()
	}
	return nil
}
