package config

import (
	"os"
	"strings"
	"time"
)

// Config is the process configuration, resolved once at startup
type Config struct {
	Port      string
	LogLevel  string
	LogFormat string
	RedisAddr string
	CacheTTL  time.Duration
	CORS      CORSConfig
	AI        *AIConfig
}

// CORSConfig holds the values sent in Access-Control-Allow-* headers
type CORSConfig struct {
	AllowedOrigins string
	AllowedMethods string
	AllowedHeaders string
}

// Load builds a Config from the process environment
func Load() *Config {
	return &Config{
		Port:      getEnv("PORT", "8000"),
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "json"),
		RedisAddr: redisAddr(os.Getenv("REDIS_URI")),
		CacheTTL:  getDuration("CACHE_TTL", time.Hour),
		CORS: CORSConfig{
			AllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),
			AllowedMethods: getEnv("CORS_ALLOWED_METHODS", "GET, POST, OPTIONS"),
			AllowedHeaders: getEnv("CORS_ALLOWED_HEADERS", "Content-Type, X-Request-ID"),
		},
		AI: DefaultAIConfig(),
	}
}

// CacheEnabled reports whether an outcome cache address is configured
func (c *Config) CacheEnabled() bool {
	return c.RedisAddr != ""
}

// redisAddr strips the redis:// scheme the way deployment manifests tend to pass it
func redisAddr(uri string) string {
	return strings.TrimPrefix(strings.TrimSpace(uri), "redis://")
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getDuration(key string, defaultVal time.Duration) time.Duration {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	d, err := time.ParseDuration(val)
	if err != nil || d <= 0 {
		return defaultVal
	}
	return d
}
