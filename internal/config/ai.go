package config

import (
	"os"
	"time"
)

const (
	// DefaultGeminiModel is used when GEMINI_MODEL is unset
	DefaultGeminiModel = "gemini-1.5-flash"

	// DefaultGeminiBaseURL is the generateContent API root
	DefaultGeminiBaseURL = "https://generativelanguage.googleapis.com/v1beta/models"

	// GeminiTimeout bounds the single outbound generation call
	GeminiTimeout = 15 * time.Second
)

// AIConfig holds all AI-related configuration
type AIConfig struct {
	APIKey  string        `json:"-"` // Never serialize
	BaseURL string        `json:"baseUrl"`
	Model   string        `json:"model"`
	Timeout time.Duration `json:"timeout"`
}

// DefaultAIConfig reads the AI configuration from the process environment
func DefaultAIConfig() *AIConfig {
	return &AIConfig{
		APIKey:  os.Getenv("GEMINI_API_KEY"),
		BaseURL: getEnvOrDefault("GEMINI_BASE_URL", DefaultGeminiBaseURL),
		Model:   getEnvOrDefault("GEMINI_MODEL", DefaultGeminiModel),
		Timeout: GeminiTimeout,
	}
}

// IsEnabled returns true if the AI API is configured
func (c *AIConfig) IsEnabled() bool {
	return c != nil && c.APIKey != ""
}

// ModelEndpoint returns the full endpoint for the configured model
func (c *AIConfig) ModelEndpoint() string {
	return c.BaseURL + "/" + c.Model + ":generateContent"
}

func getEnvOrDefault(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}
