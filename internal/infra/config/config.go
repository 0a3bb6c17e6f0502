package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config aggregates runtime configuration used across the service.
type Config struct {
	HTTP    HTTPConfig    `yaml:"http"`
	LLM     LLMConfig     `yaml:"llm"`
	Catalog CatalogConfig `yaml:"catalog"`
	Chat    ChatConfig    `yaml:"chat"`
}

// HTTPConfig controls server level behavior.
type HTTPConfig struct {
	Address        string          `yaml:"address"`
	ReadTimeout    time.Duration   `yaml:"readTimeout"`
	WriteTimeout   time.Duration   `yaml:"writeTimeout"`
	RateLimit      RateLimitConfig `yaml:"rateLimit"`
	Retry          RetryConfig     `yaml:"retry"`
	AllowedOrigins []string        `yaml:"allowedOrigins"`
	AuthSecret     string          `yaml:"authSecret"`
}

// RateLimitConfig drives the request limiting middleware.
type RateLimitConfig struct {
	Enabled           bool `yaml:"enabled"`
	RequestsPerMinute int  `yaml:"requestsPerMinute"`
	Burst             int  `yaml:"burst"`
}

// RetryConfig configures best-effort retries for idempotent requests.
type RetryConfig struct {
	Enabled     bool          `yaml:"enabled"`
	MaxAttempts int           `yaml:"maxAttempts"`
	BaseBackoff time.Duration `yaml:"baseBackoff"`
	Exclude     []string      `yaml:"exclude"`
}

// LLMConfig contains the provider API credentials and exchange settings.
type LLMConfig struct {
	OpenAIAPIKey     string        `yaml:"openaiApiKey"`
	OpenAIBaseURL    string        `yaml:"openaiBaseUrl"`
	AnthropicAPIKey  string        `yaml:"anthropicApiKey"`
	AnthropicBaseURL string        `yaml:"anthropicBaseUrl"`
	Temperature      float32       `yaml:"temperature"`
	MaxTokens        int           `yaml:"maxTokens"`
	RequestTimeout   time.Duration `yaml:"requestTimeout"`
}

// CatalogConfig controls the tour/destination content service.
type CatalogConfig struct {
	TourCacheTTL        time.Duration  `yaml:"tourCacheTtl"`
	DestinationCacheTTL time.Duration  `yaml:"destinationCacheTtl"`
	Postgres            PostgresConfig `yaml:"postgres"`
	Valkey              ValkeyConfig   `yaml:"valkey"`
}

// ValkeyConfig contains connection information for cache storage.
type ValkeyConfig struct {
	Enabled bool   `yaml:"enabled"`
	Addr    string `yaml:"addr"`
}

// PostgresConfig contains DSN and pooling settings.
type PostgresConfig struct {
	DSN      string `yaml:"dsn"`
	MaxConns int32  `yaml:"maxConns"`
	MinConns int32  `yaml:"minConns"`
}

// ChatConfig controls the chat orchestration domain.
type ChatConfig struct {
	SystemPrompt      string `yaml:"systemPrompt"`
	MaxContextTokens  int    `yaml:"maxContextTokens"`
	MaxRelatedContent int    `yaml:"maxRelatedContent"`
}

const defaultSystemPrompt = `You are a professional Travel Assistant specializing in Italian tourism. You help users discover amazing tours, destinations, and travel experiences.

GUIDELINES:
- Be enthusiastic and knowledgeable about travel
- Provide specific, actionable information
- Include prices, durations, and key highlights when available
- Suggest related tours and destinations
- Use emojis sparingly for visual appeal
- Format responses with clear structure (use **bold** for important info)
- If you don't have specific information, acknowledge it and provide general helpful advice

CONTEXT: You have access to real-time tour and destination data from our content management system. Use this information to provide accurate, up-to-date recommendations.`

// Load reads configuration from a YAML file and environment variables.
func Load() (*Config, error) {
	cfg := defaultConfig()

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := hydrateFromFile(cfg, path); err != nil {
			return nil, err
		}
	} else if _, err := os.Stat("configs/config.yaml"); err == nil {
		if err := hydrateFromFile(cfg, "configs/config.yaml"); err != nil {
			return nil, err
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func hydrateFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("HTTP_ADDRESS"); v != "" {
		cfg.HTTP.Address = v
	}
	if v := os.Getenv("HTTP_ALLOWED_ORIGINS"); v != "" {
		cfg.HTTP.AllowedOrigins = splitCSV(v)
	}
	if v := os.Getenv("HTTP_AUTH_SECRET"); v != "" {
		cfg.HTTP.AuthSecret = v
	}
	if v := os.Getenv("OPENAI_API_KEY"); v != "" {
		cfg.LLM.OpenAIAPIKey = v
	}
	if v := os.Getenv("OPENAI_BASE_URL"); v != "" {
		cfg.LLM.OpenAIBaseURL = v
	}
	if v := os.Getenv("ANTHROPIC_API_KEY"); v != "" {
		cfg.LLM.AnthropicAPIKey = v
	}
	if v := os.Getenv("ANTHROPIC_BASE_URL"); v != "" {
		cfg.LLM.AnthropicBaseURL = v
	}
	if v := os.Getenv("LLM_TEMPERATURE"); v != "" {
		if parsed, err := strconv.ParseFloat(v, 32); err == nil {
			cfg.LLM.Temperature = float32(parsed)
		}
	}
	if v := os.Getenv("LLM_MAX_TOKENS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.LLM.MaxTokens = parsed
		}
	}
	if v := os.Getenv("LLM_REQUEST_TIMEOUT"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			cfg.LLM.RequestTimeout = parsed
		}
	}
	if v := os.Getenv("CATALOG_TOUR_CACHE_TTL"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			cfg.Catalog.TourCacheTTL = parsed
		}
	}
	if v := os.Getenv("CATALOG_DESTINATION_CACHE_TTL"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			cfg.Catalog.DestinationCacheTTL = parsed
		}
	}
	if v := os.Getenv("CATALOG_POSTGRES_DSN"); v != "" {
		cfg.Catalog.Postgres.DSN = v
	}
	if v := os.Getenv("CATALOG_POSTGRES_MAX_CONNS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Catalog.Postgres.MaxConns = int32(parsed)
		}
	}
	if v := os.Getenv("CATALOG_POSTGRES_MIN_CONNS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Catalog.Postgres.MinConns = int32(parsed)
		}
	}
	if v := os.Getenv("CATALOG_VALKEY_ENABLED"); v != "" {
		cfg.Catalog.Valkey.Enabled = v == "1" || strings.EqualFold(v, "true")
	}
	if v := os.Getenv("CATALOG_VALKEY_ADDR"); v != "" {
		cfg.Catalog.Valkey.Addr = v
	}
	if v := os.Getenv("CHAT_SYSTEM_PROMPT"); v != "" {
		cfg.Chat.SystemPrompt = v
	}
	if v := os.Getenv("CHAT_MAX_CONTEXT_TOKENS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Chat.MaxContextTokens = parsed
		}
	}
	if v := os.Getenv("CHAT_MAX_RELATED_CONTENT"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Chat.MaxRelatedContent = parsed
		}
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_ENABLED"); v != "" {
		cfg.HTTP.RateLimit.Enabled = v == "1" || strings.EqualFold(v, "true")
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_RPM"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.HTTP.RateLimit.RequestsPerMinute = parsed
		}
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_BURST"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.HTTP.RateLimit.Burst = parsed
		}
	}
	if v := os.Getenv("HTTP_RETRY_ENABLED"); v != "" {
		cfg.HTTP.Retry.Enabled = v == "1" || strings.EqualFold(v, "true")
	}
	if v := os.Getenv("HTTP_RETRY_MAX_ATTEMPTS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.HTTP.Retry.MaxAttempts = parsed
		}
	}
	if v := os.Getenv("HTTP_RETRY_BASE_BACKOFF"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			cfg.HTTP.Retry.BaseBackoff = parsed
		}
	}
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func defaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Address: ":8080",
			// Streamed responses are paced word by word, so the write timeout
			// has to cover a full replay rather than a single flush.
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 60 * time.Second,
			RateLimit: RateLimitConfig{
				Enabled:           true,
				RequestsPerMinute: 60,
				Burst:             20,
			},
			Retry: RetryConfig{
				Enabled:     true,
				MaxAttempts: 3,
				BaseBackoff: 150 * time.Millisecond,
				Exclude: []string{
					"/api/v1/chat/stream",
				},
			},
			AllowedOrigins: []string{"*"},
		},
		LLM: LLMConfig{
			Temperature:    0.7,
			MaxTokens:      1024,
			RequestTimeout: 60 * time.Second,
		},
		Catalog: CatalogConfig{
			TourCacheTTL:        15 * time.Minute,
			DestinationCacheTTL: 30 * time.Minute,
			Postgres: PostgresConfig{
				DSN:      "",
				MaxConns: 4,
				MinConns: 0,
			},
			Valkey: ValkeyConfig{
				Enabled: false,
				Addr:    "",
			},
		},
		Chat: ChatConfig{
			SystemPrompt:      defaultSystemPrompt,
			MaxContextTokens:  3000,
			MaxRelatedContent: 3,
		},
	}
}

// Validate ensures the configuration is safe to use.
func (c *Config) Validate() error {
	if c.HTTP.Address == "" {
		return errors.New("http.address cannot be empty")
	}
	if c.Chat.SystemPrompt == "" {
		return errors.New("chat.systemPrompt cannot be empty")
	}
	if c.Chat.MaxContextTokens <= 0 {
		return errors.New("chat.maxContextTokens must be positive")
	}
	if c.Chat.MaxRelatedContent < 0 {
		return errors.New("chat.maxRelatedContent cannot be negative")
	}
	if c.LLM.Temperature < 0 || c.LLM.Temperature > 2 {
		return errors.New("llm.temperature must be between 0 and 2")
	}
	if c.LLM.MaxTokens <= 0 {
		return errors.New("llm.maxTokens must be positive")
	}
	if c.LLM.RequestTimeout < 0 {
		return errors.New("llm.requestTimeout cannot be negative")
	}
	if c.Catalog.TourCacheTTL < 0 {
		return errors.New("catalog.tourCacheTtl cannot be negative")
	}
	if c.Catalog.DestinationCacheTTL < 0 {
		return errors.New("catalog.destinationCacheTtl cannot be negative")
	}
	if c.Catalog.Valkey.Enabled && strings.TrimSpace(c.Catalog.Valkey.Addr) == "" {
		return errors.New("catalog.valkey.addr cannot be empty when valkey cache is enabled")
	}
	if c.HTTP.RateLimit.Enabled {
		if c.HTTP.RateLimit.RequestsPerMinute <= 0 {
			return errors.New("http.rateLimit.requestsPerMinute must be positive")
		}
		if c.HTTP.RateLimit.Burst <= 0 {
			return errors.New("http.rateLimit.burst must be positive")
		}
	}
	if c.HTTP.Retry.Enabled {
		if c.HTTP.Retry.MaxAttempts <= 0 {
			return errors.New("http.retry.maxAttempts must be positive")
		}
		if c.HTTP.Retry.BaseBackoff <= 0 {
			return errors.New("http.retry.baseBackoff must be positive")
		}
	}
	return nil
}
