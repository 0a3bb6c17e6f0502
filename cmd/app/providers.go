package main

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/valkey-io/valkey-go"

	"github.com/gayathri-1911/travel-assistant/internal/domain/catalog"
	"github.com/gayathri-1911/travel-assistant/internal/domain/chat"
	"github.com/gayathri-1911/travel-assistant/internal/infra/catalogrepo"
	"github.com/gayathri-1911/travel-assistant/internal/infra/catalogstore"
	"github.com/gayathri-1911/travel-assistant/internal/infra/config"
	"github.com/gayathri-1911/travel-assistant/internal/infra/llm"
	"github.com/gayathri-1911/travel-assistant/internal/infra/llm/anthropicapi"
	"github.com/gayathri-1911/travel-assistant/internal/infra/llm/openaiapi"
)

func provideCatalogConfig(cfg *config.Config) catalog.Config {
	return catalog.Config{
		TourCacheTTL:        cfg.Catalog.TourCacheTTL,
		DestinationCacheTTL: cfg.Catalog.DestinationCacheTTL,
	}
}

func provideChatConfig(cfg *config.Config) chat.Config {
	return chat.Config{
		MaxContextTokens:  cfg.Chat.MaxContextTokens,
		RequestTimeout:    cfg.LLM.RequestTimeout,
		MaxRelatedContent: cfg.Chat.MaxRelatedContent,
	}
}

// provideSessionClient builds the LLM session client. A missing vendor key
// only disables that vendor's providers; the chat domain degrades to its
// apology fallback when a disabled provider is requested.
func provideSessionClient(cfg *config.Config, logger *slog.Logger) *llm.Client {
	var openaiClient llm.OpenAIClient
	if client, err := openaiapi.NewClient(cfg.LLM.OpenAIAPIKey, cfg.LLM.OpenAIBaseURL); err != nil {
		logger.Warn("openai-compatible providers disabled", "error", err)
	} else {
		openaiClient = client
	}

	var anthropicClient llm.AnthropicClient
	if client, err := anthropicapi.NewClient(cfg.LLM.AnthropicAPIKey, cfg.LLM.AnthropicBaseURL); err != nil {
		logger.Warn("anthropic provider disabled", "error", err)
	} else {
		anthropicClient = client
	}

	return llm.NewClient(llm.Config{
		SystemPrompt: cfg.Chat.SystemPrompt,
		Temperature:  cfg.LLM.Temperature,
		MaxTokens:    cfg.LLM.MaxTokens,
	}, openaiClient, anthropicClient, logger)
}

func provideCatalogRepository(cfg *config.Config, logger *slog.Logger) catalog.Repository {
	fallback := catalogrepo.NewMemoryRepository()
	dsn := strings.TrimSpace(cfg.Catalog.Postgres.DSN)
	if dsn == "" {
		logger.Info("catalog postgres dsn not set, using memory repository")
		return fallback
	}
	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		logger.Error("invalid postgres dsn, using memory repository", "error", err)
		return fallback
	}
	if cfg.Catalog.Postgres.MaxConns > 0 {
		poolConfig.MaxConns = cfg.Catalog.Postgres.MaxConns
	}
	if cfg.Catalog.Postgres.MinConns > 0 {
		poolConfig.MinConns = cfg.Catalog.Postgres.MinConns
	}
	pool, err := pgxpool.NewWithConfig(context.Background(), poolConfig)
	if err != nil {
		logger.Error("failed to initialize postgres pool, using memory repository", "error", err)
		return fallback
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := pool.Ping(ctx); err != nil {
		logger.Error("postgres ping failed, using memory repository", "error", err)
		pool.Close()
		return fallback
	}
	logger.Info("catalog postgres repository enabled")
	return catalogrepo.NewPostgresRepository(pool)
}

func provideCatalogCache(cfg *config.Config, logger *slog.Logger) catalog.Cache {
	if cfg.Catalog.Valkey.Enabled {
		opt, err := buildValkeyOptions(cfg)
		if err != nil {
			logger.Error("invalid valkey configuration, falling back to memory cache", "error", err)
			return catalogstore.NewMemoryStore()
		}
		client, err := valkey.NewClient(opt)
		if err != nil {
			logger.Error("failed to create valkey client, falling back to memory cache", "error", err)
			return catalogstore.NewMemoryStore()
		}
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := client.Do(ctx, client.B().Ping().Build()).Error(); err != nil {
			logger.Error("valkey ping failed, falling back to memory cache", "error", err)
		} else {
			logger.Info("catalog valkey cache enabled", "addr", cfg.Catalog.Valkey.Addr)
			return catalogstore.NewValkeyStore(client, "catalog")
		}
	}
	return catalogstore.NewMemoryStore()
}

func buildValkeyOptions(cfg *config.Config) (valkey.ClientOption, error) {
	var (
		opt valkey.ClientOption
		err error
	)
	if strings.Contains(cfg.Catalog.Valkey.Addr, "://") {
		opt, err = valkey.ParseURL(cfg.Catalog.Valkey.Addr)
	} else {
		opt = valkey.ClientOption{InitAddress: []string{cfg.Catalog.Valkey.Addr}}
	}
	if err != nil {
		return valkey.ClientOption{}, err
	}
	return opt, nil
}
