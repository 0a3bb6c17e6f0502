package llm

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/gayathri-1911/travel-assistant/internal/domain/chat"
	"github.com/gayathri-1911/travel-assistant/internal/infra/llm/anthropicapi"
	"github.com/gayathri-1911/travel-assistant/internal/infra/llm/openaiapi"
	apperrors "github.com/gayathri-1911/travel-assistant/pkg/errors"
)

// OpenAIClient is the chat-completions transport used by openai-vendor providers.
type OpenAIClient interface {
	CreateChatCompletion(ctx context.Context, req openaiapi.ChatCompletionRequest) (openaiapi.ChatCompletionResponse, error)
}

// AnthropicClient is the messages transport used by the claude provider.
type AnthropicClient interface {
	CreateMessage(ctx context.Context, req anthropicapi.MessageRequest) (string, error)
}

// Config holds the exchange settings shared by every session.
type Config struct {
	SystemPrompt string
	Temperature  float32
	MaxTokens    int
}

// Client creates provider-scoped conversational sessions. Each session handle
// owns its running transcript; nothing is persisted beyond process memory.
type Client struct {
	cfg       Config
	openai    OpenAIClient
	anthropic AnthropicClient
	logger    *slog.Logger
}

// NewClient constructs the session client. A nil vendor transport disables the
// providers that depend on it.
func NewClient(cfg Config, openai OpenAIClient, anthropic AnthropicClient, logger *slog.Logger) *Client {
	return &Client{
		cfg:       cfg,
		openai:    openai,
		anthropic: anthropic,
		logger:    logger.With("component", "llm.client"),
	}
}

// CreateSession implements chat.SessionClient. The session starts from the
// assistant persona and accumulates turns across Send calls.
func (c *Client) CreateSession(sessionID, providerID string) (chat.Session, error) {
	provider := chat.ResolveProvider(providerID)
	switch provider.Vendor {
	case "anthropic":
		if c.anthropic == nil {
			return nil, fmt.Errorf("provider %s is not configured", provider.ID)
		}
	default:
		if c.openai == nil {
			return nil, fmt.Errorf("provider %s is not configured", provider.ID)
		}
	}
	c.logger.Debug("session created", "session", sessionID, "provider", provider.ID, "model", provider.Model)
	return &session{client: c, provider: provider, sessionID: sessionID}, nil
}

type turn struct {
	role    string
	content string
}

type session struct {
	client    *Client
	provider  chat.Provider
	sessionID string

	mu    sync.Mutex
	turns []turn
}

// ProviderID implements chat.Session.
func (s *session) ProviderID() string {
	return s.provider.ID
}

// Send submits one user turn and blocks until the full assistant text is
// available. Every transport failure is re-raised as a provider_error; the
// failed user turn is dropped so the transcript stays consistent.
func (s *session) Send(ctx context.Context, text string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.turns = append(s.turns, turn{role: "user", content: text})

	var (
		answer string
		err    error
	)
	switch s.provider.Vendor {
	case "anthropic":
		answer, err = s.sendAnthropic(ctx)
	default:
		answer, err = s.sendOpenAI(ctx)
	}
	if err != nil {
		s.turns = s.turns[:len(s.turns)-1]
		return "", apperrors.Wrap("provider_error", "llm exchange failed", err)
	}

	s.turns = append(s.turns, turn{role: "assistant", content: answer})
	return answer, nil
}

func (s *session) sendOpenAI(ctx context.Context) (string, error) {
	messages := make([]openaiapi.Message, 0, len(s.turns)+1)
	messages = append(messages, openaiapi.Message{Role: "system", Content: s.client.cfg.SystemPrompt})
	for _, t := range s.turns {
		messages = append(messages, openaiapi.Message{Role: t.role, Content: t.content})
	}

	resp, err := s.client.openai.CreateChatCompletion(ctx, openaiapi.ChatCompletionRequest{
		Model:       s.provider.Model,
		Messages:    messages,
		Temperature: s.client.cfg.Temperature,
		MaxTokens:   s.client.cfg.MaxTokens,
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no choices returned for model %s", s.provider.Model)
	}
	return resp.Choices[0].Message.Content, nil
}

func (s *session) sendAnthropic(ctx context.Context) (string, error) {
	messages := make([]anthropicapi.Message, 0, len(s.turns))
	for _, t := range s.turns {
		messages = append(messages, anthropicapi.Message{Role: t.role, Content: t.content})
	}

	maxTokens := s.client.cfg.MaxTokens
	if maxTokens <= 0 {
		maxTokens = 1024
	}
	return s.client.anthropic.CreateMessage(ctx, anthropicapi.MessageRequest{
		Model:     s.provider.Model,
		MaxTokens: maxTokens,
		System:    s.client.cfg.SystemPrompt,
		Messages:  messages,
	})
}

var _ chat.SessionClient = (*Client)(nil)
