package chat

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/gayathri-1911/travel-assistant/internal/domain/catalog"
	"github.com/gayathri-1911/travel-assistant/pkg/metrics"
	"github.com/gayathri-1911/travel-assistant/pkg/util"
)

const apologyMessage = "I apologize, but I'm experiencing technical difficulties. Please try again in a moment."

// Service orchestrates one chat turn: resolve session, fetch catalog context,
// exchange with the LLM, and shape the result for direct or streamed delivery.
type Service interface {
	// Respond handles the non-streaming path. It never surfaces a failure to
	// the transport; any error becomes a success-shaped apology envelope.
	Respond(ctx context.Context, req Request) Response
	// Stream handles the streaming path. The channel is closed after the final
	// chunk; cancellation of ctx stops further emission.
	Stream(ctx context.Context, req Request) (StreamStart, <-chan StreamChunk)
}

type service struct {
	cfg      Config
	catalog  catalog.Service
	sessions SessionClient
	logger   *slog.Logger
	now      func() time.Time

	mu     sync.Mutex
	active map[string]Session
}

// NewService wires up the chat domain.
func NewService(cfg Config, catalogSvc catalog.Service, sessions SessionClient, logger *slog.Logger) Service {
	return &service{
		cfg:      cfg,
		catalog:  catalogSvc,
		sessions: sessions,
		logger:   logger.With("component", "chat.service"),
		now:      util.NowUTC,
		active:   make(map[string]Session),
	}
}

func (s *service) Respond(ctx context.Context, req Request) Response {
	sessionID := resolveSessionID(req.SessionID)
	provider := ResolveProvider(req.Provider)

	sess, err := s.sessionFor(sessionID, provider.ID)
	if err != nil {
		s.logger.Error("session creation failed", "session", sessionID, "provider", provider.ID, "error", err)
		return s.fallbackResponse(sessionID, provider.ID)
	}
	providerID := sess.ProviderID()

	answer, cc, usage, err := s.converse(ctx, sess, req.Query)
	if err != nil {
		s.logger.Error("chat turn failed", "session", sessionID, "provider", providerID, "error", err)
		return s.fallbackResponse(sessionID, providerID)
	}

	return Response{
		Success: true,
		Message: Message{
			Role:      "assistant",
			Content:   answer,
			Timestamp: s.timestamp(),
			Provider:  providerID,
		},
		SessionID:      sessionID,
		RelatedContent: relatedTourUIDs(cc, s.cfg.MaxRelatedContent),
		TokenUsage:     usage,
	}
}

func (s *service) Stream(ctx context.Context, req Request) (StreamStart, <-chan StreamChunk) {
	sessionID := resolveSessionID(req.SessionID)
	provider := ResolveProvider(req.Provider)

	sess, sessionErr := s.sessionFor(sessionID, provider.ID)
	providerID := provider.ID
	if sessionErr == nil {
		providerID = sess.ProviderID()
	}

	start := StreamStart{Type: "start", SessionID: sessionID, Provider: providerID}

	out := make(chan StreamChunk)
	go func() {
		defer close(out)

		if sessionErr != nil {
			s.logger.Error("session creation failed", "session", sessionID, "provider", providerID, "error", sessionErr)
			s.emitErrorChunk(ctx, out, providerID, sessionErr)
			return
		}

		answer, _, _, err := s.converse(ctx, sess, req.Query)
		if err != nil {
			s.logger.Error("chat stream turn failed", "session", sessionID, "provider", providerID, "error", err)
			s.emitErrorChunk(ctx, out, providerID, err)
			return
		}
		emitChunks(ctx, out, answer, providerID, s.timestamp())
	}()

	return start, out
}

// converse runs the context-augmented exchange for one turn. A failed catalog
// search degrades to an empty context instead of aborting the turn.
func (s *service) converse(ctx context.Context, sess Session, query string) (string, catalog.ContentContext, *metrics.TokenUsage, error) {
	cc, err := s.catalog.Search(ctx, query)
	if err != nil {
		s.logger.Warn("content search failed, continuing with empty context", "error", err)
		cc = catalog.ContentContext{}
	}

	contextBlock := truncateToTokenBudget(catalog.FormatContext(cc), s.cfg.MaxContextTokens)
	prompt := buildPrompt(contextBlock, query)

	callCtx := ctx
	if s.cfg.RequestTimeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, s.cfg.RequestTimeout)
		defer cancel()
	}

	answer, err := sess.Send(callCtx, prompt)
	if err != nil {
		return "", cc, nil, err
	}

	usage := &metrics.TokenUsage{
		PromptTokens:     countTokens(prompt),
		CompletionTokens: countTokens(answer),
	}
	usage.TotalTokens = usage.PromptTokens + usage.CompletionTokens
	return answer, cc, usage, nil
}

// sessionFor returns the live handle for a session id, creating one on first
// use. A reused id keeps the provider it was created with; the requested
// provider only applies to new sessions.
func (s *service) sessionFor(sessionID, providerID string) (Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if sess, ok := s.active[sessionID]; ok {
		return sess, nil
	}
	sess, err := s.sessions.CreateSession(sessionID, providerID)
	if err != nil {
		return nil, err
	}
	s.active[sessionID] = sess
	return sess, nil
}

// fallbackResponse implements the always-degrade-to-apology policy: the chat
// transport contract never reports failure, so every error collapses into a
// success envelope whose inner message carries the apology and an error marker.
func (s *service) fallbackResponse(sessionID, providerID string) Response {
	return Response{
		Success: true,
		Message: Message{
			Role:      "assistant",
			Content:   apologyMessage,
			Timestamp: s.timestamp(),
			Provider:  providerID,
			Error:     true,
		},
		SessionID: sessionID,
	}
}

func (s *service) emitErrorChunk(ctx context.Context, out chan<- StreamChunk, providerID string, err error) {
	chunk := StreamChunk{
		Content:    apologyMessage,
		IsComplete: true,
		Provider:   providerID,
		Timestamp:  s.timestamp(),
		Error:      err.Error(),
	}
	select {
	case out <- chunk:
	case <-ctx.Done():
	}
}

func (s *service) timestamp() string {
	return s.now().Format(time.RFC3339)
}

func relatedTourUIDs(cc catalog.ContentContext, limit int) []string {
	if limit <= 0 || len(cc.Tours) == 0 {
		return nil
	}
	uids := make([]string, 0, limit)
	for _, tour := range cc.Tours {
		uids = append(uids, tour.UID)
		if len(uids) >= limit {
			break
		}
	}
	return uids
}
