package chat

import (
	"time"

	"github.com/gayathri-1911/travel-assistant/pkg/metrics"
)

// Request is one chat turn from the caller.
type Request struct {
	Query     string `json:"query"`
	Provider  string `json:"provider,omitempty"`
	SessionID string `json:"sessionId,omitempty"`
}

// Message is the assistant message embedded in a chat response. Error is set
// only on the synthesized apology message.
type Message struct {
	Role      string `json:"role"`
	Content   string `json:"content"`
	Timestamp string `json:"timestamp"`
	Provider  string `json:"provider"`
	Error     bool   `json:"error,omitempty"`
}

// Response is the envelope returned by the non-streaming chat endpoint.
// Success stays true even when the inner message is an apology.
type Response struct {
	Success        bool                `json:"success"`
	Message        Message             `json:"message"`
	SessionID      string              `json:"sessionId"`
	RelatedContent []string            `json:"relatedContent,omitempty"`
	TokenUsage     *metrics.TokenUsage `json:"tokenUsage,omitempty"`
}

// StreamStart opens every event stream before any content chunk.
type StreamStart struct {
	Type      string `json:"type"`
	SessionID string `json:"sessionId"`
	Provider  string `json:"provider"`
}

// StreamChunk carries the cumulative response text built so far. IsComplete is
// true only on the final chunk; Error is set on the single chunk emitted when
// the upstream call fails.
type StreamChunk struct {
	Content    string `json:"content"`
	IsComplete bool   `json:"is_complete"`
	Provider   string `json:"provider"`
	Timestamp  string `json:"timestamp"`
	Error      string `json:"error,omitempty"`
}

// Config holds runtime knobs for the chat domain.
type Config struct {
	// MaxContextTokens caps the catalog context block prepended to the prompt.
	MaxContextTokens int
	// RequestTimeout bounds a single LLM exchange.
	RequestTimeout time.Duration
	// MaxRelatedContent caps the tour uids echoed back to the caller.
	MaxRelatedContent int
}
