package chat

import (
	"context"
	"strings"

	"github.com/google/uuid"
)

// Session is one provider-scoped conversation handle. The handle owns the
// running conversation state; this domain keeps only the id and provider.
type Session interface {
	Send(ctx context.Context, text string) (string, error)
	ProviderID() string
}

// SessionClient creates provider-scoped conversational sessions preloaded with
// the assistant persona.
type SessionClient interface {
	CreateSession(sessionID, providerID string) (Session, error)
}

const sessionIDPrefix = "session_"

// NewSessionID synthesizes a session id of the form session_<8 hex chars>.
// Collisions are accepted as negligible at 32 bits of entropy.
func NewSessionID() string {
	hex := strings.ReplaceAll(uuid.NewString(), "-", "")
	return sessionIDPrefix + hex[:8]
}

func resolveSessionID(requested string) string {
	if trimmed := strings.TrimSpace(requested); trimmed != "" {
		return trimmed
	}
	return NewSessionID()
}
