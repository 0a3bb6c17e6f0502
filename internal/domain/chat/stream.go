package chat

import (
	"context"
	"strings"
	"time"
)

// Inter-chunk pacing per provider. This is a presentation device giving clients
// a progressive-rendering experience over an already-complete response, not a
// reflection of real token latency.
var providerChunkDelays = map[string]time.Duration{
	"groq":   50 * time.Millisecond,
	"openai": 80 * time.Millisecond,
}

const defaultChunkDelay = 100 * time.Millisecond

func chunkDelay(providerID string) time.Duration {
	if delay, ok := providerChunkDelays[providerID]; ok {
		return delay
	}
	return defaultChunkDelay
}

// emitChunks replays content word by word as cumulative chunks on out.
// Only the final chunk carries is_complete. Emission stops early when ctx is
// cancelled (client disconnect).
func emitChunks(ctx context.Context, out chan<- StreamChunk, content, providerID, timestamp string) {
	words := strings.Fields(content)
	delay := chunkDelay(providerID)

	var accumulated strings.Builder
	for i, word := range words {
		if i > 0 {
			accumulated.WriteString(" ")
		}
		accumulated.WriteString(word)

		chunk := StreamChunk{
			Content:    accumulated.String(),
			IsComplete: i == len(words)-1,
			Provider:   providerID,
			Timestamp:  timestamp,
		}
		select {
		case out <- chunk:
		case <-ctx.Done():
			return
		}

		if i == len(words)-1 {
			return
		}
		timer := time.NewTimer(delay)
		select {
		case <-timer.C:
		case <-ctx.Done():
			timer.Stop()
			return
		}
	}
}
