package interfaces

import (
	"context"
	"time"

	"multichat/internal/entities"
)

// ConversationStore keeps the per-session message log.
type ConversationStore interface {
	Record(sessionID string, entry entities.ConversationEntry)
	// RecordAndRecent atomically returns the last n entries and records entry.
	RecordAndRecent(sessionID string, entry entities.ConversationEntry, n int) []entities.ConversationEntry
	Recent(sessionID string, n int) []entities.ConversationEntry
	History(sessionID string, limit int) []entities.ConversationEntry
	Count(sessionID string) int
	Delete(sessionID string) bool
	Sessions() int
}

// Responder produces the assistant reply for a user message.
type Responder interface {
	Reply(ctx context.Context, platform entities.Platform, text, sessionID string) (entities.Reply, error)
}

// RateLimiter reports whether key may proceed and, if not, how long until it may.
type RateLimiter interface {
	Allow(key string) (bool, time.Duration)
}

// ReplyObserver receives a notification for every reply and every throttled request.
type ReplyObserver interface {
	ObserveReply(platform entities.Platform, category string)
	ObserveRateLimited(route string)
}
