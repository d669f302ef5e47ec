package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"multichat/internal/entities"
	"multichat/internal/interfaces"
)

const DefaultSessionID = "default"

// MessageService is the single reply pipeline shared by the HTTP server, the
// serverless handler and the terminal client.
// Priority: greeting -> identity -> topics -> farewell -> follow-up -> question -> mood -> default.
type MessageService struct {
	conversations interfaces.ConversationStore
	renderer      *Renderer
	observer      interfaces.ReplyObserver
	now           func() time.Time
}

type MessageServiceOption func(*MessageService)

func WithObserver(o interfaces.ReplyObserver) MessageServiceOption {
	return func(s *MessageService) { s.observer = o }
}

func WithClock(now func() time.Time) MessageServiceOption {
	return func(s *MessageService) { s.now = now }
}

func NewMessageService(conversations interfaces.ConversationStore, renderer *Renderer, opts ...MessageServiceOption) *MessageService {
	s := &MessageService{
		conversations: conversations,
		renderer:      renderer,
		now:           time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Reply classifies text against the session's recent history, records it and
// renders the answer. An empty sessionID maps to DefaultSessionID.
func (s *MessageService) Reply(ctx context.Context, platform entities.Platform, text, sessionID string) (entities.Reply, error) {
	if err := ctx.Err(); err != nil {
		return entities.Reply{}, err
	}
	if sessionID == "" {
		sessionID = DefaultSessionID
	}

	recent := s.conversations.RecordAndRecent(sessionID, entities.ConversationEntry{
		Text:      Normalize(text),
		Timestamp: s.now(),
		Platform:  platform,
	}, FollowUpWindow)

	category := Classify(text, recent)
	log.Debug().
		Str("session_id", sessionID).
		Str("platform", string(platform)).
		Str("category", string(category)).
		Msg("message classified")

	reply, err := s.renderer.Render(category, platform, text)
	if err != nil {
		return entities.Reply{}, fmt.Errorf("render %s reply: %w", category, err)
	}

	if s.observer != nil {
		s.observer.ObserveReply(platform, string(category))
	}

	return entities.Reply{Text: reply, Category: string(category)}, nil
}

// RecentFollowUpSignal reports whether text would read as a short
// acknowledgment of a prior exchange in this session.
func (s *MessageService) RecentFollowUpSignal(sessionID, text string) bool {
	if len(s.conversations.Recent(sessionID, FollowUpWindow)) == 0 {
		return false
	}
	return IsAcknowledgment(text)
}

// Forget drops everything remembered for sessionID.
func (s *MessageService) Forget(sessionID string) bool {
	return s.conversations.Delete(sessionID)
}

