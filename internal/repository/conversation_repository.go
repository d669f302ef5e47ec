package repository

import (
	"fmt"
	"sync"

	lru "github.com/hashicorp/golang-lru"
	"github.com/rs/zerolog/log"

	"multichat/internal/entities"
)

const (
	DefaultHistoryLimit = 20
	DefaultMaxSessions  = 10000
)

// ConversationRepository is the in-process conversation memory. Each session
// keeps at most historyLimit entries; when maxSessions is reached the least
// recently used session is dropped. Nothing survives a restart.
type ConversationRepository struct {
	mu           sync.Mutex
	sessions     *lru.Cache
	historyLimit int
}

func NewConversationRepository(maxSessions, historyLimit int) (*ConversationRepository, error) {
	if maxSessions <= 0 {
		maxSessions = DefaultMaxSessions
	}
	if historyLimit <= 0 {
		historyLimit = DefaultHistoryLimit
	}

	cache, err := lru.NewWithEvict(maxSessions, func(key, _ interface{}) {
		log.Debug().Interface("session_id", key).Msg("session dropped from conversation memory")
	})
	if err != nil {
		return nil, fmt.Errorf("create session cache: %w", err)
	}

	return &ConversationRepository{
		sessions:     cache,
		historyLimit: historyLimit,
	}, nil
}

// Record appends entry to the session log, creating the log if absent and
// dropping the oldest entries beyond the history limit.
func (r *ConversationRepository) Record(sessionID string, entry entities.ConversationEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.store(sessionID, r.load(sessionID, true), entry)
}

// RecordAndRecent returns up to n of the entries that preceded entry and
// records entry, as one step. Concurrent callers on the same session each
// see the entries recorded before their own.
func (r *ConversationRepository) RecordAndRecent(sessionID string, entry entities.ConversationEntry, n int) []entities.ConversationEntry {
	r.mu.Lock()
	defer r.mu.Unlock()

	history := r.load(sessionID, true)
	prior := tail(history, n)
	r.store(sessionID, history, entry)
	return prior
}

// store must be called with r.mu held.
func (r *ConversationRepository) store(sessionID string, history []entities.ConversationEntry, entry entities.ConversationEntry) {
	next := make([]entities.ConversationEntry, 0, len(history)+1)
	next = append(next, history...)
	next = append(next, entry)
	if overflow := len(next) - r.historyLimit; overflow > 0 {
		next = next[overflow:]
	}
	r.sessions.Add(sessionID, next)
}

// Recent returns up to n of the latest entries, oldest first.
func (r *ConversationRepository) Recent(sessionID string, n int) []entities.ConversationEntry {
	r.mu.Lock()
	defer r.mu.Unlock()
	return tail(r.load(sessionID, true), n)
}

// History is like Recent but does not count as session activity.
func (r *ConversationRepository) History(sessionID string, limit int) []entities.ConversationEntry {
	r.mu.Lock()
	defer r.mu.Unlock()
	return tail(r.load(sessionID, false), limit)
}

func (r *ConversationRepository) Count(sessionID string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.load(sessionID, false))
}

func (r *ConversationRepository) Delete(sessionID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sessions.Remove(sessionID)
}

func (r *ConversationRepository) Sessions() int {
	return r.sessions.Len()
}

func (r *ConversationRepository) load(sessionID string, touch bool) []entities.ConversationEntry {
	var (
		v  interface{}
		ok bool
	)
	if touch {
		v, ok = r.sessions.Get(sessionID)
	} else {
		v, ok = r.sessions.Peek(sessionID)
	}
	if !ok {
		return nil
	}
	history, _ := v.([]entities.ConversationEntry)
	return history
}

func tail(history []entities.ConversationEntry, n int) []entities.ConversationEntry {
	if n <= 0 || n > len(history) {
		n = len(history)
	}
	out := make([]entities.ConversationEntry, n)
	copy(out, history[len(history)-n:])
	return out
}
