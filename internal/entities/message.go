package entities

import "time"

// ConversationEntry is what the conversation memory retains per message.
// Text is stored normalized (lower-cased, trimmed).
type ConversationEntry struct {
	Text      string    `json:"userMessage"`
	Timestamp time.Time `json:"timestamp"`
	Platform  Platform  `json:"platform"`
}

type Reply struct {
	Text     string
	Category string
}
