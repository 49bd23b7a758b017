package entity

import "time"

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one chat turn. Messages are owned by the caller's session
// state; they are only persisted when attached to a consultation.
type Message struct {
	ID        string    `json:"id" firestore:"id"`
	Role      string    `json:"role" firestore:"role"` // "user" or "assistant"
	Content   string    `json:"content" firestore:"content"`
	Timestamp time.Time `json:"timestamp" firestore:"timestamp"`
}
