package chat

import "time"

// Sender values recorded on persisted turns.
const (
	SenderUser      = "user"
	SenderAssistant = "assistant"
)

// Message persists individual conversation turns.
type Message struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	SessionID string    `json:"sessionId"`
	Sender    string    `json:"sender"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}
