package chat

import "time"

// Session captures one conversation owned by a user. Sessions are created
// implicitly on first use of a session id and are never explicitly destroyed.
type Session struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
}
