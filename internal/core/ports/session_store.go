package ports

import (
	"context"
	"time"
)

// Session is the persisted login record. LoginTime anchors the one-hour
// inactivity window checked lazily on every access.
type Session struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	LoginTime time.Time `json:"login_time"`
}

// SessionStore persists session records in the key-value store.
// Get returns (nil, nil) when no session exists under the id.
type SessionStore interface {
	Save(ctx context.Context, s *Session) error
	Get(ctx context.Context, id string) (*Session, error)
	Delete(ctx context.Context, id string) error
}
