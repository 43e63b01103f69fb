package ports

import (
	"context"

	"github.com/marinacaribe/yacht-rental-system/internal/core/domain"
)

// AuthService implements login, logout, and session inspection.
type AuthService interface {
	// Login verifies credentials, persists a session, and returns a signed
	// bearer token alongside the authenticated user.
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
	// CurrentSession returns the live session for the id, or (nil, nil) when
	// none exists. A session older than the timeout is cleared as a side
	// effect and reported as domain.ErrSessionExpired.
	CurrentSession(ctx context.Context, sessionID string) (*Session, error)
	// Logout records the logout and clears the session. Logging out an
	// already-cleared session is a quiet no-op.
	Logout(ctx context.Context, sessionID string) error
}
