package service

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/marinacaribe/yacht-rental-system/internal/core/domain"
	"github.com/marinacaribe/yacht-rental-system/internal/core/ports"
)

// AuthService implements login, logout, and session inspection.
//
// Sessions are persisted in the key-value store and expire lazily: there is
// no background timer, the timeout is checked whenever the session is read
// and an expired record is cleared on the spot.
type AuthService struct {
	users     ports.UserRepository
	sessions  ports.SessionStore
	activity  ports.ActivityRecorder
	jwtSecret string
	timeout   time.Duration
	log       zerolog.Logger
}

func NewAuthService(
	users ports.UserRepository,
	sessions ports.SessionStore,
	activity ports.ActivityRecorder,
	jwtSecret string,
	timeout time.Duration,
	log zerolog.Logger,
) *AuthService {
	if timeout <= 0 {
		timeout = time.Hour
	}
	return &AuthService{
		users:     users,
		sessions:  sessions,
		activity:  activity,
		jwtSecret: jwtSecret,
		timeout:   timeout,
		log:       log,
	}
}

// Login verifies credentials, persists a session, and returns a signed token
// carrying the session id. A LOGIN audit entry is recorded only on success;
// a failed attempt leaves no session and no entry.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	if username == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return "", nil, err
	}
	if user == nil {
		return "", nil, domain.ErrUserNotFound
	}
	if !user.Status.IsActive() {
		return "", nil, domain.ErrUserInactive
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	sess := &ports.Session{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		Username:  user.Username,
		Role:      user.Role,
		LoginTime: time.Now().UTC(),
	}
	if err := s.sessions.Save(ctx, sess); err != nil {
		return "", nil, err
	}

	token, err := s.signToken(sess)
	if err != nil {
		return "", nil, err
	}

	s.activity.Record(user.ID, domain.ActionLogin, "user logged in")
	s.log.Info().Str("username", user.Username).Str("role", user.Role).Msg("login")

	return token, user, nil
}

// CurrentSession returns the live session for the id. It returns (nil, nil)
// when no session exists and domain.ErrSessionExpired when the record is
// older than the timeout, clearing it as a side effect.
func (s *AuthService) CurrentSession(ctx context.Context, sessionID string) (*ports.Session, error) {
	if sessionID == "" {
		return nil, nil
	}

	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if sess == nil {
		return nil, nil
	}

	if time.Since(sess.LoginTime) > s.timeout {
		if err := s.sessions.Delete(ctx, sessionID); err != nil {
			s.log.Warn().Err(err).Str("session_id", sessionID).Msg("failed to clear expired session")
		}
		return nil, domain.ErrSessionExpired
	}
	return sess, nil
}

// IsLoggedIn reports whether a live session exists under the id.
func (s *AuthService) IsLoggedIn(ctx context.Context, sessionID string) bool {
	sess, err := s.CurrentSession(ctx, sessionID)
	return err == nil && sess != nil
}

// Logout records the logout when a session is still live, then clears the
// record unconditionally. Logging out twice is a quiet no-op: no session, no
// duplicate audit entry.
func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}

	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		s.log.Warn().Err(err).Msg("session lookup failed during logout")
	}
	if sess != nil {
		s.activity.Record(sess.UserID, domain.ActionLogout, "user logged out")
	}
	return s.sessions.Delete(ctx, sessionID)
}

func (s *AuthService) signToken(sess *ports.Session) (string, error) {
	claims := jwt.MapClaims{
		"sid":      sess.ID,
		"username": sess.Username,
		"role":     sess.Role,
		"exp":      sess.LoginTime.Add(s.timeout).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
