package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/marinacaribe/yacht-rental-system/internal/core/domain"
	"github.com/marinacaribe/yacht-rental-system/internal/core/ports"
)

type stubAuthService struct {
	loginFn          func(ctx context.Context, username, password string) (string, *domain.User, error)
	currentSessionFn func(ctx context.Context, sessionID string) (*ports.Session, error)
	logoutFn         func(ctx context.Context, sessionID string) error
}

func (s *stubAuthService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	return s.loginFn(ctx, username, password)
}

func (s *stubAuthService) CurrentSession(ctx context.Context, sessionID string) (*ports.Session, error) {
	return s.currentSessionFn(ctx, sessionID)
}

func (s *stubAuthService) Logout(ctx context.Context, sessionID string) error {
	return s.logoutFn(ctx, sessionID)
}

func newTestContext(t *testing.T, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Login_Success(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, username, password string) (string, *domain.User, error) {
			if username != "admin" || password != "admin123" {
				t.Fatalf("unexpected args: %s %s", username, password)
			}
			return "token123", &domain.User{ID: "user_1", Username: "admin", Role: domain.RoleAdmin}, nil
		},
	}
	handler := NewAuthHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/auth/login", `{"username":"admin","password":"admin123"}`)
	if err := handler.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["token"] != "token123" {
		t.Fatalf("expected token, got %v", resp["token"])
	}
	user, ok := resp["user"].(map[string]any)
	if !ok || user["username"] != "admin" || user["role"] != "admin" {
		t.Fatalf("unexpected user payload: %+v", user)
	}
	if _, found := user["password_hash"]; found {
		t.Fatalf("password hash leaked in response")
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, username, password string) (string, *domain.User, error) {
			return "", nil, domain.ErrInvalidCredentials
		},
	}
	handler := NewAuthHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/auth/login", `{"username":"admin","password":"wrong"}`)
	err := handler.Login(c)
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthHandler_Login_InvalidPayload(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, username, password string) (string, *domain.User, error) {
			t.Fatalf("should not be called")
			return "", nil, nil
		},
	}
	handler := NewAuthHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/auth/login", "not-json")
	err := handler.Login(c)
	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestAuthHandler_Login_MissingFields(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, username, password string) (string, *domain.User, error) {
			t.Fatalf("should not be called")
			return "", nil, nil
		},
	}
	handler := NewAuthHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/auth/login", `{"username":"admin"}`)
	err := handler.Login(c)
	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestAuthHandler_Logout(t *testing.T) {
	var cleared string
	stub := &stubAuthService{
		logoutFn: func(ctx context.Context, sessionID string) error {
			cleared = sessionID
			return nil
		},
	}
	handler := NewAuthHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/auth/logout", "")
	c.Set("session_id", "sess_1")

	if err := handler.Logout(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if cleared != "sess_1" {
		t.Fatalf("expected sess_1 cleared, got %q", cleared)
	}
}

func TestAuthHandler_Me_Success(t *testing.T) {
	loginTime := time.Date(2026, 5, 10, 14, 30, 0, 0, time.UTC)
	stub := &stubAuthService{
		currentSessionFn: func(ctx context.Context, sessionID string) (*ports.Session, error) {
			if sessionID != "sess_1" {
				t.Fatalf("unexpected session id: %s", sessionID)
			}
			return &ports.Session{
				ID:        "sess_1",
				UserID:    "user_1",
				Username:  "admin",
				Role:      domain.RoleAdmin,
				LoginTime: loginTime,
			}, nil
		},
	}
	handler := NewAuthHandler(stub)

	c, rec := newTestContext(t, http.MethodGet, "/auth/me", "")
	c.Set("session_id", "sess_1")

	if err := handler.Me(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["username"] != "admin" || resp["role"] != "admin" {
		t.Fatalf("unexpected session payload: %+v", resp)
	}
	if resp["login_time"] != "2026-05-10T14:30:00Z" {
		t.Fatalf("unexpected login_time: %v", resp["login_time"])
	}
}

func TestAuthHandler_Me_SessionGone(t *testing.T) {
	stub := &stubAuthService{
		currentSessionFn: func(ctx context.Context, sessionID string) (*ports.Session, error) {
			return nil, nil
		},
	}
	handler := NewAuthHandler(stub)

	c, _ := newTestContext(t, http.MethodGet, "/auth/me", "")
	c.Set("session_id", "sess_gone")

	err := handler.Me(c)
	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) || httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}
