package domain

import (
	"errors"
	"time"
)

// Role names an actor's permission level.
const (
	RoleAdmin    = "admin"
	RoleEmployee = "employee"
)

// ValidRole reports whether role is one of the known roles.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleEmployee
}

// AccountStatus is the two-state lifecycle of soft-deletable records.
// Users and clients are never hard-deleted; deactivation is the only way out.
type AccountStatus string

const (
	AccountActive   AccountStatus = "active"
	AccountInactive AccountStatus = "inactive"
)

// IsActive reports whether the record participates in active listings.
func (s AccountStatus) IsActive() bool { return s == AccountActive }

// AccountStatusFromBool maps the store's boolean flag onto the tagged state.
func AccountStatusFromBool(active bool) AccountStatus {
	if active {
		return AccountActive
	}
	return AccountInactive
}

var (
	ErrInvalidRole        = errors.New("invalid role")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserInactive       = errors.New("user is inactive")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrSessionExpired     = errors.New("session expired")
	ErrForbidden          = errors.New("access forbidden")
)

// User models an authenticated actor in the system.
type User struct {
	ID           string        `json:"id"`
	Username     string        `json:"username"`
	Email        string        `json:"email"`
	PasswordHash string        `json:"-"`
	Role         string        `json:"role"`
	Status       AccountStatus `json:"status"`
	CreatedAt    time.Time     `json:"created_at"`
}
