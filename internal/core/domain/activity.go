package domain

import "time"

// Activity action codes.
const (
	ActionLogin             = "LOGIN"
	ActionLogout            = "LOGOUT"
	ActionCreateUser        = "CREATE_USER"
	ActionUpdateUser        = "UPDATE_USER"
	ActionDeleteUser        = "DELETE_USER"
	ActionCreateReservation = "CREATE_RESERVATION"
	ActionCancelReservation = "CANCEL_RESERVATION"
)

// ActivityLog is an append-only audit entry. Entries are immutable once
// written and only ever removed in bulk by age-based pruning.
type ActivityLog struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Action    string    `json:"action"`
	Detail    string    `json:"detail"`
	Timestamp time.Time `json:"timestamp"`
}
