package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// ReservationStatus is the lifecycle state of a reservation.
//
// Edits are deliberately unguarded: Update accepts any status value,
// including transitions such as confirmed → pending, and Cancel overwrites an
// already-cancelled reservation without error. The permissiveness matches the
// system this replaces; callers wanting stricter rules must enforce them at
// the edge.
type ReservationStatus string

const (
	ReservationPending   ReservationStatus = "pending"
	ReservationConfirmed ReservationStatus = "confirmed"
	ReservationCancelled ReservationStatus = "cancelled"
)

// ValidReservationStatus reports whether s is one of the known states.
func ValidReservationStatus(s ReservationStatus) bool {
	switch s {
	case ReservationPending, ReservationConfirmed, ReservationCancelled:
		return true
	}
	return false
}

var (
	ErrReservationNotFound = errors.New("reservation not found")
	ErrInvalidStatus       = errors.New("invalid reservation status")
)

const millisPerDay = 86_400_000

// WholeDays returns the number of complete days between start and end,
// computed as the floor of the millisecond difference over one day.
func WholeDays(start, end time.Time) int64 {
	return (end.UnixMilli() - start.UnixMilli()) / millisPerDay
}

// RentalPrice computes the total price of a rental: whole days multiplied by
// the yacht's daily price. Rounding is a display concern; the raw product is
// stored as-is.
func RentalPrice(start, end time.Time, dailyPrice decimal.Decimal) decimal.Decimal {
	return decimal.NewFromInt(WholeDays(start, end)).Mul(dailyPrice)
}

// Reservation links a client to a yacht for a date range. References are by
// identifier only; the store enforces no foreign keys, so readers must
// tolerate dangling client or yacht ids and render them as unknown.
//
// Reservations are the only hard-deletable entity in the model.
type Reservation struct {
	ID          string            `json:"id"`
	ClientID    string            `json:"client_id"`
	YachtID     string            `json:"yacht_id"`
	StartDate   time.Time         `json:"start_date"`
	EndDate     time.Time         `json:"end_date"`
	Status      ReservationStatus `json:"status"`
	TotalPrice  decimal.Decimal   `json:"total_price"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
	ModifiedBy  string            `json:"modified_by"`
	CancelledBy string            `json:"cancelled_by,omitempty"`
}
