package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrYachtNotFound = errors.New("yacht not found")
	ErrNegativePrice = errors.New("daily price must not be negative")
)

// Availability is the two-state lifecycle of a yacht. Yachts are never
// hard-deleted; retiring one flips it to unavailable.
type Availability string

const (
	YachtAvailable   Availability = "available"
	YachtUnavailable Availability = "unavailable"
)

// IsAvailable reports whether the yacht appears in available listings.
func (a Availability) IsAvailable() bool { return a == YachtAvailable }

// AvailabilityFromBool maps the store's boolean flag onto the tagged state.
func AvailabilityFromBool(available bool) Availability {
	if available {
		return YachtAvailable
	}
	return YachtUnavailable
}

// Yacht is a rentable vessel. DailyPrice is the per-day rental rate used by
// the reservation pricing engine and must be non-negative.
type Yacht struct {
	ID                 string          `json:"id"`
	Brand              string          `json:"brand"`
	Model              string          `json:"model"`
	Year               int             `json:"year"`
	Size               string          `json:"size"`
	Capacity           int             `json:"capacity"`
	RegistrationNumber string          `json:"registration_number"`
	DailyPrice         decimal.Decimal `json:"daily_price"`
	Availability       Availability    `json:"availability"`
	CreatedAt          time.Time       `json:"created_at"`
}

// DisplayName renders "Brand Model (Year)", degrading gracefully when fields
// are missing in older documents.
func (y *Yacht) DisplayName() string {
	switch {
	case y.Brand == "" && y.Model == "":
		return y.RegistrationNumber
	case y.Brand == "":
		if y.Year > 0 {
			return fmt.Sprintf("%s (%d)", y.Model, y.Year)
		}
		return y.Model
	case y.Year > 0:
		return fmt.Sprintf("%s %s (%d)", y.Brand, y.Model, y.Year)
	default:
		return y.Brand + " " + y.Model
	}
}
