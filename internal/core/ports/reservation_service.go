package ports

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/marinacaribe/yacht-rental-system/internal/core/domain"
)

// CreateReservationInput carries the data needed to book a yacht.
// Status is optional; when empty the reservation starts pending.
type CreateReservationInput struct {
	ClientID  string
	YachtID   string
	StartDate time.Time
	EndDate   time.Time
	Status    domain.ReservationStatus
	CreatedBy string
}

// UpdateReservationInput carries a full reservation update. The total price
// is always recomputed from the dates and the yacht's daily price; it is
// never accepted from the caller.
type UpdateReservationInput struct {
	ID         string
	ClientID   string
	YachtID    string
	StartDate  time.Time
	EndDate    time.Time
	Status     domain.ReservationStatus
	ModifiedBy string
}

// NameLookup resolves an entity id to a display name. The second return is
// false when the id does not resolve (a dangling reference).
type NameLookup func(id string) (string, bool)

// ReservationSummary is a reservation enriched with display names resolved
// through caller-supplied lookups.
type ReservationSummary struct {
	Reservation *domain.Reservation `json:"reservation"`
	ClientName  string              `json:"client_name"`
	YachtName   string              `json:"yacht_name"`
	Days        int64               `json:"days"`
	TotalPrice  decimal.Decimal     `json:"total_price"`
}

// ReservationService owns the reservation lifecycle and pricing.
type ReservationService interface {
	GetByID(ctx context.Context, id string) (*domain.Reservation, error)
	All(ctx context.Context) ([]*domain.Reservation, error)
	ByClient(ctx context.Context, clientID string) ([]*domain.Reservation, error)
	ByYacht(ctx context.Context, yachtID string) ([]*domain.Reservation, error)
	ByStatus(ctx context.Context, status domain.ReservationStatus) ([]*domain.Reservation, error)
	Create(ctx context.Context, in CreateReservationInput) (*domain.Reservation, error)
	Update(ctx context.Context, in UpdateReservationInput) (*domain.Reservation, error)
	Cancel(ctx context.Context, id, cancelledBy string) (*domain.Reservation, error)
	Delete(ctx context.Context, id string) error
}
