package ports

import (
	"context"

	"github.com/marinacaribe/yacht-rental-system/internal/core/domain"
)

// ReservationRepository defines persistence operations for reservations.
//
// List methods return results already ordered: All descending by creation
// time, the filtered variants descending by start date. Ordering happens in
// memory after the fetch; see the implementation for the index trade-off.
type ReservationRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Reservation, error)
	All(ctx context.Context) ([]*domain.Reservation, error)
	ByClient(ctx context.Context, clientID string) ([]*domain.Reservation, error)
	ByYacht(ctx context.Context, yachtID string) ([]*domain.Reservation, error)
	ByStatus(ctx context.Context, status domain.ReservationStatus) ([]*domain.Reservation, error)
	Insert(ctx context.Context, r *domain.Reservation) (*domain.Reservation, error)
	Update(ctx context.Context, r *domain.Reservation) error
	// Delete removes the document permanently. Reservations are the only
	// hard-deletable entity in the model.
	Delete(ctx context.Context, id string) error
}
