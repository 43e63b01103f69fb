package ports

import (
	"context"

	"github.com/marinacaribe/yacht-rental-system/internal/core/domain"
)

// ClientRepository defines persistence operations for clients.
// Unique-field lookups return (nil, nil) on no match; GetByID returns
// domain.ErrClientNotFound.
type ClientRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Client, error)
	GetByCedula(ctx context.Context, cedula string) (*domain.Client, error)
	GetByEmail(ctx context.Context, email string) (*domain.Client, error)
	GetByLicense(ctx context.Context, licenseNumber string) (*domain.Client, error)
	GetAll(ctx context.Context) ([]*domain.Client, error)
	GetActive(ctx context.Context) ([]*domain.Client, error)
	Insert(ctx context.Context, client *domain.Client) (*domain.Client, error)
	Update(ctx context.Context, client *domain.Client) error
}
