package ports

import (
	"context"

	"github.com/marinacaribe/yacht-rental-system/internal/core/domain"
)

// CreateClientInput carries the data needed to register a client.
// Phone and LicenseNumber are optional.
type CreateClientInput struct {
	Email         string
	Cedula        string
	Phone         string
	FirstNames    string
	LastNames     string
	LicenseNumber string
}

// UpdateClientInput carries a full client update.
type UpdateClientInput struct {
	ID            string
	Email         string
	Cedula        string
	Phone         string
	FirstNames    string
	LastNames     string
	LicenseNumber string
	Status        domain.AccountStatus
}

// ClientService defines use-case operations for clients.
type ClientService interface {
	GetByID(ctx context.Context, id string) (*domain.Client, error)
	GetAll(ctx context.Context) ([]*domain.Client, error)
	GetActive(ctx context.Context) ([]*domain.Client, error)
	Search(ctx context.Context, query string) ([]*domain.Client, error)
	Create(ctx context.Context, in CreateClientInput) (*domain.Client, error)
	Update(ctx context.Context, in UpdateClientInput) (*domain.Client, error)
	// Delete deactivates the client (soft delete).
	Delete(ctx context.Context, id string) error
}
