package ports

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/marinacaribe/yacht-rental-system/internal/core/domain"
)

// CreateYachtInput carries the data needed to register a yacht.
type CreateYachtInput struct {
	Brand              string
	Model              string
	Year               int
	Size               string
	Capacity           int
	RegistrationNumber string
	DailyPrice         decimal.Decimal
}

// UpdateYachtInput carries a full yacht update.
type UpdateYachtInput struct {
	ID                 string
	Brand              string
	Model              string
	Year               int
	Size               string
	Capacity           int
	RegistrationNumber string
	DailyPrice         decimal.Decimal
	Availability       domain.Availability
}

// YachtService defines use-case operations for the yacht inventory.
type YachtService interface {
	GetByID(ctx context.Context, id string) (*domain.Yacht, error)
	GetAll(ctx context.Context) ([]*domain.Yacht, error)
	GetAvailable(ctx context.Context) ([]*domain.Yacht, error)
	Search(ctx context.Context, query string) ([]*domain.Yacht, error)
	Create(ctx context.Context, in CreateYachtInput) (*domain.Yacht, error)
	Update(ctx context.Context, in UpdateYachtInput) (*domain.Yacht, error)
	// Delete marks the yacht unavailable (soft delete).
	Delete(ctx context.Context, id string) error
}
