package ports

import (
	"context"

	"github.com/marinacaribe/yacht-rental-system/internal/core/domain"
)

// YachtRepository defines persistence operations for yachts.
type YachtRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Yacht, error)
	GetAll(ctx context.Context) ([]*domain.Yacht, error)
	GetAvailable(ctx context.Context) ([]*domain.Yacht, error)
	Insert(ctx context.Context, yacht *domain.Yacht) (*domain.Yacht, error)
	Update(ctx context.Context, yacht *domain.Yacht) error
}
