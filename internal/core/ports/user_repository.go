package ports

import (
	"context"

	"github.com/marinacaribe/yacht-rental-system/internal/core/domain"
)

// UserRepository defines persistence operations for users.
//
// Lookups by unique field (username, email) return (nil, nil) when no match
// exists: absence is a normal answer for the uniqueness pre-checks, not an
// error. GetByID returns domain.ErrUserNotFound instead, since callers asking
// for a specific id expect the record to exist.
type UserRepository interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetAll(ctx context.Context) ([]*domain.User, error)
	GetActive(ctx context.Context) ([]*domain.User, error)
	Insert(ctx context.Context, user *domain.User) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
}
