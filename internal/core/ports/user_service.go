package ports

import (
	"context"

	"github.com/marinacaribe/yacht-rental-system/internal/core/domain"
)

// CreateUserInput carries the data needed to create a user account.
type CreateUserInput struct {
	Username string
	Email    string
	Password string
	Role     string
	// Actor is the id of the user performing the operation, for the audit log.
	Actor string
}

// UpdateUserInput carries a full user update. Password is optional; when
// empty the stored hash is kept.
type UpdateUserInput struct {
	ID       string
	Username string
	Email    string
	Password string
	Role     string
	Status   domain.AccountStatus
	Actor    string
}

// UserService defines use-case operations for user accounts.
type UserService interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetAll(ctx context.Context) ([]*domain.User, error)
	GetActive(ctx context.Context) ([]*domain.User, error)
	Search(ctx context.Context, query string) ([]*domain.User, error)
	Create(ctx context.Context, in CreateUserInput) (*domain.User, error)
	Update(ctx context.Context, in UpdateUserInput) (*domain.User, error)
	// Delete deactivates the account (soft delete). User records are never
	// removed from the store.
	Delete(ctx context.Context, id, actor string) error
}
