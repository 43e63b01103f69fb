package ports

import (
	"context"
	"time"

	"github.com/marinacaribe/yacht-rental-system/internal/core/domain"
)

// ActivityRepository persists append-only audit entries.
type ActivityRepository interface {
	Insert(ctx context.Context, entry *domain.ActivityLog) error
	Recent(ctx context.Context, limit int) ([]*domain.ActivityLog, error)
	ByUser(ctx context.Context, userID string) ([]*domain.ActivityLog, error)
	// DeleteOlderThan removes all entries stamped before cutoff and returns
	// the number removed. An empty match is a no-op success.
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}
