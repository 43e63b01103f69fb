package ports

import (
	"context"
	"time"

	"github.com/marinacaribe/yacht-rental-system/internal/core/domain"
)

// ActivityRecorder is the fire-and-forget side of the audit log. Record never
// blocks and never fails from the caller's perspective; write errors are
// logged by the worker that drains the queue.
type ActivityRecorder interface {
	Record(userID, action, detail string)
}

// ActivityService combines recording with the read and maintenance surface.
type ActivityService interface {
	ActivityRecorder
	Recent(ctx context.Context, limit int) ([]*domain.ActivityLog, error)
	ByUser(ctx context.Context, userID string) ([]*domain.ActivityLog, error)
	PruneOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}
