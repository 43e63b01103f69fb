package service

import (
	"context"
	"time"

	"github.com/marinacaribe/yacht-rental-system/internal/core/domain"
	"github.com/marinacaribe/yacht-rental-system/internal/core/ports"
)

const defaultRecentLimit = 50

// ActivityQueue is the asynchronous entry point into the audit pipeline.
type ActivityQueue interface {
	Enqueue(entry *domain.ActivityLog)
}

// ActivityService records audit entries through a non-blocking queue and
// reads them straight from the repository. Writes are eventually consistent:
// an entry recorded a moment ago may not yet appear in Recent.
type ActivityService struct {
	queue ActivityQueue
	repo  ports.ActivityRepository
}

func NewActivityService(queue ActivityQueue, repo ports.ActivityRepository) *ActivityService {
	return &ActivityService{queue: queue, repo: repo}
}

// Record enqueues an audit entry stamped with the current time. It never
// blocks and never fails from the caller's perspective.
func (s *ActivityService) Record(userID, action, detail string) {
	s.queue.Enqueue(&domain.ActivityLog{
		UserID:    userID,
		Action:    action,
		Detail:    detail,
		Timestamp: time.Now().UTC(),
	})
}

// Recent returns the newest entries, newest first. A non-positive limit falls
// back to a sensible page size.
func (s *ActivityService) Recent(ctx context.Context, limit int) ([]*domain.ActivityLog, error) {
	if limit <= 0 {
		limit = defaultRecentLimit
	}
	return s.repo.Recent(ctx, limit)
}

func (s *ActivityService) ByUser(ctx context.Context, userID string) ([]*domain.ActivityLog, error) {
	if userID == "" {
		return nil, domain.ErrInvalidID
	}
	return s.repo.ByUser(ctx, userID)
}

// PruneOlderThan removes entries stamped before cutoff and returns the count
// removed.
func (s *ActivityService) PruneOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	return s.repo.DeleteOlderThan(ctx, cutoff)
}
