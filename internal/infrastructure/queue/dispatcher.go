package queue

import (
	"context"
	"hash/fnv"

	"github.com/rs/zerolog"

	"github.com/marinacaribe/yacht-rental-system/internal/core/domain"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// Writer is the persistence surface the dispatcher drains into.
type Writer interface {
	Insert(ctx context.Context, entry *domain.ActivityLog) error
}

// Dispatcher routes audit entries to a fixed set of workers using consistent
// hashing on the actor id, guaranteeing per-actor entry ordering. Enqueue is
// best-effort: audit logging must never block or fail the operation that
// produced the entry, so a full queue drops the entry with a warning.
type Dispatcher struct {
	workers []chan *domain.ActivityLog
	writer  Writer
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, writer Writer, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan *domain.ActivityLog, numWorkers),
		writer:  writer,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan *domain.ActivityLog, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue hands an entry to the worker responsible for its actor. Never blocks.
func (d *Dispatcher) Enqueue(entry *domain.ActivityLog) {
	select {
	case d.workers[d.shardIndex(entry.UserID)] <- entry:
	default:
		d.log.Warn().
			Str("user_id", entry.UserID).
			Str("action", entry.Action).
			Msg("activity queue full, entry dropped")
	}
}

// shardIndex maps an actor id deterministically to a worker index.
func (d *Dispatcher) shardIndex(userID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(userID))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan *domain.ActivityLog) {
	for {
		select {
		case <-ctx.Done():
			return
		case entry, ok := <-ch:
			if !ok {
				return
			}
			if err := d.writer.Insert(ctx, entry); err != nil {
				d.log.Error().Err(err).
					Str("user_id", entry.UserID).
					Str("action", entry.Action).
					Int("worker_id", id).
					Msg("activity write failed")
			}
		}
	}
}
