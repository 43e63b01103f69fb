package mongo

import (
	"context"
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/marinacaribe/yacht-rental-system/internal/core/domain"
)

const collectionActivityLogs = "activity_logs"

// ActivityRepository persists append-only audit entries.
type ActivityRepository struct {
	col *mongo.Collection
}

func NewActivityRepository(db *mongo.Database) *ActivityRepository {
	return &ActivityRepository{col: db.Collection(collectionActivityLogs)}
}

type activityDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	UserID    string             `bson:"user_id"`
	Action    string             `bson:"action"`
	Detail    string             `bson:"detail"`
	Timestamp int64              `bson:"timestamp"`
}

func (d activityDoc) toDomain() *domain.ActivityLog {
	return &domain.ActivityLog{
		ID:        d.ID.Hex(),
		UserID:    d.UserID,
		Action:    d.Action,
		Detail:    d.Detail,
		Timestamp: millisToTime(d.Timestamp),
	}
}

func (r *ActivityRepository) Insert(ctx context.Context, entry *domain.ActivityLog) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := activityDoc{
		UserID:    entry.UserID,
		Action:    entry.Action,
		Detail:    entry.Detail,
		Timestamp: entry.Timestamp.UnixMilli(),
	}
	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return storeErr("insert activity", err)
	}
	return nil
}

// Recent returns the newest entries, capped at limit.
func (r *ActivityRepository) Recent(ctx context.Context, limit int) ([]*domain.ActivityLog, error) {
	entries, err := r.find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}

// ByUser returns all entries recorded for the given actor, newest first.
func (r *ActivityRepository) ByUser(ctx context.Context, userID string) ([]*domain.ActivityLog, error) {
	return r.find(ctx, bson.M{"user_id": userID})
}

func (r *ActivityRepository) find(ctx context.Context, filter bson.M) ([]*domain.ActivityLog, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, storeErr("list activity", err)
	}
	defer cur.Close(ctx)

	var docs []activityDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, storeErr("decode activity", err)
	}

	entries := make([]*domain.ActivityLog, 0, len(docs))
	for _, d := range docs {
		entries = append(entries, d.toDomain())
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Timestamp.After(entries[j].Timestamp) })
	return entries, nil
}

// DeleteOlderThan removes entries stamped before cutoff. Zero matches is a
// no-op success.
func (r *ActivityRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteMany(ctx, bson.M{"timestamp": bson.M{"$lt": cutoff.UnixMilli()}})
	if err != nil {
		return 0, storeErr("prune activity", err)
	}
	return res.DeletedCount, nil
}
