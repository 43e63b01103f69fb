// Package mongo implements the document store gateway: one repository per
// collection, each method a single remote round trip with a per-call timeout.
//
// List queries deliberately fetch without a server-side sort and order in
// memory instead. Server-side ordering on these fields would require
// provisioning composite indexes per deployment; the catalogs are small
// enough that an O(n log n) client-side sort per fetch is the cheaper trade.
package mongo

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/marinacaribe/yacht-rental-system/internal/core/domain"
)

const defaultTimeout = 10 * time.Second

// Config captures the minimal settings required to establish a MongoDB connection.
type Config struct {
	URI      string
	Database string
	Timeout  time.Duration
}

// Connect establishes a MongoDB client, verifies connectivity with a ping, and
// returns both the client and the selected database. A default timeout is
// applied when none is provided.
func Connect(ctx context.Context, cfg Config) (*mongo.Client, *mongo.Database, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	connectCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, nil, fmt.Errorf("mongo connect: %w", err)
	}

	if err := client.Ping(connectCtx, nil); err != nil {
		_ = client.Disconnect(connectCtx)
		return nil, nil, fmt.Errorf("mongo ping: %w", err)
	}

	db := client.Database(cfg.Database)
	return client, db, nil
}

// storeErr tags a driver failure with the failing operation so callers can
// tell transport faults apart from domain-rule errors.
func storeErr(op string, err error) error {
	return &domain.StoreError{Op: op, Err: err}
}

// toDecimal128 converts a price for storage. The string round trip is
// lossless for any value within Decimal128 range.
func toDecimal128(d decimal.Decimal) primitive.Decimal128 {
	v, err := primitive.ParseDecimal128(d.String())
	if err != nil {
		return primitive.Decimal128{}
	}
	return v
}

func fromDecimal128(v primitive.Decimal128) decimal.Decimal {
	d, err := decimal.NewFromString(v.String())
	if err != nil {
		return decimal.Zero
	}
	return d
}

// duplicateField picks the offending field out of a duplicate-key error by
// scanning the driver message for the candidate index names.
func duplicateField(err error, candidates ...string) string {
	msg := err.Error()
	for _, f := range candidates {
		if strings.Contains(msg, f) {
			return f
		}
	}
	if len(candidates) > 0 {
		return candidates[0]
	}
	return "unknown"
}

func millisToTime(ms int64) time.Time {
	if ms == 0 {
		return time.Time{}
	}
	return time.UnixMilli(ms).UTC()
}
