package mongo

import (
	"context"
	"errors"
	"sort"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/marinacaribe/yacht-rental-system/internal/core/domain"
)

const collectionReservations = "reservations"

// ReservationRepository persists bookings in the reservations collection.
type ReservationRepository struct {
	col *mongo.Collection
}

func NewReservationRepository(db *mongo.Database) *ReservationRepository {
	return &ReservationRepository{col: db.Collection(collectionReservations)}
}

type reservationDoc struct {
	ID          primitive.ObjectID   `bson:"_id,omitempty"`
	ClientID    string               `bson:"client_id"`
	YachtID     string               `bson:"yacht_id"`
	StartDate   int64                `bson:"start_date"`
	EndDate     int64                `bson:"end_date"`
	Status      string               `bson:"status"`
	TotalPrice  primitive.Decimal128 `bson:"total_price"`
	CreatedAt   int64                `bson:"created_at"`
	UpdatedAt   int64                `bson:"updated_at"`
	ModifiedBy  string               `bson:"modified_by"`
	CancelledBy string               `bson:"cancelled_by,omitempty"`
}

func toReservationDoc(r *domain.Reservation) reservationDoc {
	return reservationDoc{
		ClientID:    r.ClientID,
		YachtID:     r.YachtID,
		StartDate:   r.StartDate.UnixMilli(),
		EndDate:     r.EndDate.UnixMilli(),
		Status:      string(r.Status),
		TotalPrice:  toDecimal128(r.TotalPrice),
		CreatedAt:   r.CreatedAt.UnixMilli(),
		UpdatedAt:   r.UpdatedAt.UnixMilli(),
		ModifiedBy:  r.ModifiedBy,
		CancelledBy: r.CancelledBy,
	}
}

func (d reservationDoc) toDomain() *domain.Reservation {
	return &domain.Reservation{
		ID:          d.ID.Hex(),
		ClientID:    d.ClientID,
		YachtID:     d.YachtID,
		StartDate:   millisToTime(d.StartDate),
		EndDate:     millisToTime(d.EndDate),
		Status:      domain.ReservationStatus(d.Status),
		TotalPrice:  fromDecimal128(d.TotalPrice),
		CreatedAt:   millisToTime(d.CreatedAt),
		UpdatedAt:   millisToTime(d.UpdatedAt),
		ModifiedBy:  d.ModifiedBy,
		CancelledBy: d.CancelledBy,
	}
}

func (r *ReservationRepository) Insert(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	out, err := r.col.InsertOne(ctx, toReservationDoc(res))
	if err != nil {
		return nil, storeErr("insert reservation", err)
	}

	created := *res
	created.ID = out.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *ReservationRepository) GetByID(ctx context.Context, id string) (*domain.Reservation, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrReservationNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var d reservationDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&d); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrReservationNotFound
		}
		return nil, storeErr("find reservation", err)
	}
	return d.toDomain(), nil
}

// All returns every reservation, newest created first.
func (r *ReservationRepository) All(ctx context.Context) ([]*domain.Reservation, error) {
	out, err := r.find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

// ByClient returns the client's reservations, latest start date first.
func (r *ReservationRepository) ByClient(ctx context.Context, clientID string) ([]*domain.Reservation, error) {
	return r.findByStartDesc(ctx, bson.M{"client_id": clientID})
}

// ByYacht returns the yacht's reservations, latest start date first.
func (r *ReservationRepository) ByYacht(ctx context.Context, yachtID string) ([]*domain.Reservation, error) {
	return r.findByStartDesc(ctx, bson.M{"yacht_id": yachtID})
}

// ByStatus returns reservations in the given state, latest start date first.
func (r *ReservationRepository) ByStatus(ctx context.Context, status domain.ReservationStatus) ([]*domain.Reservation, error) {
	return r.findByStartDesc(ctx, bson.M{"status": string(status)})
}

func (r *ReservationRepository) findByStartDesc(ctx context.Context, filter bson.M) ([]*domain.Reservation, error) {
	out, err := r.find(ctx, filter)
	if err != nil {
		return nil, err
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartDate.After(out[j].StartDate) })
	return out, nil
}

// find fetches unsorted; callers sort in memory (see package doc for the
// index trade-off).
func (r *ReservationRepository) find(ctx context.Context, filter bson.M) ([]*domain.Reservation, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, storeErr("list reservations", err)
	}
	defer cur.Close(ctx)

	var docs []reservationDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, storeErr("decode reservations", err)
	}

	out := make([]*domain.Reservation, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toDomain())
	}
	return out, nil
}

func (r *ReservationRepository) Update(ctx context.Context, res *domain.Reservation) error {
	oid, err := primitive.ObjectIDFromHex(res.ID)
	if err != nil {
		return domain.ErrInvalidID
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	out, err := r.col.ReplaceOne(ctx, bson.M{"_id": oid}, toReservationDoc(res))
	if err != nil {
		return storeErr("update reservation", err)
	}
	if out.MatchedCount == 0 {
		return domain.ErrReservationNotFound
	}
	return nil
}

// Delete removes the document permanently. Deleting an absent id is a no-op.
func (r *ReservationRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrReservationNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.DeleteOne(ctx, bson.M{"_id": oid}); err != nil {
		return storeErr("delete reservation", err)
	}
	return nil
}
