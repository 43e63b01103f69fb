package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/marinacaribe/yacht-rental-system/internal/core/domain"
)

const collectionYachts = "yachts"

// YachtRepository persists the yacht inventory in the yachts collection.
type YachtRepository struct {
	col *mongo.Collection
}

func NewYachtRepository(db *mongo.Database) *YachtRepository {
	return &YachtRepository{col: db.Collection(collectionYachts)}
}

type yachtDoc struct {
	ID                 primitive.ObjectID   `bson:"_id,omitempty"`
	Brand              string               `bson:"brand"`
	Model              string               `bson:"model"`
	Year               int                  `bson:"year"`
	Size               string               `bson:"size"`
	Capacity           int                  `bson:"capacity"`
	RegistrationNumber string               `bson:"registration_number"`
	DailyPrice         primitive.Decimal128 `bson:"daily_price"`
	Available          bool                 `bson:"available"`
	CreatedAt          int64                `bson:"created_at"`
}

func toYachtDoc(y *domain.Yacht) yachtDoc {
	return yachtDoc{
		Brand:              y.Brand,
		Model:              y.Model,
		Year:               y.Year,
		Size:               y.Size,
		Capacity:           y.Capacity,
		RegistrationNumber: y.RegistrationNumber,
		DailyPrice:         toDecimal128(y.DailyPrice),
		Available:          y.Availability.IsAvailable(),
		CreatedAt:          y.CreatedAt.UnixMilli(),
	}
}

func (d yachtDoc) toDomain() *domain.Yacht {
	return &domain.Yacht{
		ID:                 d.ID.Hex(),
		Brand:              d.Brand,
		Model:              d.Model,
		Year:               d.Year,
		Size:               d.Size,
		Capacity:           d.Capacity,
		RegistrationNumber: d.RegistrationNumber,
		DailyPrice:         fromDecimal128(d.DailyPrice),
		Availability:       domain.AvailabilityFromBool(d.Available),
		CreatedAt:          millisToTime(d.CreatedAt),
	}
}

func (r *YachtRepository) Insert(ctx context.Context, y *domain.Yacht) (*domain.Yacht, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.InsertOne(ctx, toYachtDoc(y))
	if err != nil {
		return nil, storeErr("insert yacht", err)
	}

	created := *y
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *YachtRepository) GetByID(ctx context.Context, id string) (*domain.Yacht, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrYachtNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var d yachtDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&d); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrYachtNotFound
		}
		return nil, storeErr("find yacht", err)
	}
	return d.toDomain(), nil
}

func (r *YachtRepository) GetAll(ctx context.Context) ([]*domain.Yacht, error) {
	return r.findAll(ctx, bson.M{})
}

func (r *YachtRepository) GetAvailable(ctx context.Context) ([]*domain.Yacht, error) {
	return r.findAll(ctx, bson.M{"available": true})
}

func (r *YachtRepository) findAll(ctx context.Context, filter bson.M) ([]*domain.Yacht, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, storeErr("list yachts", err)
	}
	defer cur.Close(ctx)

	var docs []yachtDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, storeErr("decode yachts", err)
	}

	yachts := make([]*domain.Yacht, 0, len(docs))
	for _, d := range docs {
		yachts = append(yachts, d.toDomain())
	}
	return yachts, nil
}

func (r *YachtRepository) Update(ctx context.Context, y *domain.Yacht) error {
	oid, err := primitive.ObjectIDFromHex(y.ID)
	if err != nil {
		return domain.ErrInvalidID
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": oid}, toYachtDoc(y))
	if err != nil {
		return storeErr("update yacht", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrYachtNotFound
	}
	return nil
}
