package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/marinacaribe/yacht-rental-system/internal/core/domain"
)

const collectionClients = "clients"

// ClientRepository persists rental customers in the clients collection.
type ClientRepository struct {
	col *mongo.Collection
}

func NewClientRepository(db *mongo.Database) *ClientRepository {
	return &ClientRepository{col: db.Collection(collectionClients)}
}

type clientDoc struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	Email         string             `bson:"email"`
	Cedula        string             `bson:"cedula"`
	Phone         string             `bson:"phone,omitempty"`
	FirstNames    string             `bson:"first_names"`
	LastNames     string             `bson:"last_names"`
	LicenseNumber string             `bson:"license_number,omitempty"`
	Active        bool               `bson:"active"`
	CreatedAt     int64              `bson:"created_at"`
	UpdatedAt     int64              `bson:"updated_at"`
}

func toClientDoc(c *domain.Client) clientDoc {
	return clientDoc{
		Email:         c.Email,
		Cedula:        c.Cedula,
		Phone:         c.Phone,
		FirstNames:    c.FirstNames,
		LastNames:     c.LastNames,
		LicenseNumber: c.LicenseNumber,
		Active:        c.Status.IsActive(),
		CreatedAt:     c.CreatedAt.UnixMilli(),
		UpdatedAt:     c.UpdatedAt.UnixMilli(),
	}
}

func (d clientDoc) toDomain() *domain.Client {
	return &domain.Client{
		ID:            d.ID.Hex(),
		Email:         d.Email,
		Cedula:        d.Cedula,
		Phone:         d.Phone,
		FirstNames:    d.FirstNames,
		LastNames:     d.LastNames,
		LicenseNumber: d.LicenseNumber,
		Status:        domain.AccountStatusFromBool(d.Active),
		CreatedAt:     millisToTime(d.CreatedAt),
		UpdatedAt:     millisToTime(d.UpdatedAt),
	}
}

func (r *ClientRepository) Insert(ctx context.Context, c *domain.Client) (*domain.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.InsertOne(ctx, toClientDoc(c))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, &domain.DuplicateFieldError{Field: duplicateField(err, "cedula", "license_number", "email")}
		}
		return nil, storeErr("insert client", err)
	}

	created := *c
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *ClientRepository) GetByID(ctx context.Context, id string) (*domain.Client, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrClientNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var d clientDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&d); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrClientNotFound
		}
		return nil, storeErr("find client", err)
	}
	return d.toDomain(), nil
}

// GetByCedula returns (nil, nil) when no client carries the cedula.
func (r *ClientRepository) GetByCedula(ctx context.Context, cedula string) (*domain.Client, error) {
	return r.findOne(ctx, bson.M{"cedula": cedula})
}

// GetByEmail returns (nil, nil) when no client carries the email.
func (r *ClientRepository) GetByEmail(ctx context.Context, email string) (*domain.Client, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

// GetByLicense returns (nil, nil) when no client carries the license number.
func (r *ClientRepository) GetByLicense(ctx context.Context, licenseNumber string) (*domain.Client, error) {
	return r.findOne(ctx, bson.M{"license_number": licenseNumber})
}

func (r *ClientRepository) findOne(ctx context.Context, filter bson.M) (*domain.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var d clientDoc
	if err := r.col.FindOne(ctx, filter).Decode(&d); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, storeErr("find client", err)
	}
	return d.toDomain(), nil
}

func (r *ClientRepository) GetAll(ctx context.Context) ([]*domain.Client, error) {
	return r.findAll(ctx, bson.M{})
}

func (r *ClientRepository) GetActive(ctx context.Context) ([]*domain.Client, error) {
	return r.findAll(ctx, bson.M{"active": true})
}

func (r *ClientRepository) findAll(ctx context.Context, filter bson.M) ([]*domain.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, storeErr("list clients", err)
	}
	defer cur.Close(ctx)

	var docs []clientDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, storeErr("decode clients", err)
	}

	clients := make([]*domain.Client, 0, len(docs))
	for _, d := range docs {
		clients = append(clients, d.toDomain())
	}
	return clients, nil
}

func (r *ClientRepository) Update(ctx context.Context, c *domain.Client) error {
	oid, err := primitive.ObjectIDFromHex(c.ID)
	if err != nil {
		return domain.ErrInvalidID
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": oid}, toClientDoc(c))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return &domain.DuplicateFieldError{Field: duplicateField(err, "cedula", "license_number", "email")}
		}
		return storeErr("update client", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrClientNotFound
	}
	return nil
}

// EnsureIndexes creates unique indexes for cedula, email, and the optional
// license number (sparse so absent licenses do not collide).
func (r *ClientRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "cedula", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "license_number", Value: 1}}, Options: options.Index().SetUnique(true).SetSparse(true)},
	}

	if _, err := r.col.Indexes().CreateMany(ctx, indexes); err != nil {
		return storeErr("ensure client indexes", err)
	}
	return nil
}
