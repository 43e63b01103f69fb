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

const collectionUsers = "users"

// UserRepository persists user accounts in the users collection.
type UserRepository struct {
	col *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{col: db.Collection(collectionUsers)}
}

type userDoc struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Username     string             `bson:"username"`
	Email        string             `bson:"email"`
	PasswordHash string             `bson:"password_hash"`
	Role         string             `bson:"role"`
	Active       bool               `bson:"active"`
	CreatedAt    int64              `bson:"created_at"`
}

func toUserDoc(u *domain.User) userDoc {
	return userDoc{
		Username:     u.Username,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Role:         u.Role,
		Active:       u.Status.IsActive(),
		CreatedAt:    u.CreatedAt.UnixMilli(),
	}
}

func (d userDoc) toDomain() *domain.User {
	return &domain.User{
		ID:           d.ID.Hex(),
		Username:     d.Username,
		Email:        d.Email,
		PasswordHash: d.PasswordHash,
		Role:         d.Role,
		Status:       domain.AccountStatusFromBool(d.Active),
		CreatedAt:    millisToTime(d.CreatedAt),
	}
}

// Insert stores a new user and returns it with the store-assigned id.
func (r *UserRepository) Insert(ctx context.Context, u *domain.User) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.InsertOne(ctx, toUserDoc(u))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, &domain.DuplicateFieldError{Field: duplicateField(err, "username", "email")}
		}
		return nil, storeErr("insert user", err)
	}

	created := *u
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var d userDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&d); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, storeErr("find user", err)
	}
	return d.toDomain(), nil
}

// GetByUsername returns (nil, nil) when no user carries the username.
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"username": username})
}

// GetByEmail returns (nil, nil) when no user carries the email.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *UserRepository) findOne(ctx context.Context, filter bson.M) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var d userDoc
	if err := r.col.FindOne(ctx, filter).Decode(&d); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, storeErr("find user", err)
	}
	return d.toDomain(), nil
}

func (r *UserRepository) GetAll(ctx context.Context) ([]*domain.User, error) {
	return r.findAll(ctx, bson.M{})
}

func (r *UserRepository) GetActive(ctx context.Context) ([]*domain.User, error) {
	return r.findAll(ctx, bson.M{"active": true})
}

func (r *UserRepository) findAll(ctx context.Context, filter bson.M) ([]*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, storeErr("list users", err)
	}
	defer cur.Close(ctx)

	var docs []userDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, storeErr("decode users", err)
	}

	users := make([]*domain.User, 0, len(docs))
	for _, d := range docs {
		users = append(users, d.toDomain())
	}
	return users, nil
}

// Update replaces the stored document. The id must reference an existing user.
func (r *UserRepository) Update(ctx context.Context, u *domain.User) error {
	oid, err := primitive.ObjectIDFromHex(u.ID)
	if err != nil {
		return domain.ErrInvalidID
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": oid}, toUserDoc(u))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return &domain.DuplicateFieldError{Field: duplicateField(err, "username", "email")}
		}
		return storeErr("update user", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// EnsureIndexes creates the unique indexes backing the advisory uniqueness
// pre-checks. The pre-checks stay in place for their friendlier error
// ordering; the indexes close the check-then-insert race window.
func (r *UserRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "username", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
	}

	if _, err := r.col.Indexes().CreateMany(ctx, indexes); err != nil {
		return storeErr("ensure user indexes", err)
	}
	return nil
}
