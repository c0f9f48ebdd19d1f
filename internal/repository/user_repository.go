package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/Moinuddin-dotcom/roadmap-server/internal/models"
)

type UserRepository struct {
	col *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{col: db.Collection("users")}
}

// CreateIfAbsent stores the user unless one with the same email already
// exists. A duplicate-key error from the unique email index is reported
// as existed, which covers two sign-ins racing between the lookup and
// the insert.
func (r *UserRepository) CreateIfAbsent(ctx context.Context, u models.User) (*mongo.InsertOneResult, bool, error) {
	err := r.col.FindOne(ctx, bson.M{"email": u.Email}).Err()
	if err == nil {
		return nil, true, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, false, err
	}

	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now().UTC()
	}
	res, err := r.col.InsertOne(ctx, u)
	if err != nil {
		var we mongo.WriteException
		if errors.As(err, &we) && len(we.WriteErrors) > 0 && we.WriteErrors[0].Code == 11000 {
			return nil, true, nil
		}
		return nil, false, err
	}
	return res, false, nil
}

func (r *UserRepository) ListAll(ctx context.Context) ([]models.User, error) {
	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	users := []models.User{}
	if err := cur.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// FindByEmail returns (nil, nil) for an unknown email; role lookups
// answer with an empty role instead of an error.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}
