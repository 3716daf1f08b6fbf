package mongo

import (
	"context"
	"fmt"
	"time"

	"fruitarians-api/internal/domain/user"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// UserRepository implements user.Repository on the users collection
type UserRepository struct {
	coll *mongo.Collection
}

func NewUserRepository(db *mongo.Database) user.Repository {
	return &UserRepository{coll: db.Collection(usersCollection)}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	taken, err := r.coll.CountDocuments(ctx, bson.M{"email": u.Email}, options.Count().SetLimit(1))
	if err != nil {
		return fmt.Errorf("failed to check email: %w", err)
	}
	if taken > 0 {
		return user.ErrUserAlreadyExists
	}

	now := time.Now().UTC()
	u.CreatedAt = now
	u.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, toUserDocument(u)); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return user.ErrUserAlreadyExists
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*user.User, error) {
	return r.findOne(ctx, idFilter(id), nil)
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	return r.findOne(ctx, bson.M{"email": email}, options.FindOne().SetSort(listSort))
}

func (r *UserRepository) ListByRole(ctx context.Context, role string) ([]*user.User, error) {
	cur, err := r.coll.Find(ctx, bson.M{"role": role}, options.Find().SetSort(listSort))
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer cur.Close(ctx)

	out := []*user.User{}
	for cur.Next(ctx) {
		var doc userDocument
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode user: %w", err)
		}
		out = append(out, doc.toEntity())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return out, nil
}

func (r *UserRepository) Update(ctx context.Context, u *user.User) error {
	doc := toUserDocument(u)
	update := bson.M{
		"$set": bson.M{
			"email":           doc.Email,
			"password":        doc.Password,
			"name":            doc.Name,
			"telepon":         doc.Telepon,
			"alamat":          doc.Alamat,
			"role":            doc.Role,
			"gambar_profil":   doc.GambarProfil,
			"deskripsi":       doc.Deskripsi,
			"jam_operasional": doc.JamOperasional,
			"token":           doc.Token,
			"updatedAt":       doc.UpdatedAt,
		},
	}

	res, err := r.coll.UpdateOne(ctx, idFilter(u.ID), update)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	if res.MatchedCount == 0 {
		return user.ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) findOne(ctx context.Context, filter bson.M, opts *options.FindOneOptions) (*user.User, error) {
	var doc userDocument
	var err error
	if opts != nil {
		err = r.coll.FindOne(ctx, filter, opts).Decode(&doc)
	} else {
		err = r.coll.FindOne(ctx, filter).Decode(&doc)
	}
	if isNoDocuments(err) {
		return nil, user.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return doc.toEntity(), nil
}
