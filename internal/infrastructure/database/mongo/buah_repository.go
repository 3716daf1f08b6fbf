package mongo

import (
	"context"
	"fmt"

	"fruitarians-api/internal/domain/buah"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type BuahRepository struct {
	coll *mongo.Collection
}

func NewBuahRepository(db *mongo.Database) buah.Repository {
	return &BuahRepository{coll: db.Collection(buahCollection)}
}

func (r *BuahRepository) GetByID(ctx context.Context, id string) (*buah.Buah, error) {
	var doc buahDocument
	err := r.coll.FindOne(ctx, idFilter(id)).Decode(&doc)
	if isNoDocuments(err) {
		return nil, buah.ErrBuahNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get buah: %w", err)
	}
	return doc.toEntity(), nil
}

func (r *BuahRepository) ListByCreator(ctx context.Context, creatorID string) ([]*buah.Buah, error) {
	cur, err := r.coll.Find(ctx, bson.M{"creator": creatorID}, options.Find().SetSort(listSort))
	if err != nil {
		return nil, fmt.Errorf("failed to list buah: %w", err)
	}
	defer cur.Close(ctx)

	out := []*buah.Buah{}
	for cur.Next(ctx) {
		var doc buahDocument
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode buah: %w", err)
		}
		out = append(out, doc.toEntity())
	}
	return out, cur.Err()
}
