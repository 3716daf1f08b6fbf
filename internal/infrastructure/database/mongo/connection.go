package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fruitarians-api/internal/config"
	"fruitarians-api/internal/logger"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

const (
	usersCollection    = "users"
	buahCollection     = "buah"
	articlesCollection = "artikels"

	connectTimeout = 10 * time.Second
)

var listSort = bson.D{{Key: "createdAt", Value: 1}, {Key: "_id", Value: 1}}

type DB struct {
	Client   *mongo.Client
	Database *mongo.Database
}

func NewDB(ctx context.Context, cfg *config.Config) (*DB, error) {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.Mongo.URI))
	if err != nil {
		return nil, fmt.Errorf("error connecting to mongo: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("error pinging mongo: %w", err)
	}

	db := &DB{Client: client, Database: client.Database(cfg.Mongo.Database)}
	if err := db.EnsureIndexes(ctx); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}

	logger.Info("Database connection established",
		zap.String("driver", config.DriverMongo),
		zap.String("database", cfg.Mongo.Database),
	)

	return db, nil
}

// EnsureIndexes creates the lookup indexes. The email index is not unique:
// existing collections may hold duplicate emails, and lookups take the oldest.
func (d *DB) EnsureIndexes(ctx context.Context) error {
	indexes := map[string][]mongo.IndexModel{
		usersCollection: {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetName("email_idx")},
			{Keys: bson.D{{Key: "role", Value: 1}, {Key: "createdAt", Value: 1}}, Options: options.Index().SetName("role_created_idx")},
		},
		buahCollection: {
			{Keys: bson.D{{Key: "creator", Value: 1}, {Key: "createdAt", Value: 1}}, Options: options.Index().SetName("creator_created_idx")},
		},
		articlesCollection: {
			{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetName("number_idx")},
		},
	}

	for name, models := range indexes {
		if _, err := d.Database.Collection(name).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("failed to create %s indexes: %w", name, err)
		}
	}
	return nil
}

func (d *DB) Health(ctx context.Context) error {
	return d.Client.Ping(ctx, nil)
}

func (d *DB) Close(ctx context.Context) error {
	return d.Client.Disconnect(ctx)
}

// idFilter matches documents keyed either by a string id or by the ObjectID
// the same hex string encodes.
func idFilter(id string) bson.M {
	if oid, err := primitive.ObjectIDFromHex(id); err == nil {
		return bson.M{"_id": bson.M{"$in": bson.A{id, oid}}}
	}
	return bson.M{"_id": id}
}

func isNoDocuments(err error) bool {
	return errors.Is(err, mongo.ErrNoDocuments)
}
