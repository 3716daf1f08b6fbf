package database

import (
	"context"
	"fmt"

	"fruitarians-api/internal/config"
	"fruitarians-api/internal/domain/article"
	"fruitarians-api/internal/domain/buah"
	"fruitarians-api/internal/domain/user"
	"fruitarians-api/internal/infrastructure/database/mongo"
	"fruitarians-api/internal/infrastructure/database/postgres"
)

// Store bundles the repositories backed by one shared connection.
type Store struct {
	Users    user.Repository
	Buah     buah.Repository
	Articles article.Repository

	health func(ctx context.Context) error
	close  func(ctx context.Context) error
}

// Open connects to the backend selected by DB_DRIVER.
func Open(ctx context.Context, cfg *config.Config) (*Store, error) {
	switch cfg.Database.Driver {
	case config.DriverMongo:
		db, err := mongo.NewDB(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return &Store{
			Users:    mongo.NewUserRepository(db.Database),
			Buah:     mongo.NewBuahRepository(db.Database),
			Articles: mongo.NewArticleRepository(db.Database),
			health:   db.Health,
			close:    db.Close,
		}, nil

	case config.DriverPostgres:
		db, err := postgres.NewDB(cfg)
		if err != nil {
			return nil, err
		}
		if err := db.Migrate(); err != nil {
			_ = db.Close()
			return nil, err
		}
		return &Store{
			Users:    postgres.NewUserRepository(db),
			Buah:     postgres.NewBuahRepository(db),
			Articles: postgres.NewArticleRepository(db),
			health:   func(context.Context) error { return db.Health() },
			close:    func(context.Context) error { return db.Close() },
		}, nil

	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Database.Driver)
	}
}

// NewStore wraps already constructed repositories, e.g. in-memory fakes.
func NewStore(users user.Repository, items buah.Repository, articles article.Repository) *Store {
	return &Store{Users: users, Buah: items, Articles: articles}
}

func (s *Store) Health(ctx context.Context) error {
	if s.health == nil {
		return nil
	}
	return s.health(ctx)
}

func (s *Store) Close(ctx context.Context) error {
	if s.close == nil {
		return nil
	}
	return s.close(ctx)
}
