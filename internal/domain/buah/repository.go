package buah

import "context"

type Repository interface {
	GetByID(ctx context.Context, id string) (*Buah, error)
	// ListByCreator returns the store's products ordered by creation time, then id.
	ListByCreator(ctx context.Context, creatorID string) ([]*Buah, error)
}
