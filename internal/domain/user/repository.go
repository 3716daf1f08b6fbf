package user

import "context"

// Repository defines the interface for user repository operations
type Repository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id string) (*User, error)
	// GetByEmail returns the first user registered with email.
	GetByEmail(ctx context.Context, email string) (*User, error)
	// ListByRole returns every user with role ordered by creation time, then id.
	ListByRole(ctx context.Context, role string) ([]*User, error)
	// Update writes the whole record; the last writer wins.
	Update(ctx context.Context, user *User) error
}
