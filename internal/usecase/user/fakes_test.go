package user

import (
	"context"
	"sort"
	"sync"

	domainBuah "fruitarians-api/internal/domain/buah"
	domainUser "fruitarians-api/internal/domain/user"

	"github.com/google/uuid"
)

type memoryUserRepo struct {
	mu      sync.Mutex
	users   map[string]domainUser.User
	updates int
}

func newMemoryUserRepo(users ...*domainUser.User) *memoryUserRepo {
	r := &memoryUserRepo{users: map[string]domainUser.User{}}
	for _, u := range users {
		r.users[u.ID] = *u
	}
	return r
}

func (r *memoryUserRepo) Create(_ context.Context, u *domainUser.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if existing.Email == u.Email {
			return domainUser.ErrUserAlreadyExists
		}
	}
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	r.users[u.ID] = *u
	return nil
}

func (r *memoryUserRepo) GetByID(_ context.Context, id string) (*domainUser.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, domainUser.ErrUserNotFound
	}
	return &u, nil
}

func (r *memoryUserRepo) GetByEmail(_ context.Context, email string) (*domainUser.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.sorted() {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, domainUser.ErrUserNotFound
}

func (r *memoryUserRepo) ListByRole(_ context.Context, role string) ([]*domainUser.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []*domainUser.User{}
	for _, u := range r.sorted() {
		if u.Role == role {
			out = append(out, &u)
		}
	}
	return out, nil
}

func (r *memoryUserRepo) Update(_ context.Context, u *domainUser.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[u.ID]; !ok {
		return domainUser.ErrUserNotFound
	}
	r.users[u.ID] = *u
	r.updates++
	return nil
}

func (r *memoryUserRepo) get(id string) domainUser.User {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.users[id]
}

func (r *memoryUserRepo) sorted() []domainUser.User {
	out := make([]domainUser.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out
}

type memoryBuahRepo struct {
	items []*domainBuah.Buah
}

func (r *memoryBuahRepo) GetByID(_ context.Context, id string) (*domainBuah.Buah, error) {
	for _, b := range r.items {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, domainBuah.ErrBuahNotFound
}

func (r *memoryBuahRepo) ListByCreator(_ context.Context, creatorID string) ([]*domainBuah.Buah, error) {
	out := []*domainBuah.Buah{}
	for _, b := range r.items {
		if b.CreatorID == creatorID {
			out = append(out, b)
		}
	}
	return out, nil
}
