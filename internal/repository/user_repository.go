package repository

import (
	"context"

	"github.com/spec-kit/mock-bank-api/internal/domain"
)

// UserRepository defines storage access for users.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

type userRepository struct {
	store *Store
}

// NewUserRepository returns a Store-backed implementation.
func NewUserRepository(store *Store) UserRepository {
	return &userRepository{store: store}
}

// Create assigns a fresh id to user and stores a copy.
func (r *userRepository) Create(_ context.Context, user *domain.User) error {
	if _, exists := r.store.emails[user.Email]; exists {
		return ErrDuplicateEmail
	}
	user.ID = r.store.newID(userIDPrefix, func(id string) bool {
		_, ok := r.store.users[id]
		return ok
	})
	r.store.users[user.ID] = *user
	r.store.emails[user.Email] = user.ID
	return nil
}

// Update replaces the stored record with the same id.
func (r *userRepository) Update(_ context.Context, user *domain.User) error {
	existing, ok := r.store.users[user.ID]
	if !ok {
		return ErrNotFound
	}
	if owner, taken := r.store.emails[user.Email]; taken && owner != user.ID {
		return ErrDuplicateEmail
	}
	delete(r.store.emails, existing.Email)
	r.store.emails[user.Email] = user.ID
	r.store.users[user.ID] = *user
	return nil
}

func (r *userRepository) Delete(_ context.Context, id string) error {
	existing, ok := r.store.users[id]
	if !ok {
		return ErrNotFound
	}
	delete(r.store.emails, existing.Email)
	delete(r.store.users, id)
	return nil
}

func (r *userRepository) GetByID(_ context.Context, id string) (*domain.User, error) {
	user, ok := r.store.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &user, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	id, ok := r.store.emails[email]
	if !ok {
		return nil, ErrNotFound
	}
	return r.GetByID(ctx, id)
}
