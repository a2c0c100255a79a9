package storage

import "github.com/habitta-app/habitta/internal/model"

// UserRepo holds the singleton user profile.
type UserRepo struct {
	store *Store
}

// NewUserRepo creates a new user repository.
func NewUserRepo(store *Store) *UserRepo {
	return &UserRepo{store: store}
}

// Get returns the user profile, or nil when onboarding has not completed.
func (r *UserRepo) Get() *model.User {
	var user *model.User
	r.store.Get(model.KeyUser, &user)
	return user
}

// Set replaces the user profile.
func (r *UserRepo) Set(user model.User) error {
	return r.store.Set(model.KeyUser, &user)
}

// Clear removes the user profile.
func (r *UserRepo) Clear() error {
	return r.store.Delete(model.KeyUser)
}
