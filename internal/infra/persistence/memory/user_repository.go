package memory

import (
	"context"

	"descya/internal/domain/entity"
	"descya/internal/domain/repository"

	"github.com/google/uuid"
)

type userRepository struct {
	store *Store
}

// NewUserRepository creates a store-backed UserRepository.
func NewUserRepository(store *Store) repository.UserRepository {
	return &userRepository{store: store}
}

func (r *userRepository) CreateUser(_ context.Context, user *entity.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, taken := r.store.usersByEmail[user.Email]; taken {
		return repository.ErrEmailExists
	}

	r.store.users[user.ID] = *user
	r.store.usersByEmail[user.Email] = user.ID
	r.store.nextSeq(user.ID)

	return nil
}

func (r *userRepository) FindUserByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	user, ok := r.store.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	return &user, nil
}

func (r *userRepository) FindUserByEmail(_ context.Context, email string) (*entity.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	id, ok := r.store.usersByEmail[email]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	user := r.store.users[id]

	return &user, nil
}

func (r *userRepository) CountUsersByRole(_ context.Context, role entity.Role) (int, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	count := 0
	for _, user := range r.store.users {
		if user.Role == role {
			count++
		}
	}

	return count, nil
}
