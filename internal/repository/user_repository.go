package repository

import (
	"sync"

	"multichat/internal/entities"
)

// UserRepository holds the admin operators in memory.
type UserRepository struct {
	mu     sync.RWMutex
	users  map[string]*entities.User
	nextID int
}

func NewUserRepository() *UserRepository {
	return &UserRepository{users: make(map[string]*entities.User)}
}

func (r *UserRepository) Create(user *entities.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	stored := *user
	stored.ID = r.nextID
	r.users[user.Username] = &stored
	user.ID = stored.ID
	return nil
}

// GetByUsername returns nil, nil when the user does not exist.
func (r *UserRepository) GetByUsername(username string) (*entities.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[username]
	if !ok {
		return nil, nil
	}
	copied := *user
	return &copied, nil
}

func (r *UserRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.users)
}
