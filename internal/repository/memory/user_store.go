package memory

import (
	"context"

	"parkease/internal/domain"
	"parkease/internal/repository"
)

type userStore struct {
	s *Store
}

func (u *userStore) Create(_ context.Context, user *domain.User) error {
	u.s.mu.Lock()
	defer u.s.mu.Unlock()

	for _, existing := range u.s.users {
		if existing.Username == user.Username || existing.Email == user.Email {
			return repository.ErrDuplicate
		}
	}

	u.s.userID++
	user.ID = u.s.userID
	u.s.users[user.ID] = *user
	return nil
}

func (u *userStore) GetByID(_ context.Context, id int64) (*domain.User, error) {
	u.s.mu.Lock()
	defer u.s.mu.Unlock()

	user, ok := u.s.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &user, nil
}

func (u *userStore) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	u.s.mu.Lock()
	defer u.s.mu.Unlock()

	for _, user := range u.s.users {
		if user.Username == username {
			out := user
			return &out, nil
		}
	}
	return nil, repository.ErrNotFound
}
