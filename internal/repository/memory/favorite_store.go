package memory

import (
	"context"
	"sort"

	"parkease/internal/domain"
	"parkease/internal/repository"
)

type favoriteStore struct {
	s *Store
}

// Create checks the (user, spot) pair and inserts under one lock
// acquisition, so concurrent duplicate adds cannot interleave.
func (r *favoriteStore) Create(_ context.Context, fav *domain.Favorite) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, existing := range r.s.favorites {
		if existing.UserID == fav.UserID && existing.ParkingSpotID == fav.ParkingSpotID {
			return repository.ErrDuplicate
		}
	}

	r.s.favoriteID++
	fav.ID = r.s.favoriteID
	r.s.favorites[fav.ID] = *fav
	return nil
}

func (r *favoriteStore) GetByID(_ context.Context, id int64) (*domain.Favorite, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	fav, ok := r.s.favorites[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &fav, nil
}

func (r *favoriteStore) ListByUser(_ context.Context, userID int64) ([]domain.Favorite, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	out := make([]domain.Favorite, 0)
	for _, fav := range r.s.favorites {
		if fav.UserID == userID {
			out = append(out, fav)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *favoriteStore) Delete(_ context.Context, id int64) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.favorites[id]; !ok {
		return false, nil
	}
	delete(r.s.favorites, id)
	return true, nil
}

func (r *favoriteStore) Exists(_ context.Context, userID, spotID int64) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, fav := range r.s.favorites {
		if fav.UserID == userID && fav.ParkingSpotID == spotID {
			return true, nil
		}
	}
	return false, nil
}
