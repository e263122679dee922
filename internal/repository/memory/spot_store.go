package memory

import (
	"context"
	"sort"
	"strings"

	"parkease/internal/domain"
	"parkease/internal/repository"
)

type spotStore struct {
	s *Store
}

func (r *spotStore) Create(_ context.Context, spot *domain.ParkingSpot) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.spotID++
	spot.ID = r.s.spotID
	r.s.spots[spot.ID] = *spot
	return nil
}

func (r *spotStore) GetByID(_ context.Context, id int64) (*domain.ParkingSpot, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	spot, ok := r.s.spots[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &spot, nil
}

func (r *spotStore) List(_ context.Context) ([]domain.ParkingSpot, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.listLocked(), nil
}

func (r *spotStore) listLocked() []domain.ParkingSpot {
	out := make([]domain.ParkingSpot, 0, len(r.s.spots))
	for _, spot := range r.s.spots {
		out = append(out, spot)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (r *spotStore) Search(_ context.Context, location string) ([]domain.ParkingSpot, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	needle := strings.ToLower(location)
	out := make([]domain.ParkingSpot, 0)
	for _, spot := range r.listLocked() {
		if needle == "" ||
			strings.Contains(strings.ToLower(spot.City), needle) ||
			strings.Contains(strings.ToLower(spot.Address), needle) {
			out = append(out, spot)
		}
	}

	// Ascending by distance, spots without a distance value last. The
	// input is already id-ordered, so equal keys stay stable.
	sort.SliceStable(out, func(i, j int) bool {
		di, dj := out[i].Distance, out[j].Distance
		switch {
		case di == nil:
			return false
		case dj == nil:
			return true
		default:
			return *di < *dj
		}
	})
	return out, nil
}

func (r *spotStore) Update(_ context.Context, id int64, patch repository.SpotPatch) (*domain.ParkingSpot, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	spot, ok := r.s.spots[id]
	if !ok {
		return nil, repository.ErrNotFound
	}

	if patch.Name != nil {
		spot.Name = *patch.Name
	}
	if patch.Address != nil {
		spot.Address = *patch.Address
	}
	if patch.City != nil {
		spot.City = *patch.City
	}
	if patch.Price != nil {
		spot.Price = *patch.Price
	}
	if patch.AvailableSpots != nil {
		spot.AvailableSpots = *patch.AvailableSpots
	}
	if patch.Distance != nil {
		spot.Distance = patch.Distance
	}
	if patch.Rating != nil {
		spot.Rating = patch.Rating
	}
	if patch.Latitude != nil {
		spot.Latitude = patch.Latitude
	}
	if patch.Longitude != nil {
		spot.Longitude = patch.Longitude
	}

	r.s.spots[id] = spot
	return &spot, nil
}

// Delete removes the spot and, under the same lock, every reservation
// and favorite referencing it.
func (r *spotStore) Delete(_ context.Context, id int64) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.spots[id]; !ok {
		return false, nil
	}
	delete(r.s.spots, id)

	for rid, res := range r.s.reservations {
		if res.ParkingSpotID == id {
			delete(r.s.reservations, rid)
		}
	}
	for fid, fav := range r.s.favorites {
		if fav.ParkingSpotID == id {
			delete(r.s.favorites, fid)
		}
	}
	return true, nil
}

func (r *spotStore) UpsertExternal(ctx context.Context, spot *domain.ParkingSpot) error {
	if spot.ExternalID == nil {
		return r.Create(ctx, spot)
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for id, existing := range r.s.spots {
		if existing.Source == domain.SpotSourceAPI &&
			existing.ExternalID != nil && *existing.ExternalID == *spot.ExternalID {
			spot.ID = id
			r.s.spots[id] = *spot
			return nil
		}
	}

	r.s.spotID++
	spot.ID = r.s.spotID
	r.s.spots[spot.ID] = *spot
	return nil
}
