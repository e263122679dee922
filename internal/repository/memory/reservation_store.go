package memory

import (
	"context"
	"sort"
	"time"

	"parkease/internal/domain"
	"parkease/internal/repository"
)

type reservationStore struct {
	s *Store
}

func (r *reservationStore) Create(_ context.Context, res *domain.Reservation) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.reservationID++
	res.ID = r.s.reservationID
	if res.CreatedAt.IsZero() {
		res.CreatedAt = time.Now()
	}
	r.s.reservations[res.ID] = *res
	return nil
}

func (r *reservationStore) GetByID(_ context.Context, id int64) (*domain.Reservation, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	res, ok := r.s.reservations[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &res, nil
}

func (r *reservationStore) List(_ context.Context, userID *int64) ([]domain.Reservation, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	out := make([]domain.Reservation, 0, len(r.s.reservations))
	for _, res := range r.s.reservations {
		if userID == nil || res.UserID == *userID {
			out = append(out, res)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *reservationStore) Update(_ context.Context, id int64, patch repository.ReservationPatch) (*domain.Reservation, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	res, ok := r.s.reservations[id]
	if !ok {
		return nil, repository.ErrNotFound
	}

	if patch.UserID != nil {
		res.UserID = *patch.UserID
	}
	if patch.ParkingSpotID != nil {
		res.ParkingSpotID = *patch.ParkingSpotID
	}
	if patch.Date != nil {
		res.Date = *patch.Date
	}
	if patch.StartTime != nil {
		res.StartTime = *patch.StartTime
	}
	if patch.Duration != nil {
		res.Duration = *patch.Duration
	}
	if patch.VehicleType != nil {
		res.VehicleType = *patch.VehicleType
	}
	if patch.LicensePlate != nil {
		res.LicensePlate = *patch.LicensePlate
	}
	if patch.TotalPrice != nil {
		res.TotalPrice = *patch.TotalPrice
	}
	if patch.Status != nil {
		res.Status = *patch.Status
	}
	if patch.PaymentIntentID != nil {
		res.PaymentIntentID = patch.PaymentIntentID
	}

	r.s.reservations[id] = res
	return &res, nil
}

func (r *reservationStore) Delete(_ context.Context, id int64) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.reservations[id]; !ok {
		return false, nil
	}
	delete(r.s.reservations, id)
	return true, nil
}

func (r *reservationStore) ListActive(_ context.Context, today time.Time) ([]domain.Reservation, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	out := make([]domain.Reservation, 0)
	for _, res := range r.s.reservations {
		if !res.Date.Before(today) && res.Status == domain.ReservationConfirmed {
			out = append(out, res)
		}
	}
	sortByDateStart(out)
	return out, nil
}

func (r *reservationStore) ListBySpot(_ context.Context, spotID int64) ([]domain.Reservation, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	out := make([]domain.Reservation, 0)
	for _, res := range r.s.reservations {
		if res.ParkingSpotID == spotID {
			out = append(out, res)
		}
	}
	sortByDateStart(out)
	return out, nil
}

func (r *reservationStore) ListByDateRange(_ context.Context, from, to time.Time) ([]domain.Reservation, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	out := make([]domain.Reservation, 0)
	for _, res := range r.s.reservations {
		if !res.Date.Before(from) && !res.Date.After(to) {
			out = append(out, res)
		}
	}
	sortByDateStart(out)
	return out, nil
}

func (r *reservationStore) GetByPaymentIntent(_ context.Context, intentID string) (*domain.Reservation, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, res := range r.s.reservations {
		if res.PaymentIntentID != nil && *res.PaymentIntentID == intentID {
			out := res
			return &out, nil
		}
	}
	return nil, repository.ErrNotFound
}

func sortByDateStart(rs []domain.Reservation) {
	sort.Slice(rs, func(i, j int) bool {
		if !rs[i].Date.Equal(rs[j].Date) {
			return rs[i].Date.Before(rs[j].Date)
		}
		if rs[i].StartTime != rs[j].StartTime {
			return rs[i].StartTime < rs[j].StartTime
		}
		return rs[i].ID < rs[j].ID
	})
}
