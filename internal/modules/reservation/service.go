package reservation

import (
	"context"
	"errors"
	"time"

	"parkease/internal/domain"
	"parkease/internal/repository"
)

type Service struct {
	reservations ReservationRepository
	spots        SpotReader
}

func NewService(reservations ReservationRepository, spots SpotReader) *Service {
	return &Service{
		reservations: reservations,
		spots:        spots,
	}
}

// Create persists a reservation after resolving the referenced parking
// spot. Nothing is persisted when the spot does not exist. Status
// defaults to pending; created_at is assigned server-side.
func (s *Service) Create(ctx context.Context, req CreateReservationRequest) (*domain.Reservation, error) {
	if _, err := s.spots.GetByID(ctx, req.ParkingSpotID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrSpotNotFound
		}
		return nil, err
	}

	status := domain.ReservationStatus(req.Status)
	if status == "" {
		status = domain.ReservationPending
	}

	r := &domain.Reservation{
		UserID:        req.UserID,
		ParkingSpotID: req.ParkingSpotID,
		Date:          req.Date,
		StartTime:     req.StartTime,
		Duration:      req.Duration,
		VehicleType:   req.VehicleType,
		LicensePlate:  req.LicensePlate,
		TotalPrice:    req.TotalPrice,
		Status:        status,
		CreatedAt:     time.Now(),
	}

	if err := s.reservations.Create(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

// Get returns the reservation enriched with its referenced spot. A
// missing spot leaves the enrichment empty rather than failing the read.
func (s *Service) Get(ctx context.Context, id int64) (*domain.Reservation, error) {
	r, err := s.reservations.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	s.enrich(ctx, r)
	return r, nil
}

// List returns all reservations, or only the given user's, each
// enriched with its referenced spot.
func (s *Service) List(ctx context.Context, userID *int64) ([]domain.Reservation, error) {
	out, err := s.reservations.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	for i := range out {
		s.enrich(ctx, &out[i])
	}
	return out, nil
}

// Update merges the provided fields over the existing record. A changed
// parking_spot_id must resolve to an existing spot.
func (s *Service) Update(ctx context.Context, id int64, req UpdateReservationRequest) (*domain.Reservation, error) {
	if req.ParkingSpotID != nil {
		if _, err := s.spots.GetByID(ctx, *req.ParkingSpotID); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, ErrSpotNotFound
			}
			return nil, err
		}
	}

	patch := repository.ReservationPatch{
		UserID:        req.UserID,
		ParkingSpotID: req.ParkingSpotID,
		Date:          req.Date,
		StartTime:     req.StartTime,
		Duration:      req.Duration,
		VehicleType:   req.VehicleType,
		LicensePlate:  req.LicensePlate,
		TotalPrice:    req.TotalPrice,
	}
	if req.Status != nil {
		status := domain.ReservationStatus(*req.Status)
		patch.Status = &status
	}

	r, err := s.reservations.Update(ctx, id, patch)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return r, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	deleted, err := s.reservations.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}

// Active returns confirmed reservations dated today or later, ordered
// by date then start time.
func (s *Service) Active(ctx context.Context) ([]domain.Reservation, error) {
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	out, err := s.reservations.ListActive(ctx, today)
	if err != nil {
		return nil, err
	}
	for i := range out {
		s.enrich(ctx, &out[i])
	}
	return out, nil
}

// AttachPaymentIntent stores the external payment intent id on the
// reservation so webhook events can be reconciled later.
func (s *Service) AttachPaymentIntent(ctx context.Context, reservationID int64, intentID string) error {
	patch := repository.ReservationPatch{PaymentIntentID: &intentID}
	if _, err := s.reservations.Update(ctx, reservationID, patch); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

// ConfirmByPaymentIntent marks the linked reservation confirmed. The
// operation is idempotent: replaying the same event is a no-op.
func (s *Service) ConfirmByPaymentIntent(ctx context.Context, intentID string) error {
	return s.setStatusByPaymentIntent(ctx, intentID, domain.ReservationConfirmed)
}

// CancelByPaymentIntent marks the linked reservation cancelled, also
// idempotently.
func (s *Service) CancelByPaymentIntent(ctx context.Context, intentID string) error {
	return s.setStatusByPaymentIntent(ctx, intentID, domain.ReservationCancelled)
}

func (s *Service) setStatusByPaymentIntent(ctx context.Context, intentID string, status domain.ReservationStatus) error {
	r, err := s.reservations.GetByPaymentIntent(ctx, intentID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	if r.Status == status {
		return nil
	}
	_, err = s.reservations.Update(ctx, r.ID, repository.ReservationPatch{Status: &status})
	return err
}

func (s *Service) enrich(ctx context.Context, r *domain.Reservation) {
	spot, err := s.spots.GetByID(ctx, r.ParkingSpotID)
	if err != nil {
		return
	}
	r.Spot = spot
}
