package repository

import (
	"context"
	"time"

	"parkease/internal/domain"
)

// The four entity repositories share one contract regardless of backend
// (gorm-backed relational store or the in-memory store). Update on a
// missing id returns ErrNotFound; Delete on a missing id returns false.

type UserRepository interface {
	Create(ctx context.Context, u *domain.User) error
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}

type ParkingSpotRepository interface {
	Create(ctx context.Context, s *domain.ParkingSpot) error
	GetByID(ctx context.Context, id int64) (*domain.ParkingSpot, error)
	List(ctx context.Context) ([]domain.ParkingSpot, error)
	// Search filters by case-insensitive substring match on city or
	// address and orders ascending by distance, spots without a distance
	// value last.
	Search(ctx context.Context, location string) ([]domain.ParkingSpot, error)
	Update(ctx context.Context, id int64, patch SpotPatch) (*domain.ParkingSpot, error)
	// Delete removes the spot and cascades to dependent reservations and
	// favorites. Returns false when the spot does not exist.
	Delete(ctx context.Context, id int64) (bool, error)
	// UpsertExternal inserts a provider-sourced spot or updates the
	// existing row with the same external id.
	UpsertExternal(ctx context.Context, s *domain.ParkingSpot) error
}

type ReservationRepository interface {
	Create(ctx context.Context, r *domain.Reservation) error
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	// List returns all reservations, or only the given user's when
	// userID is non-nil.
	List(ctx context.Context, userID *int64) ([]domain.Reservation, error)
	Update(ctx context.Context, id int64, patch ReservationPatch) (*domain.Reservation, error)
	Delete(ctx context.Context, id int64) (bool, error)
	// ListActive returns confirmed reservations dated today or later,
	// ordered by date then start time.
	ListActive(ctx context.Context, today time.Time) ([]domain.Reservation, error)
	ListBySpot(ctx context.Context, spotID int64) ([]domain.Reservation, error)
	ListByDateRange(ctx context.Context, from, to time.Time) ([]domain.Reservation, error)
	GetByPaymentIntent(ctx context.Context, intentID string) (*domain.Reservation, error)
}

type FavoriteRepository interface {
	// Create returns ErrDuplicate when the (user, spot) pair already
	// exists.
	Create(ctx context.Context, f *domain.Favorite) error
	GetByID(ctx context.Context, id int64) (*domain.Favorite, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.Favorite, error)
	Delete(ctx context.Context, id int64) (bool, error)
	Exists(ctx context.Context, userID, spotID int64) (bool, error)
}

// SpotPatch carries the fields of a partial parking spot update; nil
// fields are left untouched.
type SpotPatch struct {
	Name           *string
	Address        *string
	City           *string
	Price          *float64
	AvailableSpots *int
	Distance       *float64
	Rating         *float64
	Latitude       *float64
	Longitude      *float64
}

// ReservationPatch carries the fields of a partial reservation update.
// ID and CreatedAt are deliberately absent: neither is client-settable.
type ReservationPatch struct {
	UserID          *int64
	ParkingSpotID   *int64
	Date            *time.Time
	StartTime       *string
	Duration        *int
	VehicleType     *string
	LicensePlate    *string
	TotalPrice      *float64
	Status          *domain.ReservationStatus
	PaymentIntentID *string
}
