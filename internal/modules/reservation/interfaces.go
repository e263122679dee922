package reservation

import (
	"context"
	"time"

	"parkease/internal/domain"
	"parkease/internal/repository"
)

// ReservationRepository is the slice of the entity store the service
// depends on.
type ReservationRepository interface {
	Create(ctx context.Context, r *domain.Reservation) error
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	List(ctx context.Context, userID *int64) ([]domain.Reservation, error)
	Update(ctx context.Context, id int64, patch repository.ReservationPatch) (*domain.Reservation, error)
	Delete(ctx context.Context, id int64) (bool, error)
	ListActive(ctx context.Context, today time.Time) ([]domain.Reservation, error)
	GetByPaymentIntent(ctx context.Context, intentID string) (*domain.Reservation, error)
}

// SpotReader resolves referenced parking spots for existence checks and
// read-through enrichment.
type SpotReader interface {
	GetByID(ctx context.Context, id int64) (*domain.ParkingSpot, error)
}
