package catalog

import (
	"context"

	"parkease/internal/domain"
)

type SpotRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.ParkingSpot, error)
	List(ctx context.Context) ([]domain.ParkingSpot, error)
	Search(ctx context.Context, location string) ([]domain.ParkingSpot, error)
	UpsertExternal(ctx context.Context, s *domain.ParkingSpot) error
}

// Provider is an optional external parking data source used to enrich
// search results. A nil provider disables enrichment.
type Provider interface {
	Search(ctx context.Context, location, radius string) ([]domain.ParkingSpot, error)
}
