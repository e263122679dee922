package favorite

import (
	"context"

	"parkease/internal/domain"
)

type FavoriteRepository interface {
	Create(ctx context.Context, f *domain.Favorite) error
	GetByID(ctx context.Context, id int64) (*domain.Favorite, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.Favorite, error)
	Delete(ctx context.Context, id int64) (bool, error)
	Exists(ctx context.Context, userID, spotID int64) (bool, error)
}

type SpotReader interface {
	GetByID(ctx context.Context, id int64) (*domain.ParkingSpot, error)
}
