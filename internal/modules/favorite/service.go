package favorite

import (
	"context"
	"errors"

	"parkease/internal/domain"
	"parkease/internal/repository"
)

type Service struct {
	favorites FavoriteRepository
	spots     SpotReader
}

func NewService(favorites FavoriteRepository, spots SpotReader) *Service {
	return &Service{
		favorites: favorites,
		spots:     spots,
	}
}

// Add bookmarks a spot for a user. The spot must exist and the pair
// must not already be bookmarked; the store enforces the pair
// uniqueness, so a concurrent duplicate add cannot slip through.
func (s *Service) Add(ctx context.Context, userID, spotID int64) (*domain.Favorite, error) {
	if _, err := s.spots.GetByID(ctx, spotID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrSpotNotFound
		}
		return nil, err
	}

	f := &domain.Favorite{
		UserID:        userID,
		ParkingSpotID: spotID,
	}
	if err := s.favorites.Create(ctx, f); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrAlreadyFavorite
		}
		return nil, err
	}
	return f, nil
}

func (s *Service) Remove(ctx context.Context, id int64) error {
	deleted, err := s.favorites.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}

func (s *Service) IsFavorite(ctx context.Context, userID, spotID int64) (bool, error) {
	return s.favorites.Exists(ctx, userID, spotID)
}

// ListSpots resolves the user's favorites to full spot records,
// silently dropping any favorite whose spot no longer exists.
func (s *Service) ListSpots(ctx context.Context, userID int64) ([]domain.ParkingSpot, error) {
	favorites, err := s.favorites.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	spots := make([]domain.ParkingSpot, 0, len(favorites))
	for _, f := range favorites {
		spot, err := s.spots.GetByID(ctx, f.ParkingSpotID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				continue
			}
			return nil, err
		}
		spots = append(spots, *spot)
	}
	return spots, nil
}
