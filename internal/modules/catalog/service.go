package catalog

import (
	"context"
	"errors"
	"log"

	"parkease/internal/domain"
	"parkease/internal/repository"
)

type Service struct {
	spots    SpotRepository
	provider Provider
}

func NewService(spots SpotRepository, provider Provider) *Service {
	return &Service{
		spots:    spots,
		provider: provider,
	}
}

func (s *Service) List(ctx context.Context) ([]domain.ParkingSpot, error) {
	return s.spots.List(ctx)
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.ParkingSpot, error) {
	spot, err := s.spots.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return spot, nil
}

// Search filters the catalog by case-insensitive substring match on
// city or address. When an external provider is configured its results
// are folded into the catalog first; a provider failure is swallowed
// and the local results are still returned.
func (s *Service) Search(ctx context.Context, req SearchRequest) ([]domain.ParkingSpot, error) {
	if s.provider != nil {
		external, err := s.provider.Search(ctx, req.Location, req.Radius)
		if err != nil {
			log.Printf("spot provider search failed location=%q err=%v", req.Location, err)
		} else {
			for i := range external {
				if err := s.spots.UpsertExternal(ctx, &external[i]); err != nil {
					log.Printf("spot provider upsert failed external_id=%v err=%v", external[i].ExternalID, err)
				}
			}
		}
	}

	return s.spots.Search(ctx, req.Location)
}
