// Package memory is the map-backed implementation of the entity
// repositories. It exists for zero-dependency deployments and tests.
// Every mutation holds the store mutex, so read-modify-write sequences
// like the favorite uniqueness check are atomic; IDs are monotonically
// increasing per entity type, starting at 1, and never reused within a
// process lifetime.
package memory

import (
	"sync"

	"parkease/internal/domain"
	"parkease/internal/repository"
)

type Store struct {
	mu sync.Mutex

	users        map[int64]domain.User
	spots        map[int64]domain.ParkingSpot
	reservations map[int64]domain.Reservation
	favorites    map[int64]domain.Favorite

	userID        int64
	spotID        int64
	reservationID int64
	favoriteID    int64
}

func NewStore() *Store {
	return &Store{
		users:        make(map[int64]domain.User),
		spots:        make(map[int64]domain.ParkingSpot),
		reservations: make(map[int64]domain.Reservation),
		favorites:    make(map[int64]domain.Favorite),
	}
}

func (s *Store) Users() repository.UserRepository               { return &userStore{s} }
func (s *Store) ParkingSpots() repository.ParkingSpotRepository { return &spotStore{s} }
func (s *Store) Reservations() repository.ReservationRepository { return &reservationStore{s} }
func (s *Store) Favorites() repository.FavoriteRepository       { return &favoriteStore{s} }
