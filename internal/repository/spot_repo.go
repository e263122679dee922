package repository

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"parkease/internal/domain"
)

type parkingSpotRepository struct {
	db *gorm.DB
}

func NewParkingSpotRepository(db *gorm.DB) ParkingSpotRepository {
	return &parkingSpotRepository{db: db}
}

func (r *parkingSpotRepository) Create(ctx context.Context, s *domain.ParkingSpot) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *parkingSpotRepository) GetByID(ctx context.Context, id int64) (*domain.ParkingSpot, error) {
	var s domain.ParkingSpot
	if err := r.db.WithContext(ctx).First(&s, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}

func (r *parkingSpotRepository) List(ctx context.Context) ([]domain.ParkingSpot, error) {
	var spots []domain.ParkingSpot
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&spots).Error; err != nil {
		return nil, err
	}
	return spots, nil
}

func (r *parkingSpotRepository) Search(ctx context.Context, location string) ([]domain.ParkingSpot, error) {
	var spots []domain.ParkingSpot
	q := r.db.WithContext(ctx)
	if location != "" {
		pattern := "%" + strings.ToLower(location) + "%"
		q = q.Where("LOWER(city) LIKE ? OR LOWER(address) LIKE ?", pattern, pattern)
	}
	// Spots without a distance value sort last.
	if err := q.Order("distance IS NULL, distance ASC").Find(&spots).Error; err != nil {
		return nil, err
	}
	return spots, nil
}

func (r *parkingSpotRepository) Update(ctx context.Context, id int64, patch SpotPatch) (*domain.ParkingSpot, error) {
	updates := map[string]interface{}{}
	if patch.Name != nil {
		updates["name"] = *patch.Name
	}
	if patch.Address != nil {
		updates["address"] = *patch.Address
	}
	if patch.City != nil {
		updates["city"] = *patch.City
	}
	if patch.Price != nil {
		updates["price"] = *patch.Price
	}
	if patch.AvailableSpots != nil {
		updates["available_spots"] = *patch.AvailableSpots
	}
	if patch.Distance != nil {
		updates["distance"] = *patch.Distance
	}
	if patch.Rating != nil {
		updates["rating"] = *patch.Rating
	}
	if patch.Latitude != nil {
		updates["latitude"] = *patch.Latitude
	}
	if patch.Longitude != nil {
		updates["longitude"] = *patch.Longitude
	}

	var s domain.ParkingSpot
	if err := r.db.WithContext(ctx).First(&s, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if len(updates) > 0 {
		if err := r.db.WithContext(ctx).Model(&s).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return &s, nil
}

// Delete cascades to dependent reservations and favorites in one
// transaction so no dangling references survive a spot removal.
func (r *parkingSpotRepository) Delete(ctx context.Context, id int64) (bool, error) {
	deleted := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("parking_spot_id = ?", id).Delete(&domain.Reservation{}).Error; err != nil {
			return err
		}
		if err := tx.Where("parking_spot_id = ?", id).Delete(&domain.Favorite{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&domain.ParkingSpot{}, id)
		if res.Error != nil {
			return res.Error
		}
		deleted = res.RowsAffected > 0
		return nil
	})
	return deleted, err
}

func (r *parkingSpotRepository) UpsertExternal(ctx context.Context, s *domain.ParkingSpot) error {
	if s.ExternalID == nil {
		return r.Create(ctx, s)
	}

	var existing domain.ParkingSpot
	err := r.db.WithContext(ctx).
		Where("external_id = ? AND source = ?", *s.ExternalID, domain.SpotSourceAPI).
		First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return r.Create(ctx, s)
	}
	if err != nil {
		return err
	}

	s.ID = existing.ID
	return r.db.WithContext(ctx).Model(&existing).Updates(s).Error
}
