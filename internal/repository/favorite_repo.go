package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"parkease/internal/domain"
)

type favoriteRepository struct {
	db *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) FavoriteRepository {
	return &favoriteRepository{db: db}
}

// Create relies on the composite unique index on (user_id,
// parking_spot_id) rather than a separate existence check, so two
// concurrent adds of the same pair cannot both succeed.
func (r *favoriteRepository) Create(ctx context.Context, f *domain.Favorite) error {
	if err := r.db.WithContext(ctx).Create(f).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

func (r *favoriteRepository) GetByID(ctx context.Context, id int64) (*domain.Favorite, error) {
	var f domain.Favorite
	if err := r.db.WithContext(ctx).First(&f, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &f, nil
}

func (r *favoriteRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Favorite, error) {
	var out []domain.Favorite
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *favoriteRepository) Delete(ctx context.Context, id int64) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&domain.Favorite{}, id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *favoriteRepository) Exists(ctx context.Context, userID, spotID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Favorite{}).
		Where("user_id = ? AND parking_spot_id = ?", userID, spotID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
