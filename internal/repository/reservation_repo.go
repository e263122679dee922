package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"parkease/internal/domain"
)

type reservationRepository struct {
	db *gorm.DB
}

func NewReservationRepository(db *gorm.DB) ReservationRepository {
	return &reservationRepository{db: db}
}

func (r *reservationRepository) Create(ctx context.Context, res *domain.Reservation) error {
	return r.db.WithContext(ctx).Create(res).Error
}

func (r *reservationRepository) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	var res domain.Reservation
	if err := r.db.WithContext(ctx).First(&res, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &res, nil
}

func (r *reservationRepository) List(ctx context.Context, userID *int64) ([]domain.Reservation, error) {
	var out []domain.Reservation
	q := r.db.WithContext(ctx)
	if userID != nil {
		q = q.Where("user_id = ?", *userID)
	}
	if err := q.Order("id ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *reservationRepository) Update(ctx context.Context, id int64, patch ReservationPatch) (*domain.Reservation, error) {
	var res domain.Reservation
	if err := r.db.WithContext(ctx).First(&res, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	updates := map[string]interface{}{}
	if patch.UserID != nil {
		updates["user_id"] = *patch.UserID
	}
	if patch.ParkingSpotID != nil {
		updates["parking_spot_id"] = *patch.ParkingSpotID
	}
	if patch.Date != nil {
		updates["date"] = *patch.Date
	}
	if patch.StartTime != nil {
		updates["start_time"] = *patch.StartTime
	}
	if patch.Duration != nil {
		updates["duration"] = *patch.Duration
	}
	if patch.VehicleType != nil {
		updates["vehicle_type"] = *patch.VehicleType
	}
	if patch.LicensePlate != nil {
		updates["license_plate"] = *patch.LicensePlate
	}
	if patch.TotalPrice != nil {
		updates["total_price"] = *patch.TotalPrice
	}
	if patch.Status != nil {
		updates["status"] = string(*patch.Status)
	}
	if patch.PaymentIntentID != nil {
		updates["payment_intent_id"] = *patch.PaymentIntentID
	}

	if len(updates) > 0 {
		if err := r.db.WithContext(ctx).Model(&res).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return &res, nil
}

func (r *reservationRepository) Delete(ctx context.Context, id int64) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&domain.Reservation{}, id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *reservationRepository) ListActive(ctx context.Context, today time.Time) ([]domain.Reservation, error) {
	var out []domain.Reservation
	err := r.db.WithContext(ctx).
		Where("date >= ? AND status = ?", today, string(domain.ReservationConfirmed)).
		Order("date ASC").Order("start_time ASC").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *reservationRepository) ListBySpot(ctx context.Context, spotID int64) ([]domain.Reservation, error) {
	var out []domain.Reservation
	err := r.db.WithContext(ctx).
		Where("parking_spot_id = ?", spotID).
		Order("date ASC").Order("start_time ASC").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *reservationRepository) ListByDateRange(ctx context.Context, from, to time.Time) ([]domain.Reservation, error) {
	var out []domain.Reservation
	err := r.db.WithContext(ctx).
		Where("date >= ? AND date <= ?", from, to).
		Order("date ASC").Order("start_time ASC").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *reservationRepository) GetByPaymentIntent(ctx context.Context, intentID string) (*domain.Reservation, error) {
	var res domain.Reservation
	if err := r.db.WithContext(ctx).Where("payment_intent_id = ?", intentID).First(&res).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &res, nil
}
