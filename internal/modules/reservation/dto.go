package reservation

import "time"

type CreateReservationRequest struct {
	UserID        int64     `json:"user_id" binding:"required"`
	ParkingSpotID int64     `json:"parking_spot_id" binding:"required"`
	Date          time.Time `json:"date" binding:"required"`
	StartTime     string    `json:"start_time" binding:"required"`
	Duration      int       `json:"duration" binding:"required,gt=0"`
	VehicleType   string    `json:"vehicle_type" binding:"required"`
	LicensePlate  string    `json:"license_plate" binding:"required"`
	TotalPrice    float64   `json:"total_price" binding:"gte=0"`
	// Defaults to "pending" when omitted.
	Status string `json:"status" binding:"omitempty,oneof=pending confirmed cancelled"`
}

// UpdateReservationRequest is a partial update: nil fields are left
// untouched. id and created_at are not client-settable.
type UpdateReservationRequest struct {
	UserID        *int64     `json:"user_id" binding:"omitempty"`
	ParkingSpotID *int64     `json:"parking_spot_id" binding:"omitempty"`
	Date          *time.Time `json:"date" binding:"omitempty"`
	StartTime     *string    `json:"start_time" binding:"omitempty"`
	Duration      *int       `json:"duration" binding:"omitempty,gt=0"`
	VehicleType   *string    `json:"vehicle_type" binding:"omitempty"`
	LicensePlate  *string    `json:"license_plate" binding:"omitempty"`
	TotalPrice    *float64   `json:"total_price" binding:"omitempty,gte=0"`
	Status        *string    `json:"status" binding:"omitempty,oneof=pending confirmed cancelled"`
}
