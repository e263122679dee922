package domain

import "time"

type ReservationStatus string

const (
	ReservationPending   ReservationStatus = "pending"
	ReservationConfirmed ReservationStatus = "confirmed"
	ReservationCancelled ReservationStatus = "cancelled"
)

// Reservation books a parking spot for a date, start time and duration.
// CreatedAt is set once at creation and never overwritten by client input.
// PaymentIntentID links the reservation to an external payment intent so
// the webhook handler can reconcile payment outcomes.
type Reservation struct {
	ID              int64             `json:"id" gorm:"primaryKey"`
	UserID          int64             `json:"user_id" gorm:"column:user_id;not null;index" validate:"required"`
	ParkingSpotID   int64             `json:"parking_spot_id" gorm:"column:parking_spot_id;not null;index" validate:"required"`
	Date            time.Time         `json:"date" gorm:"not null" validate:"required"`
	StartTime       string            `json:"start_time" gorm:"column:start_time;not null" validate:"required"`
	Duration        int               `json:"duration" gorm:"not null" validate:"required,gt=0"`
	VehicleType     string            `json:"vehicle_type" gorm:"column:vehicle_type;not null" validate:"required"`
	LicensePlate    string            `json:"license_plate" gorm:"column:license_plate;not null" validate:"required"`
	TotalPrice      float64           `json:"total_price" gorm:"column:total_price;not null" validate:"gte=0"`
	Status          ReservationStatus `json:"status" gorm:"not null"`
	PaymentIntentID *string           `json:"payment_intent_id,omitempty" gorm:"column:payment_intent_id;index"`
	CreatedAt       time.Time         `json:"created_at" gorm:"column:created_at;autoCreateTime"`

	// Populated by read-through join for enriched responses.
	Spot *ParkingSpot `json:"parkingSpot,omitempty" gorm:"foreignKey:ParkingSpotID"`
}

func (Reservation) TableName() string { return "reservations" }
