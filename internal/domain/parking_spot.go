package domain

// SpotSource distinguishes locally entered spots from ones pulled in
// from an external provider.
type SpotSource string

const (
	SpotSourceLocal SpotSource = "local"
	SpotSourceAPI   SpotSource = "api"
)

// ParkingSpot is a catalog entry. Distance, rating and coordinates are
// optional; external spots carry the provider's id in ExternalID.
type ParkingSpot struct {
	ID             int64      `json:"id" gorm:"primaryKey"`
	Name           string     `json:"name" gorm:"not null" validate:"required"`
	Address        string     `json:"address" gorm:"not null" validate:"required"`
	City           string     `json:"city" gorm:"not null" validate:"required"`
	Price          float64    `json:"price" gorm:"not null" validate:"gte=0"`
	AvailableSpots int        `json:"available_spots" gorm:"column:available_spots;not null"`
	Distance       *float64   `json:"distance"`
	Rating         *float64   `json:"rating"`
	Latitude       *float64   `json:"latitude"`
	Longitude      *float64   `json:"longitude"`
	Source         SpotSource `json:"source" gorm:"not null"`
	ExternalID     *string    `json:"external_id" gorm:"column:external_id;index"`
}

func (ParkingSpot) TableName() string { return "parking_spots" }
