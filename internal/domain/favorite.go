package domain

// Favorite is a user's bookmark of a parking spot. The
// (user_id, parking_spot_id) pair is unique at the storage layer.
type Favorite struct {
	ID            int64 `json:"id" gorm:"primaryKey"`
	UserID        int64 `json:"user_id" gorm:"column:user_id;not null;index;uniqueIndex:idx_user_spot" validate:"required"`
	ParkingSpotID int64 `json:"parking_spot_id" gorm:"column:parking_spot_id;not null;index;uniqueIndex:idx_user_spot" validate:"required"`

	Spot *ParkingSpot `json:"parkingSpot,omitempty" gorm:"foreignKey:ParkingSpotID"`
}

func (Favorite) TableName() string { return "favorites" }
