package favorite

type AddFavoriteRequest struct {
	UserID        int64 `json:"user_id" binding:"required"`
	ParkingSpotID int64 `json:"parking_spot_id" binding:"required"`
}

type CheckFavoriteResponse struct {
	IsFavorite bool `json:"is_favorite"`
}
