package payment

type CreateIntentRequest struct {
	// Amount in dollars.
	Amount float64 `json:"amount" binding:"required"`
	// Optional reservation to link the intent to, enabling webhook
	// reconciliation of the reservation status.
	ReservationID *int64 `json:"reservationId"`
}

type CreateIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
	ID           string `json:"id"`
}

type StatusResponse struct {
	Status string `json:"status"`
	// Amount converted back to dollars.
	Amount float64 `json:"amount"`
}
