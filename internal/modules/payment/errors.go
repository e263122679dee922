package payment

import "errors"

var (
	ErrInvalidAmount  = errors.New("amount is missing or not positive")
	ErrIntentNotFound = errors.New("payment intent not found")
	ErrInvalidPayload = errors.New("invalid webhook payload")
)
