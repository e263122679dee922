package reservation

import "errors"

var (
	ErrNotFound     = errors.New("reservation not found")
	ErrSpotNotFound = errors.New("parking spot not found")
	ErrValidation   = errors.New("validation error")
)
