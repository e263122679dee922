package favorite

import "errors"

var (
	ErrNotFound        = errors.New("favorite not found")
	ErrSpotNotFound    = errors.New("parking spot not found")
	ErrAlreadyFavorite = errors.New("already in favorites")
)
