package catalog

import "errors"

var ErrNotFound = errors.New("parking spot not found")
