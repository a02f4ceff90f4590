package equipment

import "errors"

var (
	ErrValidation   = errors.New("validation error")
	ErrNotFound     = errors.New("equipment not found")
	ErrTypeNotFound = errors.New("equipment type not found")
	ErrHeld         = errors.New("equipment assigned to a user")
	ErrNoneAvailable = errors.New("no available equipment")
)
