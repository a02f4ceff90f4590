package booking

import "errors"

var (
	ErrValidation        = errors.New("validation error")
	ErrEquipmentNotFound = errors.New("equipment not found")
	ErrNotFound          = errors.New("booking not found")
)
