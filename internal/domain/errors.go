package domain

import "errors"

// Sentinel errors used across layers.
var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrInvalidSweetness = errors.New("invalid sweetness level")
)
