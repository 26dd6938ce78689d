package randstr

import (
	"errors"
)

var (
	// ErrInvalidAlphabet is returned if the alphabet of a request is empty.
	ErrInvalidAlphabet = errors.New("alphabet can not be empty")

	// ErrInvalidLength is returned if the requested length is negative.
	ErrInvalidLength = errors.New("length can not be negative")

	// ErrLengthTooLarge is returned if the requested length exceeds the generator maximum.
	ErrLengthTooLarge = errors.New("length exceeds the configured maximum")
)
