package app

import (
	"errors"
)

// ErrInvalidCount is returned if --count is lower than 1.
var ErrInvalidCount = errors.New("count must be at least 1")
