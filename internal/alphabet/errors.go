package alphabet

import (
	"errors"
)

var (
	// ErrUnknownPreset is returned if a preset name is not known.
	ErrUnknownPreset = errors.New("unknown alphabet preset")

	// ErrEmptySpec is returned if a preset list contains no names.
	ErrEmptySpec = errors.New("alphabet preset list can not be empty")
)
