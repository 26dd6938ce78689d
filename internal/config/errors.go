package config

import (
	"errors"
)

var (
	// ErrEmptyAlphabet error if neither generator.alphabet nor generator.charset is set.
	ErrEmptyAlphabet = errors.New("toml config generator.alphabet and generator.charset can not both be empty")

	// ErrDefaultLengthTooLarge error if generator.defaultLength exceeds generator.maxLength.
	ErrDefaultLengthTooLarge = errors.New("toml config generator.defaultLength can not exceed generator.maxLength")
)
