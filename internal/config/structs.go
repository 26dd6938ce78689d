package config

import (
	"github.com/GoPowerDNS-Admin/pwgen/internal/logger"
)

// Config overall data structure.
type Config struct {
	Title     string     `toml:"title"`
	Log       logger.Log `toml:"log"`
	Generator Generator  `toml:"generator"`
}

// Generator implements the generator settings.
type Generator struct {
	// DefaultLength is used if no length or an invalid one is given.
	DefaultLength int `toml:"defaultLength" validate:"gte=0"`
	// MaxLength is the upper bound for a request, 0 = unbounded.
	MaxLength int `toml:"maxLength" validate:"gte=0"`
	// Alphabet is a comma separated list of preset names.
	Alphabet string `toml:"alphabet"`
	// Charset holds custom characters and overrides Alphabet.
	Charset string `toml:"charset"`
	// Source selects the random source, crypto or math.
	Source string `toml:"source" validate:"oneof=crypto math"`
	// Unique drops duplicate characters of the alphabet.
	Unique bool `toml:"unique"`
}
