package alphabet

import (
	"slices"
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"
)

// Preset names.
const (
	Upper    = "upper"
	Lower    = "lower"
	Digits   = "digits"
	Alnum    = "alnum"
	Hex      = "hex"
	Symbols  = "symbols"
	Human    = "human"
	Password = "password"
)

const (
	upperChars  = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	lowerChars  = "abcdefghijklmnopqrstuvwxyz"
	digitChars  = "0123456789"
	symbolChars = "~!@#$%^&*()-_=+[]{};:,.<>?"

	// I, l, 1, O, o and 0 are left out, they are easily confused when read.
	humanChars = "abcdefghijkmnpqrstuvwxyzABCDEFGHJKLMNPQRSTUVWXYZ23456789"
)

var presets = map[string]string{ //nolint:gochecknoglobals
	Upper:    upperChars,
	Lower:    lowerChars,
	Digits:   digitChars,
	Alnum:    upperChars + lowerChars + digitChars,
	Hex:      "0123456789abcdef",
	Symbols:  symbolChars,
	Human:    humanChars,
	Password: upperChars + lowerChars + digitChars + symbolChars,
}

// Names returns the preset names in alphabetical order.
func Names() []string {
	names := lo.Keys(presets)
	slices.Sort(names)

	return names
}

// Preset returns the alphabet registered under name. Names are case-insensitive.
func Preset(name string) (Alphabet, error) {
	chars, ok := presets[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownPreset, "preset %q", name)
	}

	return Alphabet([]rune(chars)), nil
}

// Parse resolves a comma separated list of preset names, e.g. "upper,digits".
// The result is the union of the presets in order of first appearance.
func Parse(spec string) (Alphabet, error) {
	names := lo.Compact(lo.Map(strings.Split(spec, ","), func(s string, _ int) string {
		return strings.TrimSpace(s)
	}))

	if len(names) == 0 {
		return nil, ErrEmptySpec
	}

	var out Alphabet

	for _, name := range names {
		a, err := Preset(name)
		if err != nil {
			return nil, err
		}

		out = append(out, a...)
	}

	return out.Unique(), nil
}
