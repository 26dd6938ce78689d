package alphabet

import (
	"slices"

	"github.com/samber/lo"
	"golang.org/x/text/unicode/norm"
)

// Alphabet is an ordered sequence of characters eligible for sampling.
// Duplicates are allowed; a duplicated character is drawn proportionally more often.
type Alphabet []rune

// New returns the alphabet made of the characters of chars, NFC normalised so that
// a composed character counts once.
func New(chars string) Alphabet {
	return Alphabet([]rune(norm.NFC.String(chars)))
}

// Len returns the number of positions in the alphabet, duplicates included.
func (a Alphabet) Len() int {
	return len(a)
}

// IsEmpty reports whether the alphabet has no characters.
func (a Alphabet) IsEmpty() bool {
	return len(a) == 0
}

// At returns the character at position i.
func (a Alphabet) At(i int) rune {
	return a[i]
}

// Contains reports whether r is part of the alphabet.
func (a Alphabet) Contains(r rune) bool {
	return slices.Contains(a, r)
}

// Unique returns a copy without duplicate characters, keeping the first occurrence.
func (a Alphabet) Unique() Alphabet {
	return Alphabet(lo.Uniq(a))
}

// HasDuplicates reports whether some character appears more than once.
func (a Alphabet) HasDuplicates() bool {
	return len(lo.Uniq(a)) != len(a)
}

// String returns the characters as a string.
func (a Alphabet) String() string {
	return string(a)
}
