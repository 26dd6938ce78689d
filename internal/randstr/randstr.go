package randstr

import (
	"math"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/GoPowerDNS-Admin/pwgen/internal/alphabet"
	"github.com/GoPowerDNS-Admin/pwgen/internal/metrics"
)

const (
	// DefaultLength is the length used when none or an unusable one is given.
	DefaultLength = 12

	// DefaultMaxLength is the cap applied unless WithMaxLength says otherwise.
	DefaultMaxLength = 4096
)

// Request describes one string to generate.
type Request struct {
	Length   int
	Alphabet alphabet.Alphabet
}

// Generator produces random strings from a Source.
// It is safe for concurrent use if and only if its source is.
type Generator struct {
	src       Source
	maxLength int
	metrics   *metrics.Metrics
}

// New returns a Generator using the crypto source and DefaultMaxLength unless
// options say otherwise.
func New(opts ...Option) *Generator {
	g := &Generator{
		src:       NewCryptoSource(),
		maxLength: DefaultMaxLength,
	}

	for _, opt := range opts {
		opt(g)
	}

	return g
}

// MaxLength returns the length cap, zero means unbounded.
func (g *Generator) MaxLength() int {
	if g.maxLength < 0 {
		return 0
	}

	return g.maxLength
}

// Generate returns a string of exactly req.Length characters, each drawn
// uniformly and independently from req.Alphabet.
func (g *Generator) Generate(req Request) (string, error) {
	if err := g.validate(req); err != nil {
		return "", err
	}

	var b strings.Builder

	b.Grow(req.Length)

	k := req.Alphabet.Len()
	for range req.Length {
		b.WriteRune(req.Alphabet.At(g.src.IntN(k)))
	}

	g.metrics.Generated(req.Length)

	log.Debug().
		Int("length", req.Length).
		Int("alphabet", k).
		Float64("entropy", Entropy(req.Length, req.Alphabet.Unique().Len())).
		Msg("string generated")

	return b.String(), nil
}

func (g *Generator) validate(req Request) error {
	switch {
	case req.Alphabet.IsEmpty():
		g.metrics.Reject("invalid_alphabet")

		return ErrInvalidAlphabet
	case req.Length < 0:
		g.metrics.Reject("invalid_length")

		return errors.Wrapf(ErrInvalidLength, "length %d", req.Length)
	case g.MaxLength() > 0 && req.Length > g.MaxLength():
		g.metrics.Reject("length_too_large")

		return errors.Wrapf(ErrLengthTooLarge, "length %d, maximum %d", req.Length, g.MaxLength())
	}

	return nil
}

// Entropy returns the entropy in bits of a string of length characters drawn
// uniformly from alphabetSize distinct characters.
func Entropy(length, alphabetSize int) float64 {
	if length <= 0 || alphabetSize <= 1 {
		return 0
	}

	return float64(length) * math.Log2(float64(alphabetSize))
}
