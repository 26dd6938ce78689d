package randstr

import (
	"crypto/rand"
	"encoding/binary"
	"math"
	mrand "math/rand/v2"
	"sync"
)

// Source draws uniform integers in [0, n). Implementations may panic if n <= 0,
// the generator never calls them that way.
type Source interface {
	IntN(n int) int
}

// pcgStream is the second PCG seed word derived from the user seed.
const pcgStream = 0x9e3779b97f4a7c15

// NewMathSource returns a PCG source seeded with seed. Equal seeds yield equal sequences.
// The returned source is not safe for concurrent use.
func NewMathSource(seed uint64) *mrand.Rand {
	return mrand.New(mrand.NewPCG(seed, seed^pcgStream)) //nolint:gosec
}

const (
	// bufLen is the number of random bytes fetched per read.
	bufLen = 512

	// byteRange is the total number of possible byte values (2^8).
	byteRange = 256

	// maxByteValue is the maximum value of a byte (2^8 - 1).
	maxByteValue = 255

	// wordLen is the number of bytes consumed for a draw above byteRange.
	wordLen = 8
)

// CryptoSource draws from crypto/rand. Values that would introduce modulo bias are
// rejected and redrawn. It is safe for concurrent use.
type CryptoSource struct {
	mu  sync.Mutex
	buf [bufLen]byte
	pos int
}

// NewCryptoSource returns a source backed by crypto/rand.
func NewCryptoSource() *CryptoSource {
	return &CryptoSource{pos: bufLen}
}

// IntN returns a uniform integer in [0, n). It panics if n <= 0.
func (s *CryptoSource) IntN(n int) int {
	if n <= 0 {
		panic("randstr: invalid argument to IntN")
	}

	if n == 1 {
		return 0
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if n <= byteRange {
		return s.byteN(n)
	}

	return s.wordN(uint64(n))
}

// byteN serves alphabets of up to 256 characters from single bytes.
func (s *CryptoSource) byteN(n int) int {
	maxRb := maxByteValue - (byteRange % n)

	for {
		c := int(s.next(1)[0])
		if c > maxRb {
			// Skip this number to avoid modulo bias.
			continue
		}

		return c % n
	}
}

// wordN serves larger alphabets from 64 bit words.
func (s *CryptoSource) wordN(n uint64) int {
	// values below threshold are rejected, the remaining range is a multiple of n
	threshold := (math.MaxUint64 - n + 1) % n

	for {
		v := binary.LittleEndian.Uint64(s.next(wordLen))
		if v < threshold {
			continue
		}

		return int(v % n) //nolint:gosec
	}
}

// next returns the following k unread bytes, refilling the buffer when needed.
func (s *CryptoSource) next(k int) []byte {
	if s.pos+k > bufLen {
		// crypto/rand.Read does not return an error since Go 1.24.
		if _, err := rand.Read(s.buf[:]); err != nil {
			panic("randstr: error reading random bytes: " + err.Error())
		}

		s.pos = 0
	}

	b := s.buf[s.pos : s.pos+k]
	s.pos += k

	return b
}
