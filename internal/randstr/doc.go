// Package randstr generates random strings of a given length from a configurable alphabet.
//
// Every character of a generated string is drawn independently and uniformly from the
// alphabet through a Source. Sources are injected so callers pick between a seeded,
// reproducible PCG source and the crypto source used by default.
package randstr
