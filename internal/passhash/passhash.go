// Package passhash hashes generated passwords with argon2id so they can be stored
// without keeping the clear text.
package passhash

import (
	"github.com/alexedwards/argon2id"
	"github.com/pkg/errors"
)

// Params are the argon2id parameters used by Hash.
var Params = argon2id.DefaultParams //nolint:gochecknoglobals

// Hash returns the argon2id hash of s in PHC string format.
func Hash(s string) (string, error) {
	hash, err := argon2id.CreateHash(s, Params)
	if err != nil {
		return "", errors.Wrap(err, "failed to hash password")
	}

	return hash, nil
}

// Verify reports whether s matches hash.
func Verify(s, hash string) (bool, error) {
	ok, err := argon2id.ComparePasswordAndHash(s, hash)
	if err != nil {
		return false, errors.Wrap(err, "failed to compare password and hash")
	}

	return ok, nil
}
