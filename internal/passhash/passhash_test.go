package passhash_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GoPowerDNS-Admin/pwgen/internal/passhash"
)

func TestHashAndVerify(t *testing.T) {
	hash, err := passhash.Hash("CORRECTHORSE")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(hash, "$argon2id$"))

	ok, err := passhash.Verify("CORRECTHORSE", hash)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = passhash.Verify("WRONGHORSE", hash)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestVerifyInvalidHash(t *testing.T) {
	_, err := passhash.Verify("x", "not-a-hash")
	assert.Error(t, err)
}
