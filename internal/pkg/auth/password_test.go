package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher(t *testing.T) {
	// Minimum cost keeps the test fast; the production cost only changes work factor
	hasher := &BcryptHasher{cost: bcrypt.MinCost}

	t.Run("hash and verify roundtrip", func(t *testing.T) {
		hash, err := hasher.Hash("Student123!")
		require.NoError(t, err)
		assert.NotEqual(t, "Student123!", hash)
		assert.True(t, hasher.Verify("Student123!", hash))
	})

	t.Run("wrong password fails verification", func(t *testing.T) {
		hash, err := hasher.Hash("Student123!")
		require.NoError(t, err)
		assert.False(t, hasher.Verify("wrong", hash))
	})

	t.Run("garbage hash fails verification", func(t *testing.T) {
		assert.False(t, hasher.Verify("Student123!", "not-a-bcrypt-hash"))
	})

	t.Run("hashes are salted", func(t *testing.T) {
		first, err := hasher.Hash("Student123!")
		require.NoError(t, err)
		second, err := hasher.Hash("Student123!")
		require.NoError(t, err)
		assert.NotEqual(t, first, second)
	})
}
