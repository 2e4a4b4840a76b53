package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRevocationStore(t *testing.T) {
	store, err := OpenRevocationStore("")
	assert.NoError(t, err)
	defer store.Close()

	t.Run("unknown id is not revoked", func(t *testing.T) {
		revoked, err := store.IsRevoked("missing")
		assert.NoError(t, err)
		assert.False(t, revoked)
	})

	t.Run("revoked id is found", func(t *testing.T) {
		assert.NoError(t, store.Revoke("jti-1", time.Hour))

		revoked, err := store.IsRevoked("jti-1")
		assert.NoError(t, err)
		assert.True(t, revoked)
	})

	t.Run("entries expire with their TTL", func(t *testing.T) {
		assert.NoError(t, store.Revoke("jti-2", 50*time.Millisecond))
		time.Sleep(100 * time.Millisecond)

		revoked, err := store.IsRevoked("jti-2")
		assert.NoError(t, err)
		assert.False(t, revoked)
	})
}
