package password

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHasher_HashAndVerify(t *testing.T) {
	t.Parallel()

	h := NewHasher(bcrypt.MinCost)

	hash, err := h.Hash("s3cret-password")
	require.NoError(t, err)
	require.NotEmpty(t, hash)

	assert.True(t, h.Verify("s3cret-password", hash))
	assert.False(t, h.Verify("wrong-password", hash))
	assert.False(t, h.Verify("s3cret-password", "not-a-bcrypt-hash"))
}

func TestHasher_SaltedHashesDiffer(t *testing.T) {
	t.Parallel()

	h := NewHasher(bcrypt.MinCost)

	first, err := h.Hash("same-password")
	require.NoError(t, err)
	second, err := h.Hash("same-password")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, h.Verify("same-password", first))
	assert.True(t, h.Verify("same-password", second))
}

func TestNewHasher_CostOutOfRange(t *testing.T) {
	t.Parallel()

	assert.Equal(t, DefaultCost, NewHasher(0).cost)
	assert.Equal(t, DefaultCost, NewHasher(bcrypt.MaxCost+1).cost)
	assert.Equal(t, bcrypt.MinCost, NewHasher(bcrypt.MinCost).cost)
}

func TestHasher_DefaultCostEmbedded(t *testing.T) {
	t.Parallel()

	hash, err := NewHasher(DefaultCost).Hash("password")
	require.NoError(t, err)

	// bcrypt encodes the cost into the hash prefix.
	assert.True(t, strings.HasPrefix(hash, "$2a$10$"))
}
