package hash

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCompare(t *testing.T) {
	h := NewBcryptHasher(4) // min cost keeps the test fast

	hashed, err := h.Hash("secret1")
	require.NoError(t, err)
	require.NotEmpty(t, hashed)
	assert.NotEqual(t, "secret1", hashed)

	assert.NoError(t, h.Compare("secret1", hashed))
	assert.ErrorIs(t, h.Compare("wrong", hashed), ErrMismatchedPassword)
}

func TestHashEmptyPassword(t *testing.T) {
	h := NewBcryptHasher(4)

	_, err := h.Hash("")
	assert.Error(t, err)
}

func TestOutOfRangeCostFallsBack(t *testing.T) {
	h := NewBcryptHasher(100)

	hashed, err := h.Hash("secret1")
	require.NoError(t, err)
	assert.NoError(t, h.Compare("secret1", hashed))
}
