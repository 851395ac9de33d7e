package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptPasswordHasher_HashAndVerify(t *testing.T) {
	hasher := NewBcryptPasswordHasher(bcrypt.MinCost)

	hash, err := hasher.Hash("newton123")
	require.NoError(t, err)
	assert.NotEqual(t, "newton123", hash)

	assert.NoError(t, hasher.Verify("newton123", hash))
	assert.Error(t, hasher.Verify("wrong", hash))
}

func TestBcryptPasswordHasher_UniqueSalts(t *testing.T) {
	hasher := NewBcryptPasswordHasher(bcrypt.MinCost)

	a, err := hasher.Hash("newton123")
	require.NoError(t, err)
	b, err := hasher.Hash("newton123")
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestNewBcryptPasswordHasher_OutOfRangeCost(t *testing.T) {
	hasher := NewBcryptPasswordHasher(99)

	hash, err := hasher.Hash("pw")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)
}
