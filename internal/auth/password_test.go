package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashAndCompare(t *testing.T) {
	hash, err := HashPassword("correct", bcrypt.MinCost)
	require.NoError(t, err)
	assert.NotEqual(t, "correct", hash)

	assert.NoError(t, ComparePassword(hash, "correct"))
	assert.ErrorIs(t, ComparePassword(hash, "wrong"), ErrSecretMismatch)
}

func TestHashPassword_SaltsEachHash(t *testing.T) {
	a, err := HashPassword("same", bcrypt.MinCost)
	require.NoError(t, err)
	b, err := HashPassword("same", bcrypt.MinCost)
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestComparePassword_PlaintextStoredValue(t *testing.T) {
	err := ComparePassword("correct", "correct")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrSecretMismatch)
}
