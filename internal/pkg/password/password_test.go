//go:build unit

package password

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashAndCompare(t *testing.T) {
	Cost = bcrypt.MinCost

	hash, err := HashPassword("password123")
	require.NoError(t, err)
	assert.NotEqual(t, "password123", hash)

	assert.NoError(t, ComparePassword(hash, "password123"))
	assert.ErrorIs(t, ComparePassword(hash, "wrongpassword"), ErrComparisonFailed)
}

func TestEmptyInputs(t *testing.T) {
	_, err := HashPassword("")
	assert.ErrorIs(t, err, ErrInvalidPassword)
	assert.ErrorIs(t, ComparePassword("", "x"), ErrInvalidPassword)
	assert.ErrorIs(t, ComparePassword("x", ""), ErrInvalidPassword)
}

func TestHashPassword_TooLong(t *testing.T) {
	Cost = bcrypt.MinCost

	_, err := HashPassword(strings.Repeat("a", 73))

	assert.ErrorIs(t, err, ErrHashingFailed)
}

func TestComparePassword_CorruptHash(t *testing.T) {
	err := ComparePassword("not-a-bcrypt-hash", "password123")

	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrComparisonFailed)
}

func TestEqualizeTiming(t *testing.T) {
	Cost = bcrypt.MinCost
	assert.NotPanics(t, func() { EqualizeTiming("password123") })
}
