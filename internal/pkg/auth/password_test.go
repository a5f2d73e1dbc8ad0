package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	// Low cost keeps the test fast
	hashed, err := HashPassword("Sup3rSecret!", 4)
	require.NoError(t, err)
	assert.NotEqual(t, "Sup3rSecret!", hashed)

	assert.True(t, CheckPassword(hashed, "Sup3rSecret!"))
	assert.False(t, CheckPassword(hashed, "wrong-password"))
	assert.False(t, CheckPassword("not-a-hash", "Sup3rSecret!"))
}

func TestHashPassword_DefaultCost(t *testing.T) {
	hashed, err := HashPassword("Sup3rSecret!", 0)
	require.NoError(t, err)
	assert.True(t, CheckPassword(hashed, "Sup3rSecret!"))
}
