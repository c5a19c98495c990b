package auth

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("123456")
	require.NoError(t, err)
	assert.NotEqual(t, "123456", hash)

	assert.NoError(t, VerifyPassword("123456", hash))
	assert.Error(t, VerifyPassword("654321", hash))
}

func TestHashPasswordSalted(t *testing.T) {
	h1, err := HashPassword("123456")
	require.NoError(t, err)
	h2, err := HashPassword("123456")
	require.NoError(t, err)
	assert.NotEqual(t, h1, h2)
}

func TestNewSessionID(t *testing.T) {
	a := NewSessionID()
	b := NewSessionID()

	assert.NoError(t, uuid.Validate(a))
	assert.NotEqual(t, a, b)
}
