package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hashed, err := HashPassword("rahasia-123")
	require.NoError(t, err)
	assert.NotEqual(t, "rahasia-123", hashed)

	assert.True(t, CheckPassword(hashed, "rahasia-123"))
	assert.False(t, CheckPassword(hashed, "rahasia-124"))
	assert.False(t, CheckPassword(hashed, ""))
}

func TestGenerateDummyPassword(t *testing.T) {
	a := generateDummyPassword()
	b := generateDummyPassword()

	assert.NotEmpty(t, a)
	assert.NotEqual(t, a, b, "dummy passwords must not repeat")
}
