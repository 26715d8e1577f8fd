package crypto

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_HashAndVerify(t *testing.T) {
	hasher := NewBcryptHasher(bcrypt.MinCost)

	hash, err := hasher.Hash("correct horse battery staple")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse battery staple", hash)

	ok, err := hasher.Verify("correct horse battery staple", hash)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = hasher.Verify("wrong password", hash)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestBcryptHasher_HashIsSalted(t *testing.T) {
	hasher := NewBcryptHasher(bcrypt.MinCost)

	h1, err := hasher.Hash("password")
	require.NoError(t, err)
	h2, err := hasher.Hash("password")
	require.NoError(t, err)

	assert.NotEqual(t, h1, h2)
}

func TestBcryptHasher_UsesConfiguredCost(t *testing.T) {
	tests := []struct {
		name     string
		cost     int
		wantCost int
	}{
		{"min cost", bcrypt.MinCost, bcrypt.MinCost},
		{"explicit cost", 5, 5},
		{"zero falls back to default", 0, bcrypt.DefaultCost},
		{"too high falls back to default", bcrypt.MaxCost + 1, bcrypt.DefaultCost},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hasher := NewBcryptHasher(tt.cost).(*bcryptHasher)
			assert.Equal(t, tt.wantCost, hasher.cost)
		})
	}
}

func TestBcryptHasher_Verify_MalformedHash(t *testing.T) {
	hasher := NewBcryptHasher(bcrypt.MinCost)

	ok, err := hasher.Verify("password", "not-a-bcrypt-hash")
	assert.False(t, ok)
	assert.ErrorIs(t, err, ErrMalformedHash)
}

func TestBcryptHasher_Hash_TooLong(t *testing.T) {
	hasher := NewBcryptHasher(bcrypt.MinCost)

	_, err := hasher.Hash(strings.Repeat("a", 73))
	assert.ErrorIs(t, err, ErrPasswordTooLong)
}
