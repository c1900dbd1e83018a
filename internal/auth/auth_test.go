package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHasher_RoundTrip(t *testing.T) {
	h := New(bcrypt.MinCost)

	hashed, err := h.HashPassword("validpassword123")
	require.NoError(t, err)
	require.NotEmpty(t, hashed)
	assert.NotEqual(t, "validpassword123", hashed)

	assert.NoError(t, h.ComparePasswords([]byte(hashed), []byte("validpassword123")))
	assert.ErrorIs(
		t,
		h.ComparePasswords([]byte(hashed), []byte("wrongpassword")),
		ErrInvalidCredentials,
	)
}

func TestHasher_NotAHash(t *testing.T) {
	h := New(bcrypt.MinCost)

	err := h.ComparePasswords([]byte("not-a-bcrypt-hash"), []byte("anything"))
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestNew_CostClamped(t *testing.T) {
	tests := []struct {
		name     string
		cost     int
		expected int
	}{
		{name: "TooLow", cost: 0, expected: bcrypt.DefaultCost},
		{name: "TooHigh", cost: 100, expected: bcrypt.DefaultCost},
		{name: "InRange", cost: bcrypt.MinCost, expected: bcrypt.MinCost},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, New(tt.cost).cost)
		})
	}
}
