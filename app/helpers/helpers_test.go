package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateSlug(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Classic Gold Ring", "classic-gold-ring"},
		{"  22K Bangle!  ", "22k-bangle"},
		{"Solitaire Pendant-a1b2c3", "solitaire-pendant-a1b2c3"},
		{"---", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, GenerateSlug(tt.in), "input %q", tt.in)
	}
}

func TestPasswordHashAndCompare(t *testing.T) {
	hash := HashPassword("secret123")
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "secret123", hash)

	assert.True(t, PasswordCompare(hash, []byte("secret123")))
	assert.False(t, PasswordCompare(hash, []byte("wrong")))
}
