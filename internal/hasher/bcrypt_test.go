package hasher

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_Hash(t *testing.T) {
	h := New(bcrypt.MinCost)

	hash, err := h.Hash("pw1")
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "pw1", hash)
	assert.True(t, h.Verify("pw1", hash))
}

func TestBcryptHasher_FreshSaltPerCall(t *testing.T) {
	h := New(bcrypt.MinCost)

	first, err := h.Hash("same-password")
	assert.NoError(t, err)
	second, err := h.Hash("same-password")
	assert.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, h.Verify("same-password", first))
	assert.True(t, h.Verify("same-password", second))
}

func TestBcryptHasher_EmptyPasswordAllowed(t *testing.T) {
	h := New(bcrypt.MinCost)

	hash, err := h.Hash("")
	assert.NoError(t, err)
	assert.True(t, h.Verify("", hash))
	assert.False(t, h.Verify("x", hash))
}

func TestBcryptHasher_Verify(t *testing.T) {
	h := New(bcrypt.MinCost)
	hash, err := h.Hash("secret")
	assert.NoError(t, err)

	tests := []struct {
		name     string
		password string
		hash     string
		want     bool
	}{
		{name: "match", password: "secret", hash: hash, want: true},
		{name: "wrong password", password: "Secret", hash: hash, want: false},
		{name: "empty hash", password: "secret", hash: "", want: false},
		{name: "malformed hash", password: "secret", hash: "not-a-bcrypt-hash", want: false},
		{name: "truncated hash", password: "secret", hash: hash[:20], want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotPanics(t, func() {
				assert.Equal(t, tt.want, h.Verify(tt.password, tt.hash))
			})
		})
	}
}

func TestBcryptHasher_Cost(t *testing.T) {
	hash, err := New(5).Hash("pw")
	assert.NoError(t, err)
	cost, err := bcrypt.Cost([]byte(hash))
	assert.NoError(t, err)
	assert.Equal(t, 5, cost)

	assert.Equal(t, DefaultCost, New(0).cost)
	assert.Equal(t, DefaultCost, New(bcrypt.MaxCost+1).cost)
}

func TestBcryptHasher_TooLong(t *testing.T) {
	_, err := New(bcrypt.MinCost).Hash(strings.Repeat("a", 73))
	assert.ErrorIs(t, err, bcrypt.ErrPasswordTooLong)
}
