package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rivergate/auth"
)

func TestHashPassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{
			name:     "Valid password",
			password: "securePassword123!",
			wantErr:  false,
		},
		{
			name:     "Empty password",
			password: "",
			wantErr:  true, // bcrypt can hash empty strings, we refuse them
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := auth.HashPassword(tt.password)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
			assert.NotEmpty(t, hash)
			assert.True(t, auth.VerifyPassword(tt.password, hash))
		})
	}
}

func TestHashPasswordSaltsIndependently(t *testing.T) {
	h1, err := auth.HashPassword("same-password")
	assert.NoError(t, err)
	h2, err := auth.HashPassword("same-password")
	assert.NoError(t, err)

	assert.NotEqual(t, h1, h2)
	assert.True(t, auth.VerifyPassword("same-password", h1))
	assert.True(t, auth.VerifyPassword("same-password", h2))
}

func TestVerifyPassword(t *testing.T) {
	password := "testPassword123!"
	hash, err := auth.HashPassword(password)
	assert.NoError(t, err)

	tests := []struct {
		name     string
		password string
		hash     string
		want     bool
	}{
		{
			name:     "Matching password",
			password: password,
			hash:     hash,
			want:     true,
		},
		{
			name:     "Wrong password",
			password: "wrongPassword",
			hash:     hash,
			want:     false,
		},
		{
			name:     "Malformed hash is a mismatch, not an error",
			password: password,
			hash:     "invalidhash",
			want:     false,
		},
		{
			name:     "Empty hash",
			password: password,
			hash:     "",
			want:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, auth.VerifyPassword(tt.password, tt.hash))
		})
	}
}

func TestRandomPasswordHash(t *testing.T) {
	hash1 := auth.RandomPasswordHash()
	hash2 := auth.RandomPasswordHash()

	assert.NotEmpty(t, hash1)
	assert.NotEmpty(t, hash2)
	assert.NotEqual(t, hash1, hash2)
}
