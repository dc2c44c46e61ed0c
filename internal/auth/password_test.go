package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_Limit(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  error
	}{
		{name: "store cashier password", password: "branch01-pass"},
		{name: "exactly 72 bytes", password: strings.Repeat("a", maxPasswordBytes)},
		{name: "73 bytes", password: strings.Repeat("a", maxPasswordBytes+1), wantErr: ErrPasswordTooLong},
		// 36 символов кириллицы занимают 72 байта, 37 уже превышают предел.
		{name: "multibyte within limit", password: strings.Repeat("ж", 36)},
		{name: "multibyte over limit", password: strings.Repeat("ж", 37), wantErr: ErrPasswordTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := HashPassword(tt.password)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, hash)
				return
			}
			require.NoError(t, err)
			assert.True(t, CheckPassword(tt.password, hash))
		})
	}
}

func TestCheckPassword_StoredHashes(t *testing.T) {
	hash, err := HashPassword("milktea")
	require.NoError(t, err)

	assert.True(t, CheckPassword("milktea", hash))
	assert.False(t, CheckPassword("Milktea", hash))
	assert.False(t, CheckPassword("", ""))
	assert.False(t, CheckPassword("milktea", ""))
	assert.False(t, CheckPassword("milktea", "not-a-bcrypt-hash"))
}
