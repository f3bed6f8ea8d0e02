package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWT(t *testing.T) {
	tests := []struct {
		name   string
		signer *JWT
		reader *JWT
		key    string
		ok     bool
		err    bool
	}{
		{
			name:   "valid",
			signer: New([]byte("secret")),
			reader: New([]byte("secret")),
			key:    "UserID",
			ok:     true,
		},
		{
			name:   "other key",
			signer: New([]byte("secret")),
			reader: New([]byte("secret")),
			key:    "Role",
		},
		{
			name:   "wrong secret",
			signer: New([]byte("secret")),
			reader: New([]byte("another")),
			key:    "UserID",
			err:    true,
		},
		{
			name:   "short ttl",
			signer: New([]byte("secret"), TTL(time.Minute)),
			reader: New([]byte("secret")),
			key:    "UserID",
			ok:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := tt.signer.Create("UserID", "7")
			require.NoError(t, err)

			value, ok, err := tt.reader.Verify(token, tt.key)
			if tt.err {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.ok, ok)
			if ok {
				assert.Equal(t, "7", value)
			}
		})
	}
}

func TestJWT_Expired(t *testing.T) {
	j := New([]byte("secret"))
	j.ttl = -time.Minute

	token, err := j.Create("UserID", "7")
	require.NoError(t, err)

	_, ok, err := j.Verify(token, "UserID")
	assert.Error(t, err)
	assert.False(t, ok)
}
