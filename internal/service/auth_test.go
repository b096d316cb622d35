package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signForTest(secret, timestamp, ownerID string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(timestamp + ":" + ownerID))
	return base64.URLEncoding.EncodeToString(mac.Sum(nil))
}

func TestAuthService_GenerateToken(t *testing.T) {
	t.Run("generates three part token", func(t *testing.T) {
		svc := NewAuthService("test-secret-key")

		token, err := svc.GenerateToken("alice")

		require.NoError(t, err)
		parts := strings.Split(token, ":")
		require.Len(t, parts, 3)
		assert.Equal(t, "alice", parts[1])

		ts, err := strconv.ParseInt(parts[0], 10, 64)
		require.NoError(t, err)
		assert.InDelta(t, time.Now().Unix(), ts, 2)
	})

	t.Run("signature matches secret", func(t *testing.T) {
		svc := NewAuthService("test-secret-key")
		token, err := svc.GenerateToken("alice")
		require.NoError(t, err)

		parts := strings.Split(token, ":")
		assert.Equal(t, signForTest("test-secret-key", parts[0], parts[1]), parts[2])
	})

	t.Run("rejects invalid owner ids", func(t *testing.T) {
		svc := NewAuthService("test-secret-key")
		for _, id := range []string{"", "a:b", "white space", strings.Repeat("x", 65)} {
			_, err := svc.GenerateToken(id)
			assert.ErrorIs(t, err, ErrInvalidOwnerID, "owner id %q", id)
		}
	})
}

func TestAuthService_ValidateToken(t *testing.T) {
	t.Run("returns owner for valid token", func(t *testing.T) {
		svc := NewAuthService("test-secret-key")
		token, err := svc.GenerateToken("owner-42")
		require.NoError(t, err)

		owner, err := svc.ValidateToken(token)

		require.NoError(t, err)
		assert.Equal(t, "owner-42", owner)
	})

	t.Run("returns ErrInvalidToken for malformed format", func(t *testing.T) {
		svc := NewAuthService("test-secret-key")
		tests := []struct {
			name  string
			token string
		}{
			{"empty", ""},
			{"one part", "abc"},
			{"two parts", "123:alice"},
			{"four parts", "1:2:3:4"},
			{"non numeric timestamp", "abc:alice:" + signForTest("test-secret-key", "abc", "alice")},
			{"bad owner", "123:a b:sig"},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := svc.ValidateToken(tt.token)
				assert.ErrorIs(t, err, ErrInvalidToken)
			})
		}
	})

	t.Run("returns ErrInvalidToken for wrong signature", func(t *testing.T) {
		svc := NewAuthService("test-secret-key")
		ts := strconv.FormatInt(time.Now().Unix(), 10)
		token := ts + ":alice:" + signForTest("other-secret", ts, "alice")

		_, err := svc.ValidateToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("returns ErrInvalidToken when owner is swapped", func(t *testing.T) {
		svc := NewAuthService("test-secret-key")
		token, err := svc.GenerateToken("alice")
		require.NoError(t, err)
		parts := strings.Split(token, ":")

		_, err = svc.ValidateToken(parts[0] + ":mallory:" + parts[2])
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("returns ErrExpiredToken for old tokens", func(t *testing.T) {
		svc := NewAuthService("test-secret-key")
		issued := time.Now().Add(-8 * 24 * time.Hour)
		svc.now = func() time.Time { return issued }
		token, err := svc.GenerateToken("alice")
		require.NoError(t, err)

		svc.now = time.Now
		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, ErrExpiredToken)
	})

	t.Run("accepts token just inside validity window", func(t *testing.T) {
		svc := NewAuthService("test-secret-key")
		svc.now = func() time.Time { return time.Now().Add(-7*24*time.Hour + time.Minute) }
		token, err := svc.GenerateToken("alice")
		require.NoError(t, err)

		svc.now = time.Now
		owner, err := svc.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, "alice", owner)
	})
}
