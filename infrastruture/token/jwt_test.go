package token

import (
	"crypto/rand"
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJwtService(t *testing.T) {
	// Setup
	bytes := make([]byte, 32)
	_, err := rand.Read(bytes)
	require.NoError(t, err)
	secretKey := base64.URLEncoding.EncodeToString(bytes)
	issuer := "labyrinth-api-test"

	svc := NewJwtService(secretKey, issuer)

	t.Run("Generate and Decode valid token", func(t *testing.T) {
		claims := map[string]interface{}{
			"userID":   "9f3a",
			"username": "wanderer",
		}

		token, err := svc.Generate(claims, 5*time.Minute)
		assert.NoError(t, err)
		assert.NotEmpty(t, token)

		decoded, err := svc.Decode(token)
		assert.NoError(t, err)
		assert.Equal(t, "wanderer", decoded["username"])
		assert.Equal(t, issuer, decoded["iss"])
	})

	t.Run("Decode invalid token", func(t *testing.T) {
		_, err := svc.Decode("invalidTokenString")
		assert.Error(t, err)
	})

	t.Run("Decode expired token", func(t *testing.T) {
		token, err := svc.Generate(map[string]interface{}{"userID": "9f3a"}, -time.Minute)
		assert.NoError(t, err)
		assert.NotEmpty(t, token)

		_, err = svc.Decode(token)
		assert.Error(t, err)
	})

	t.Run("Decode token from another issuer", func(t *testing.T) {
		other := NewJwtService(secretKey, "someone-else")
		token, err := other.Generate(map[string]interface{}{"userID": "9f3a"}, 5*time.Minute)
		assert.NoError(t, err)

		_, err = svc.Decode(token)
		assert.Error(t, err)
	})

	t.Run("Generate token with empty claims", func(t *testing.T) {
		token, err := svc.Generate(map[string]interface{}{}, 5*time.Minute)
		assert.NoError(t, err)
		assert.NotEmpty(t, token)

		decoded, err := svc.Decode(token)
		assert.NoError(t, err)
		assert.Empty(t, decoded["userID"])
		assert.Empty(t, decoded["username"])
	})
}
