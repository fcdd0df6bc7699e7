package api

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lestrrat-go/jwx/v2/jwa"
	"github.com/lestrrat-go/jwx/v2/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, secret []byte, subject string, expiresIn time.Duration) string {
	t.Helper()
	token, err := jwt.NewBuilder().
		Subject(subject).
		IssuedAt(time.Now()).
		Expiration(time.Now().Add(expiresIn)).
		Build()
	require.NoError(t, err)

	signed, err := jwt.Sign(token, jwt.WithKey(jwa.HS256, secret))
	require.NoError(t, err)
	return string(signed)
}

func TestVerifyWSToken(t *testing.T) {
	secret := []byte("test-secret")
	server := NewServer(0)
	server.SetJWTSecret(secret)

	t.Run("valid token", func(t *testing.T) {
		subject, err := server.verifyWSToken(signedToken(t, secret, "alice", time.Hour))
		require.NoError(t, err)
		assert.Equal(t, "alice", subject)
	})

	t.Run("missing token", func(t *testing.T) {
		_, err := server.verifyWSToken("")
		assert.Error(t, err)
	})

	t.Run("wrong secret", func(t *testing.T) {
		_, err := server.verifyWSToken(signedToken(t, []byte("other-secret"), "alice", time.Hour))
		assert.Error(t, err)
	})

	t.Run("expired token", func(t *testing.T) {
		_, err := server.verifyWSToken(signedToken(t, secret, "alice", -time.Minute))
		assert.Error(t, err)
	})

	t.Run("unconfigured secret", func(t *testing.T) {
		bare := NewServer(0)
		_, err := bare.verifyWSToken(signedToken(t, secret, "alice", time.Hour))
		assert.ErrorIs(t, err, errNoJWTSecret)
	})
}

func TestExtractAuthor(t *testing.T) {
	tests := []struct {
		name     string
		headers  map[string]string
		expected string
	}{
		{
			name:     "forwarded user wins",
			headers:  map[string]string{"X-Forwarded-User": "alice", "X-Forwarded-Email": "alice@example.com"},
			expected: "alice",
		},
		{
			name:     "email when no user",
			headers:  map[string]string{"X-Forwarded-Email": "bob@example.com"},
			expected: "bob@example.com",
		},
		{
			name:     "remote user last",
			headers:  map[string]string{"X-Remote-User": "carol"},
			expected: "carol",
		},
		{
			name:     "fallback without headers",
			headers:  nil,
			expected: "api-client",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest("GET", "/", nil)
			for k, v := range tt.headers {
				c.Request.Header.Set(k, v)
			}
			assert.Equal(t, tt.expected, extractAuthor(c))
		})
	}
}
