package api

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/lestrrat-go/jwx/v2/jwa"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

// Identity headers set by the auth proxy in front of the API, in
// precedence order. Direct (unproxied) callers fall back to the
// generic author.
var identityHeaders = []string{
	"X-Forwarded-User",
	"X-Forwarded-Email",
	"X-Remote-User",
}

const fallbackAuthor = "api-client"

// extractAuthor resolves the acting user from proxy identity headers.
func extractAuthor(c *gin.Context) string {
	for _, header := range identityHeaders {
		if v := c.GetHeader(header); v != "" {
			return v
		}
	}
	return fallbackAuthor
}

// errNoJWTSecret means the server was started without JWT_SECRET_KEY,
// so WebSocket auth cannot be performed.
var errNoJWTSecret = errors.New("jwt secret is not configured")

// verifyWSToken validates the HS256-signed token presented on a
// WebSocket upgrade and returns the subject claim.
func (s *Server) verifyWSToken(token string) (string, error) {
	if len(s.jwtSecret) == 0 {
		return "", errNoJWTSecret
	}
	if token == "" {
		return "", errors.New("token is missing")
	}

	parsed, err := jwt.Parse(
		[]byte(token),
		jwt.WithKey(jwa.HS256, s.jwtSecret),
		jwt.WithValidate(true),
	)
	if err != nil {
		return "", fmt.Errorf("invalid token: %w", err)
	}
	return parsed.Subject(), nil
}
