package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/reelhub/movie-service/internal/token"
)

// userIDKey is the gin context key under which RequireAuth stores the
// authenticated account id.
const userIDKey = "auth.user_id"

// RequireAuth verifies the bearer session token once per request and stores
// the account id in the context. Every protected handler sits behind this
// guard instead of re-implementing the check.
func RequireAuth(issuer *token.Issuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := bearerToken(c.GetHeader("Authorization"))

		userID, err := issuer.Verify(raw)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": authErrorMessage(err)})
			return
		}

		c.Set(userIDKey, userID)
		c.Next()
	}
}

// UserID returns the account id stored by RequireAuth.
func UserID(c *gin.Context) (int64, bool) {
	v, ok := c.Get(userIDKey)
	if !ok {
		return 0, false
	}
	id, ok := v.(int64)
	return id, ok
}

func bearerToken(header string) string {
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return strings.TrimSpace(header[len(prefix):])
}

func authErrorMessage(err error) string {
	switch {
	case errors.Is(err, token.ErrMissingToken):
		return "No token provided"
	case errors.Is(err, token.ErrMalformedToken):
		return "Invalid token format"
	case errors.Is(err, token.ErrMissingSubject):
		return "Invalid token payload"
	default:
		return "Invalid token"
	}
}
