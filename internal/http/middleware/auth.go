package middleware

import (
	"net/http"
	"strings"

	"github.com/JJB64/IntelliPark/internal/utils"
	"github.com/gin-gonic/gin"
)

const identityKey = "auth_subject"

// TokenVerifier resolves a bearer token to its subject.
type TokenVerifier interface {
	Verify(token string) (string, error)
}

// Auth guards a route group with bearer-token authentication. The header
// must be exactly "Bearer <token>"; anything else fails closed as a
// missing token. On success the verified subject is the only identity
// downstream handlers may use.
func Auth(tokens TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		parts := strings.Fields(c.GetHeader("Authorization"))
		if len(parts) != 2 || parts[0] != "Bearer" {
			utils.RespondError(c, utils.NewAppError(http.StatusUnauthorized, "UNAUTHORIZED", "Token is missing!", nil))
			c.Abort()
			return
		}

		subject, err := tokens.Verify(parts[1])
		if err != nil {
			utils.RespondError(c, utils.NewAppError(http.StatusUnauthorized, "UNAUTHORIZED", "Token is invalid or expired!", nil))
			c.Abort()
			return
		}

		c.Set(identityKey, subject)
		c.Next()
	}
}

// Identity returns the authenticated subject set by Auth, or "" on an
// unguarded route.
func Identity(c *gin.Context) string {
	return c.GetString(identityKey)
}
