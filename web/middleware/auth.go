package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/userhub-dev/userhub/token"
	"github.com/userhub-dev/userhub/web/session"
)

// TokenAuth guards a route group with bearer-token authentication. The
// credential must arrive as "Bearer <token>" in the Authorization header;
// a missing header, a different scheme and an invalid token all produce the
// same 401 response so callers cannot probe for the failure cause.
func TokenAuth(tokens *token.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, ok := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !ok {
			abortUnauthorized(c)
			return
		}

		claims, err := tokens.Verify(raw)
		if err != nil {
			abortUnauthorized(c)
			return
		}

		session.SetClaims(c, claims)
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized: missing or invalid token."})
	c.Abort()
}
