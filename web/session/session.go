// Package session stores verified token claims in the request context so
// downstream handlers can read the authenticated identity.
package session

import (
	"github.com/gin-gonic/gin"

	"github.com/userhub-dev/userhub/token"
)

const claimsKey = "AUTH_CLAIMS"

// SetClaims attaches verified claims to the request for the remainder of its
// handling. Only the auth middleware calls this.
func SetClaims(c *gin.Context, claims *token.Claims) {
	c.Set(claimsKey, claims)
}

// GetClaims returns the claims stored by the auth middleware, or nil when
// the request carried no valid token.
func GetClaims(c *gin.Context) *token.Claims {
	if obj, ok := c.Get(claimsKey); ok {
		if claims, ok := obj.(*token.Claims); ok {
			return claims
		}
	}
	return nil
}
