package handler

import (
	"net/http"
	"strings"
	"time"

	"finlens/internal/auth"

	"github.com/gin-gonic/gin"
)

// BearerAuth returns a middleware enforcing Authorization: Bearer tokens
// minted by the login endpoint. A nil issuer makes it a no-op, so the
// service can run as an open proxy in local development.
func BearerAuth(issuer *auth.TokenIssuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		if issuer == nil {
			c.Next()
			return
		}
		header := strings.TrimSpace(c.GetHeader("Authorization"))
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "missing bearer token"})
			return
		}
		if err := issuer.Verify(strings.TrimSpace(token), time.Now()); err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": err.Error()})
			return
		}
		c.Next()
	}
}
