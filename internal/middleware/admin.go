package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Admin session cookie. The value is a fixed sentinel, not a signed token;
// the admin console is gated by one shared password, nothing more.
const (
	AuthCookie      = "admin-auth"
	AuthCookieValue = "authenticated"
)

// IsAuthenticated reports whether the request carries the admin cookie.
func IsAuthenticated(c *gin.Context) bool {
	v, err := c.Cookie(AuthCookie)
	return err == nil && v == AuthCookieValue
}

// AdminRequired rejects requests without the admin cookie before any
// handler touches the store.
func AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !IsAuthenticated(c) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Next()
	}
}
