package middleware

import (
	"net/http"
	"strings"

	"github.com/TSC-Home/svelte-grow-todo/internal/service"

	"github.com/gin-gonic/gin"
)

// AuthCookie is where browser clients carry the session token.
const AuthCookie = "auth_token"

func tokenFromRequest(c *gin.Context) string {
	if h := c.GetHeader("Authorization"); strings.HasPrefix(h, "Bearer ") {
		return strings.TrimPrefix(h, "Bearer ")
	}
	if v, err := c.Cookie(AuthCookie); err == nil {
		return v
	}
	return ""
}

// JWT requires a valid session token and puts user_id into the context.
func JWT() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := tokenFromRequest(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization required"})
			return
		}

		userID, err := service.ParseJWT(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		c.Set("user_id", userID)
		c.Next()
	}
}

// OptionalJWT sets user_id when a valid token is present and lets the
// request through either way. Read paths that serve defaults to
// anonymous visitors use this.
func OptionalJWT() gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := tokenFromRequest(c); token != "" {
			if userID, err := service.ParseJWT(token); err == nil {
				c.Set("user_id", userID)
			}
		}
		c.Next()
	}
}
