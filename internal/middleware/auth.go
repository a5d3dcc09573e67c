package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/yaritu/core/internal/pkg/jwt"
	"github.com/yaritu/core/internal/pkg/response"
)

const ContextKeyAdmin = "admin_user"

// Auth returns a middleware that enforces an admin session token.
func Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := jwt.Parse(extractToken(c))
		if err != nil {
			response.Unauthorized(c)
			return
		}
		c.Set(ContextKeyAdmin, claims.Username)
		c.Next()
	}
}

// CurrentAdmin extracts the authenticated admin username from context.
func CurrentAdmin(c *gin.Context) string {
	v, _ := c.Get(ContextKeyAdmin)
	name, _ := v.(string)
	return name
}

// IsAuthenticated reports whether the request carries a valid session.
func IsAuthenticated(c *gin.Context) bool {
	return CurrentAdmin(c) != ""
}

func extractToken(c *gin.Context) string {
	auth := c.GetHeader("Authorization")
	if auth != "" {
		return NormalizeToken(auth)
	}
	return NormalizeToken(c.Query("token"))
}

// NormalizeToken trims spaces and strips the optional Bearer prefix.
func NormalizeToken(raw string) string {
	token := strings.TrimSpace(raw)
	if token == "" {
		return ""
	}
	if strings.HasPrefix(strings.ToLower(token), "bearer ") {
		return strings.TrimSpace(token[7:])
	}
	return token
}
