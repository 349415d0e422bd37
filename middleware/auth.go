package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"restaurant-foh/identity"
)

const subjectKey = "subject"

// TokenVerifier turns a bearer token into claims.
type TokenVerifier interface {
	Verify(token string) (*identity.Claims, error)
}

// AuthRequired validates the JWT and injects the subject into context
func AuthRequired(v TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required (Bearer <token>)"})
			c.Abort()
			return
		}
		claims, err := v.Verify(strings.TrimPrefix(authHeader, "Bearer "))
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}
		c.Set(subjectKey, claims.Subject())
		c.Next()
	}
}

// RequireAccess enforces the role policy of resource for the caller set by AuthRequired
func RequireAccess(resource identity.Resource) gin.HandlerFunc {
	return func(c *gin.Context) {
		sub, _ := GetSubject(c)
		err := identity.Authorize(sub, resource)
		switch {
		case err == nil:
			c.Next()
		case errors.Is(err, identity.ErrUnauthenticated):
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			c.Abort()
		default:
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
			c.Abort()
		}
	}
}

// GetSubject extracts the caller from context
func GetSubject(c *gin.Context) (identity.Subject, bool) {
	val, ok := c.Get(subjectKey)
	if !ok {
		return identity.Subject{}, false
	}
	sub, ok := val.(identity.Subject)
	return sub, ok
}
