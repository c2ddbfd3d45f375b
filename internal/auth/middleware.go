package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// ContextUserIDKey is the gin context key holding the caller's user ID
	ContextUserIDKey = "authUserID"
	// ContextClaimsKey is the gin context key holding the full claims
	ContextClaimsKey = "authClaims"
)

// RequireAuth validates the bearer token and stores the claims on the context
func RequireAuth(authService *Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing authorization header"})
			return
		}
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization header"})
			return
		}

		claims, err := authService.ValidateToken(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}

		c.Set(ContextUserIDKey, claims.UserID)
		c.Set(ContextClaimsKey, claims)
		c.Next()
	}
}

// RequireSupervisor rejects callers whose token lacks a supervisor role.
// Must run after RequireAuth.
func RequireSupervisor() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := CallerClaims(c)
		if !ok || !claims.IsSupervisor {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "supervisor role required"})
			return
		}
		c.Next()
	}
}

// CallerID returns the authenticated caller's user ID
func CallerID(c *gin.Context) (uuid.UUID, bool) {
	v, ok := c.Get(ContextUserIDKey)
	if !ok {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}

// CallerClaims returns the authenticated caller's full claims
func CallerClaims(c *gin.Context) (*Claims, bool) {
	v, ok := c.Get(ContextClaimsKey)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*Claims)
	return claims, ok
}
