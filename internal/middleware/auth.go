package middleware

import (
	"net/http"
	"strings"

	"regeve-backend/internal/services"

	"github.com/gin-gonic/gin"
)

func bearerToken(c *gin.Context) (string, bool) {
	header := c.GetHeader("Authorization")
	if header == "" {
		return "", false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", false
	}
	return parts[1], true
}

// OrganizerAuth admits organizer tokens only and stores the organizer id on
// the context.
func OrganizerAuth(authService *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization header required"})
			return
		}

		id, role, err := authService.ValidateToken(token)
		if err != nil || role != services.RoleOrganizer {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}

		c.Set("organizer_id", id)
		c.Next()
	}
}

// VoterAuth admits voter tokens only. The voter id it stores is the only
// identity CastVote will trust, it is never read from the request body.
func VoterAuth(authService *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization header required"})
			return
		}

		id, role, err := authService.ValidateToken(token)
		if err != nil || role != services.RoleVoter {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}

		c.Set("voter_id", id)
		c.Next()
	}
}
