package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/nsu-ctrg/grant-review/internal/domain/user"
	"github.com/nsu-ctrg/grant-review/pkg/types"
)

func claimsFrom(c *gin.Context) (*types.Claims, bool) {
	claims, ok := c.MustGet("claims").(*types.Claims)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
		return nil, false
	}
	return claims, true
}

// RequireRole gates a route on one or more account roles. Admin always
// passes.
func RequireRole(roles ...user.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := claimsFrom(c)
		if !ok {
			return
		}
		if claims.Role == string(user.RoleAdmin) {
			c.Next()
			return
		}
		for _, r := range roles {
			if claims.Role == string(r) {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "insufficient role"})
	}
}

// Chair gates a route on the chair role. Stage-1 and final decisions go
// through this.
func Chair() gin.HandlerFunc {
	return RequireRole(user.RoleChair)
}

// Reviewer gates a route on the reviewer role.
func Reviewer() gin.HandlerFunc {
	return RequireRole(user.RoleReviewer)
}

// Admin gates a route on the admin role only.
func Admin() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := claimsFrom(c)
		if !ok {
			return
		}
		if claims.Role != string(user.RoleAdmin) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin only"})
			return
		}
		c.Next()
	}
}

// CORSMiddleware allows the campus frontends. Websocket upgrades bypass the
// CORS handler.
func CORSMiddleware() gin.HandlerFunc {
	config := cors.Config{
		AllowOriginFunc: func(origin string) bool {
			return strings.HasPrefix(origin, "http://localhost:") ||
				strings.HasPrefix(origin, "http://127.0.0.1:") ||
				strings.HasSuffix(origin, ".nsu.edu")
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	corsHandler := cors.New(config)
	return func(c *gin.Context) {
		if strings.EqualFold(c.GetHeader("Upgrade"), "websocket") {
			c.Next()
			return
		}
		corsHandler(c)
	}
}
