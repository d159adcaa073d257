package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"alumet/api/internal/config"
	"alumet/api/internal/security"
)

// AdminAuth gates admin-privileged routes on the session cookie set by
// login. A missing, tampered, or expired token aborts with 401 before the
// handler runs. Public routes simply never carry this middleware.
func AdminAuth(cfg *config.AppConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(cfg.Admin.CookieName)
		if err != nil || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		claims, err := security.ParseAdminToken(token, cfg.Admin.SessionSecret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		c.Set("admin_email", claims.Subject)
		c.Next()
	}
}
