package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"alumet/api/internal/security"
)

// No format validation on the email: a malformed value is just a wrong
// credential and fails the comparison like any other.
type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h HandlerSet) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email and password are required"})
		return
	}

	token, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.respondError(c, err)
		return
	}

	h.setSessionCookie(c, token, int(h.cfg.Admin.SessionTTL.Seconds()))
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Logout clears the cookie unconditionally; logging out while already
// logged out is not an error.
func (h HandlerSet) Logout(c *gin.Context) {
	h.setSessionCookie(c, "", -1)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h HandlerSet) CheckAuth(c *gin.Context) {
	token, err := c.Cookie(h.cfg.Admin.CookieName)
	if err != nil || token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"authenticated": false})
		return
	}

	if _, err := security.ParseAdminToken(token, h.cfg.Admin.SessionSecret); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"authenticated": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{"authenticated": true})
}

func (h HandlerSet) setSessionCookie(c *gin.Context, token string, maxAge int) {
	c.SetSameSite(http.SameSiteStrictMode)
	secure := h.cfg.Environment == "production"
	c.SetCookie(h.cfg.Admin.CookieName, token, maxAge, "/", "", secure, true)
}
