package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alumet/api/internal/config"
	"alumet/api/internal/middleware"
	"alumet/api/internal/security"
)

const (
	testCookieName = "alumet_admin_session"
	testSecret     = "middleware-test-secret"
)

func adminAuthRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	cfg := &config.AppConfig{
		Admin: config.AdminConfig{
			CookieName:    testCookieName,
			SessionSecret: testSecret,
		},
	}

	r := gin.New()
	r.GET("/guarded", middleware.AdminAuth(cfg), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func TestAdminAuthNoCookie(t *testing.T) {
	r := adminAuthRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/guarded", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"unauthorized"}`, w.Body.String())
}

func TestAdminAuthValidToken(t *testing.T) {
	r := adminAuthRouter()

	token, err := security.GenerateAdminToken(testSecret, "admin@alumet.example", time.Hour)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/guarded", nil)
	req.AddCookie(&http.Cookie{Name: testCookieName, Value: token})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAdminAuthExpiredToken(t *testing.T) {
	r := adminAuthRouter()

	token, err := security.GenerateAdminToken(testSecret, "admin@alumet.example", -time.Minute)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/guarded", nil)
	req.AddCookie(&http.Cookie{Name: testCookieName, Value: token})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminAuthForgedToken(t *testing.T) {
	r := adminAuthRouter()

	token, err := security.GenerateAdminToken("some-other-secret", "admin@alumet.example", time.Hour)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/guarded", nil)
	req.AddCookie(&http.Cookie{Name: testCookieName, Value: token})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminAuthLiteralTrueCookieRejected(t *testing.T) {
	r := adminAuthRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/guarded", nil)
	req.AddCookie(&http.Cookie{Name: testCookieName, Value: "true"})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
