package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newCORSRouter(cfg CORSConfig) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(CORSWithConfig(cfg))
	router.GET("/projects", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	return router
}

func corsRequest(router *gin.Engine, method, origin string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, "/projects", nil)
	if origin != "" {
		req.Header.Set("Origin", origin)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCORSAllowedOrigin(t *testing.T) {
	cfg := DefaultCORSConfig()
	cfg.AllowOrigins = []string{"https://agency.example"}
	router := newCORSRouter(cfg)

	w := corsRequest(router, http.MethodGet, "https://agency.example")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "https://agency.example", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
	assert.Contains(t, w.Header().Get("Access-Control-Expose-Headers"), "X-Request-ID")
}

func TestCORSUnknownOrigin(t *testing.T) {
	cfg := DefaultCORSConfig()
	cfg.AllowOrigins = []string{"https://agency.example"}
	router := newCORSRouter(cfg)

	w := corsRequest(router, http.MethodGet, "https://evil.example")

	// Request still served, but without CORS grants; the browser blocks it
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORSEmptyAllowList(t *testing.T) {
	router := newCORSRouter(DefaultCORSConfig())

	w := corsRequest(router, http.MethodGet, "https://agency.example")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORSWildcard(t *testing.T) {
	cfg := DefaultCORSConfig()
	cfg.AllowOrigins = []string{"*"}
	router := newCORSRouter(cfg)

	w := corsRequest(router, http.MethodGet, "https://anywhere.example")

	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	// Credentials are never granted together with a wildcard origin
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Credentials"))
}

func TestCORSPreflight(t *testing.T) {
	cfg := DefaultCORSConfig()
	cfg.AllowOrigins = []string{"https://agency.example"}
	cfg.MaxAge = time.Hour
	router := newCORSRouter(cfg)

	w := corsRequest(router, http.MethodOptions, "https://agency.example")

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://agency.example", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "PUT")
	assert.Equal(t, "3600", w.Header().Get("Access-Control-Max-Age"))
}

func TestCORSPreflightUnknownOrigin(t *testing.T) {
	cfg := DefaultCORSConfig()
	cfg.AllowOrigins = []string{"https://agency.example"}
	router := newCORSRouter(cfg)

	w := corsRequest(router, http.MethodOptions, "https://evil.example")

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}
