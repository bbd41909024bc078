package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func corsRouter(origins ...string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(CORS(origins...))
	router.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })
	return router
}

func TestCORS_Wildcard(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Origin", "https://shop.example.org")
	w := httptest.NewRecorder()
	corsRouter("*").ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORS_NoOriginsConfigured(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Origin", "https://shop.example.org")
	w := httptest.NewRecorder()
	corsRouter().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORS_SameOriginPassesThrough(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "http://api.example.com/ping", nil)
	req.Header.Set("Origin", "http://api.example.com")
	w := httptest.NewRecorder()
	corsRouter("https://admin.example.com").ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
