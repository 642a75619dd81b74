package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRateLimitMiddleware_NilClientPassesThrough(t *testing.T) {
	router := setupTestRouter()
	router.Use(RateLimitMiddleware(nil, 1, time.Minute))
	router.POST("/login", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/login", nil)
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	}
}

func TestRateLimitKey_RouteTemplateAndCaller(t *testing.T) {
	router := setupTestRouter()
	router.POST("/api/v1/auth/login", func(c *gin.Context) {
		c.String(http.StatusOK, rateLimitKey(c))
	})
	router.DELETE("/api/v1/courses/:id", func(c *gin.Context) {
		c.Set(ContextUserID, "u1")
		c.String(http.StatusOK, rateLimitKey(c))
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", nil)
	req.RemoteAddr = "203.0.113.9:5000"
	router.ServeHTTP(w, req)
	assert.Equal(t, "atlas:attempts:/api/v1/auth/login:ip:203.0.113.9", w.Body.String())

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodDelete, "/api/v1/courses/c-42", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, "atlas:attempts:/api/v1/courses/:id:u1", w.Body.String())
}

func TestRateLimitMiddleware_Exceeded(t *testing.T) {
	t.Skip("Skipping test that requires Redis - covered by integration tests")
}
