package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"atlas/pkg/jwt"
	"atlas/pkg/models"

	"github.com/gin-gonic/gin"
	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "atlas-test-secret"

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

// atlasRouter mounts a subset of the protected API behind AuthMiddleware.
func atlasRouter(jwtService *jwt.Service, reached *bool) *gin.Engine {
	router := setupTestRouter()
	protected := router.Group("/api/v1")
	protected.Use(AuthMiddleware(jwtService))

	whoami := func(c *gin.Context) {
		*reached = true
		c.JSON(http.StatusOK, gin.H{"user_id": c.GetString(ContextUserID), "role": c.GetString(ContextUserRole)})
	}
	protected.GET("/me", whoami)
	protected.GET("/courses/mine", whoami)
	return router
}

func TestAuthMiddleware_AtlasRoles(t *testing.T) {
	jwtService := jwt.NewService(testSecret)

	tests := []struct {
		name string
		path string
		role models.UserRole
	}{
		{"student reads profile", "/api/v1/me", models.RoleStudent},
		{"instructor lists own courses", "/api/v1/courses/mine", models.RoleInstructor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := jwtService.GenerateToken("user-7", string(tt.role))
			require.NoError(t, err)

			var reached bool
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			req.Header.Set("Authorization", "Bearer "+token)
			atlasRouter(jwtService, &reached).ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code)
			assert.True(t, reached)
			assert.JSONEq(t, `{"user_id":"user-7","role":"`+string(tt.role)+`"}`, w.Body.String())
		})
	}
}

func TestAuthMiddleware_SchemeIsCaseInsensitive(t *testing.T) {
	jwtService := jwt.NewService(testSecret)
	token, err := jwtService.GenerateToken("user-7", string(models.RoleStudent))
	require.NoError(t, err)

	var reached bool
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/me", nil)
	req.Header.Set("Authorization", "bearer "+token)
	atlasRouter(jwtService, &reached).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, reached)
}

func expiredToken(t *testing.T) string {
	t.Helper()
	past := time.Now().Add(-time.Hour)
	claims := &jwt.Claims{
		UserID: "user-7",
		Role:   string(models.RoleStudent),
		RegisteredClaims: gojwt.RegisteredClaims{
			ExpiresAt: gojwt.NewNumericDate(past),
			IssuedAt:  gojwt.NewNumericDate(past.Add(-time.Hour)),
			Issuer:    "atlas",
		},
	}
	signed, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func TestAuthMiddleware_Rejects(t *testing.T) {
	jwtService := jwt.NewService(testSecret)
	foreign, err := jwt.NewService("another-secret").GenerateToken("user-7", string(models.RoleInstructor))
	require.NoError(t, err)
	anonymous, err := jwtService.GenerateToken("", string(models.RoleStudent))
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
		msg    string
	}{
		{"no header", "", "Authorization header required"},
		{"basic scheme", "Basic dXNlcjpwYXNz", "Invalid authorization header format"},
		{"empty token", "Bearer   ", "Invalid authorization header format"},
		{"garbage token", "Bearer invalid-token", "Invalid token"},
		{"other secret", "Bearer " + foreign, "Invalid token"},
		{"expired", "Bearer " + expiredToken(t), "Invalid token"},
		{"no user id", "Bearer " + anonymous, "Invalid token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var reached bool
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/api/v1/courses/mine", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			atlasRouter(jwtService, &reached).ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.False(t, reached)
			assert.JSONEq(t, `{"error":"`+tt.msg+`"}`, w.Body.String())
		})
	}
}
