package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gestao-associado-svc/internal/service"
)

const testSecret = "test-secret"

func signToken(t *testing.T, role string, secret string, expiresAt time.Time) string {
	t.Helper()

	claims := service.AuthClaims{
		Username: "52998224725",
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func setupAuthRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	authed := router.Group("", JWTAuth(testSecret))
	authed.GET("/me", func(c *gin.Context) {
		username, _ := c.Get(ContextKeyUsername)
		c.JSON(http.StatusOK, gin.H{"username": username})
	})
	authed.GET("/admin", RequireAdmin(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return router
}

func doGet(router *gin.Engine, path string, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestJWTAuth(t *testing.T) {
	router := setupAuthRouter()
	future := time.Now().Add(time.Hour)

	t.Run("valid token", func(t *testing.T) {
		w := doGet(router, "/me", signToken(t, service.RoleMember, testSecret, future))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "52998224725")
	})

	t.Run("missing header", func(t *testing.T) {
		w := doGet(router, "/me", "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("wrong secret", func(t *testing.T) {
		w := doGet(router, "/me", signToken(t, service.RoleMember, "other-secret", future))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("expired token", func(t *testing.T) {
		w := doGet(router, "/me", signToken(t, service.RoleMember, testSecret, time.Now().Add(-time.Hour)))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestRequireAdmin(t *testing.T) {
	router := setupAuthRouter()
	future := time.Now().Add(time.Hour)

	w := doGet(router, "/admin", signToken(t, service.RoleAdmin, testSecret, future))
	assert.Equal(t, http.StatusOK, w.Code)

	w = doGet(router, "/admin", signToken(t, service.RoleMember, testSecret, future))
	assert.Equal(t, http.StatusForbidden, w.Code)
}
