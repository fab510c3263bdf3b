package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRouter(secret string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", AuthMiddleware(secret), func(c *gin.Context) {
		gymID, _ := GetGymID(c)
		userID, _ := GetUserID(c)
		c.JSON(http.StatusOK, gin.H{"gym_id": gymID, "user_id": userID})
	})
	r.GET("/admin", AuthMiddleware(secret), RequireRole("admin"), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func doRequest(r *gin.Engine, path, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddlewareMissingHeader(t *testing.T) {
	r := setupRouter(testSecret)
	w := doRequest(r, "/protected", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareBadFormat(t *testing.T) {
	r := setupRouter(testSecret)
	assert.Equal(t, http.StatusUnauthorized, doRequest(r, "/protected", "Token abc").Code)
	assert.Equal(t, http.StatusUnauthorized, doRequest(r, "/protected", "Bearer ").Code)
	assert.Equal(t, http.StatusUnauthorized, doRequest(r, "/protected", "Bearer not-a-jwt").Code)
}

func TestAuthMiddlewareValidToken(t *testing.T) {
	r := setupRouter(testSecret)
	token, err := GenerateAccessToken(4, 11, "a@b.c", "staff", testSecret)
	require.NoError(t, err)

	w := doRequest(r, "/protected", "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"gym_id":11`)
	assert.Contains(t, w.Body.String(), `"user_id":4`)
}

func TestAuthMiddlewareRejectsRefreshToken(t *testing.T) {
	r := setupRouter(testSecret)
	token, err := GenerateRefreshToken(4, 11, "a@b.c", "staff", testSecret)
	require.NoError(t, err)

	w := doRequest(r, "/protected", "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireRole(t *testing.T) {
	r := setupRouter(testSecret)

	adminToken, err := GenerateAccessToken(1, 11, "a@b.c", "admin", testSecret)
	require.NoError(t, err)
	staffToken, err := GenerateAccessToken(2, 11, "d@e.f", "staff", testSecret)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, doRequest(r, "/admin", "Bearer "+adminToken).Code)
	assert.Equal(t, http.StatusForbidden, doRequest(r, "/admin", "Bearer "+staffToken).Code)
}
