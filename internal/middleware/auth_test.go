package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eldercare-backend/pkg/utils"
)

const testSecret = "test-secret"

func authRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/private", Auth(testSecret), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"userID":   c.MustGet(CtxUserID),
			"username": c.MustGet(CtxUsername),
		})
	})
	return r
}

func TestAuthMissingToken(t *testing.T) {
	r := authRouter()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/private", nil)

	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "No token provided")
}

func TestAuthInvalidToken(t *testing.T) {
	r := authRouter()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	req.Header.Set("Authorization", "not-a-token")

	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid token")
}

func TestAuthExpiredToken(t *testing.T) {
	token, err := utils.GenerateToken(testSecret, -time.Minute, 7, "alice")
	require.NoError(t, err)

	r := authRouter()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	req.Header.Set("Authorization", token)

	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthValidToken(t *testing.T) {
	// The raw token goes in the header, no "Bearer " prefix.
	token, err := utils.GenerateToken(testSecret, time.Hour, 7, "alice")
	require.NoError(t, err)

	r := authRouter()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	req.Header.Set("Authorization", token)

	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"userID":7`)
	assert.Contains(t, w.Body.String(), `"username":"alice"`)
}
