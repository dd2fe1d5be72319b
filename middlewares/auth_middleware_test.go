package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/finnmprice/caffeine-counter/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", AuthMiddleware(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"userId": c.GetUint("userID")})
	})
	return r
}

func TestAuthMiddlewareRejectsMissingSession(t *testing.T) {
	t.Setenv("SESSION_SECRET", "test-secret")
	r := testRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareRejectsInvalidToken(t *testing.T) {
	t.Setenv("SESSION_SECRET", "test-secret")
	r := testRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: "bogus"})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareAcceptsCookie(t *testing.T) {
	t.Setenv("SESSION_SECRET", "test-secret")
	token, err := utils.GenerateSessionToken(42)
	require.NoError(t, err)
	r := testRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: token})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"userId":42`)
}

func TestAuthMiddlewareAcceptsBearerHeader(t *testing.T) {
	t.Setenv("SESSION_SECRET", "test-secret")
	token, err := utils.GenerateSessionToken(7)
	require.NoError(t, err)
	r := testRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
