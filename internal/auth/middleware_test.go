package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupMiddlewareTest(t *testing.T) (*gin.Engine, *Service, func()) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	service, _, cleanup := setupServiceTest(t)
	middleware := NewMiddleware(service)

	router := gin.New()
	router.GET("/protected", middleware.RequireUser(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"username": CurrentUser(c).Username})
	})
	router.POST("/maintainer", middleware.RequireUser(), middleware.RequireMaintainer([]string{"dim"}), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	return router, service, cleanup
}

func doRequest(router *gin.Engine, method, path, authHeader string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(method, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	router.ServeHTTP(w, req)
	return w
}

func TestMiddleware_RequireUser(t *testing.T) {
	router, service, cleanup := setupMiddlewareTest(t)
	defer cleanup()

	_, err := service.Register("alice", "secret123")
	require.NoError(t, err)
	token, err := service.Tokens().Issue("alice")
	require.NoError(t, err)

	t.Run("valid token resolves the user", func(t *testing.T) {
		w := doRequest(router, "GET", "/protected", "Bearer "+token)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "alice")
	})

	t.Run("missing header is rejected", func(t *testing.T) {
		w := doRequest(router, "GET", "/protected", "")

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "Bearer", w.Header().Get("WWW-Authenticate"))
	})

	t.Run("non-bearer scheme is rejected", func(t *testing.T) {
		w := doRequest(router, "GET", "/protected", "Token "+token)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "Bearer", w.Header().Get("WWW-Authenticate"))
	})

	t.Run("garbage token is rejected, not a crash", func(t *testing.T) {
		w := doRequest(router, "GET", "/protected", "Bearer not.a.jwt")

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("scheme is case-insensitive", func(t *testing.T) {
		w := doRequest(router, "GET", "/protected", "bearer "+token)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestMiddleware_RequireMaintainer(t *testing.T) {
	router, service, cleanup := setupMiddlewareTest(t)
	defer cleanup()

	for _, username := range []string{"dim", "alice"} {
		_, err := service.Register(username, "secret123")
		require.NoError(t, err)
	}

	t.Run("maintainer is allowed", func(t *testing.T) {
		token, err := service.Tokens().Issue("dim")
		require.NoError(t, err)

		w := doRequest(router, "POST", "/maintainer", "Bearer "+token)

		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("authenticated non-maintainer gets 403", func(t *testing.T) {
		token, err := service.Tokens().Issue("alice")
		require.NoError(t, err)

		w := doRequest(router, "POST", "/maintainer", "Bearer "+token)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("unauthenticated caller gets 401", func(t *testing.T) {
		w := doRequest(router, "POST", "/maintainer", "")

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestCurrentUser_Unset(t *testing.T) {
	gin.SetMode(gin.TestMode)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.Nil(t, CurrentUser(c))
}
