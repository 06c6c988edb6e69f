package middleware_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zemuria/ops-console/internal/application/middleware"
	"github.com/zemuria/ops-console/internal/infrastructure/session"
	"github.com/zemuria/ops-console/internal/interfaces/http/response"
)

func newGuardedRouter(t *testing.T) (*gin.Engine, *session.Store, *session.Redirector) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store, err := session.Open(filepath.Join(t.TempDir(), ".auth_token"))
	require.NoError(t, err)
	redirector := session.NewRedirector()

	router := gin.New()
	guard := middleware.NewSessionGuard(store, redirector)
	router.GET("/dashboard", guard.Require(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return router, store, redirector
}

func get(router *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	router.ServeHTTP(w, req)
	return w
}

func TestSessionGuard(t *testing.T) {
	t.Run("passes through with a session", func(t *testing.T) {
		router, store, _ := newGuardedRouter(t)
		require.NoError(t, store.Set("tok"))

		w := get(router, "/dashboard")
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("rejects without a session", func(t *testing.T) {
		router, _, _ := newGuardedRouter(t)

		w := get(router, "/dashboard")
		assert.Equal(t, http.StatusUnauthorized, w.Code)

		var body response.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "UNAUTHORIZED", body.Error)
		assert.Empty(t, body.Redirect)
	})

	t.Run("pending redirect is delivered exactly once", func(t *testing.T) {
		router, _, redirector := newGuardedRouter(t)
		redirector.Trigger()

		first := get(router, "/dashboard")
		assert.Equal(t, http.StatusUnauthorized, first.Code)

		var firstBody response.ErrorResponse
		require.NoError(t, json.Unmarshal(first.Body.Bytes(), &firstBody))
		assert.Equal(t, "SESSION_EXPIRED", firstBody.Error)
		assert.Equal(t, "/login", firstBody.Redirect)

		second := get(router, "/dashboard")
		var secondBody response.ErrorResponse
		require.NoError(t, json.Unmarshal(second.Body.Bytes(), &secondBody))
		assert.Equal(t, "UNAUTHORIZED", secondBody.Error)
		assert.Empty(t, secondBody.Redirect)
	})
}
