package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/zemuria/ops-console/internal/application/command"
	domainErrors "github.com/zemuria/ops-console/internal/domain/errors"
	"github.com/zemuria/ops-console/internal/infrastructure/session"
	"github.com/zemuria/ops-console/internal/interfaces/http/handlers"
	"github.com/zemuria/ops-console/internal/interfaces/http/response"
)

type stubAuth struct {
	err   error
	calls int
}

func (s *stubAuth) Login(ctx context.Context, email, password string) error {
	s.calls++
	return s.err
}

func newAuthRouter(t *testing.T, auth *stubAuth) (*gin.Engine, *session.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store, err := session.Open(filepath.Join(t.TempDir(), ".auth_token"))
	require.NoError(t, err)

	handler := handlers.NewAuthHandler(command.NewLoginCommand(auth, zap.NewNop()), store)

	router := gin.New()
	router.POST("/auth/login", handler.Login)
	router.POST("/auth/logout", handler.Logout)
	router.GET("/auth/session", handler.Session)
	return router, store
}

func postJSON(router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestAuthEndpoints(t *testing.T) {
	t.Run("login succeeds with company credentials", func(t *testing.T) {
		auth := &stubAuth{}
		router, _ := newAuthRouter(t, auth)

		w := postJSON(router, "/auth/login", `{"email": "ops@zemuria.com", "password": "correct-horse"}`)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 1, auth.calls)

		var body response.SuccessResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		data := body.Data.(map[string]interface{})
		assert.Equal(t, "ops@zemuria.com", data["email"])
	})

	t.Run("login rejects outside domains locally", func(t *testing.T) {
		auth := &stubAuth{}
		router, _ := newAuthRouter(t, auth)

		w := postJSON(router, "/auth/login", `{"email": "ops@gmail.com", "password": "correct-horse"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Zero(t, auth.calls)
	})

	t.Run("login surfaces upstream rejection as 401", func(t *testing.T) {
		auth := &stubAuth{err: domainErrors.ErrInvalidCredentials}
		router, _ := newAuthRouter(t, auth)

		w := postJSON(router, "/auth/login", `{"email": "ops@zemuria.com", "password": "correct-horse"}`)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("login requires both fields", func(t *testing.T) {
		auth := &stubAuth{}
		router, _ := newAuthRouter(t, auth)

		w := postJSON(router, "/auth/login", `{"email": "ops@zemuria.com"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Zero(t, auth.calls)
	})

	t.Run("logout drops the session", func(t *testing.T) {
		router, store := newAuthRouter(t, &stubAuth{})
		require.NoError(t, store.Set("tok"))

		w := postJSON(router, "/auth/logout", "")
		assert.Equal(t, http.StatusNoContent, w.Code)

		_, ok := store.Token()
		assert.False(t, ok)
	})

	t.Run("session reports authentication state", func(t *testing.T) {
		router, store := newAuthRouter(t, &stubAuth{})

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/auth/session", nil))
		assert.Contains(t, w.Body.String(), `"authenticated":false`)

		require.NoError(t, store.Set("tok"))
		w = httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/auth/session", nil))
		assert.Contains(t, w.Body.String(), `"authenticated":true`)
	})
}
