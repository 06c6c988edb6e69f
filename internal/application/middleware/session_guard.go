package middleware

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/zemuria/ops-console/internal/infrastructure/logging"
	"github.com/zemuria/ops-console/internal/infrastructure/session"
	"github.com/zemuria/ops-console/internal/interfaces/http/response"
)

// SessionGuard gates the console routes on the process-wide staff session
type SessionGuard struct {
	sessions   *session.Store
	redirector *session.Redirector
	logger     *zap.Logger
}

// NewSessionGuard creates a new session guard
func NewSessionGuard(sessions *session.Store, redirector *session.Redirector) *SessionGuard {
	return &SessionGuard{
		sessions:   sessions,
		redirector: redirector,
		logger:     logging.Logger,
	}
}

// Require rejects requests arriving without an established session. The
// pending redirect, once set by an upstream 401, is consumed by exactly one
// rejection so the shell navigates to login a single time.
func (g *SessionGuard) Require() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := g.sessions.Token(); ok {
			c.Next()
			return
		}

		if g.redirector.Consume() {
			g.logger.Info("Session lapsed, redirecting to login",
				zap.String("path", c.Request.URL.Path))
			response.SessionExpired(c, "Your session has expired. Please sign in again.")
		} else {
			response.Unauthorized(c, "Sign in to use the console")
		}
		c.Abort()
	}
}
