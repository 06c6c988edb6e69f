package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/zemuria/ops-console/internal/application/command"
	"github.com/zemuria/ops-console/internal/application/dto"
	"github.com/zemuria/ops-console/internal/infrastructure/session"
	"github.com/zemuria/ops-console/internal/interfaces/http/response"
)

// AuthHandler handles the staff session endpoints
type AuthHandler struct {
	loginCmd *command.LoginCommand
	sessions *session.Store
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(loginCmd *command.LoginCommand, sessions *session.Store) *AuthHandler {
	return &AuthHandler{
		loginCmd: loginCmd,
		sessions: sessions,
	}
}

// Login establishes the console's staff session
// @Summary Sign in with staff credentials
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Staff credentials"
// @Success 200 {object} response.SuccessResponse{data=dto.LoginResponse}
// @Failure 400 {object} response.ErrorResponse
// @Failure 401 {object} response.ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	resp, err := h.loginCmd.Execute(c.Request.Context(), &req)
	if err != nil {
		writeError(c, err)
		return
	}

	response.OK(c, resp)
}

// Logout drops the staff session
// @Summary Sign out
// @Tags auth
// @Produce json
// @Success 204
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	h.sessions.Clear()
	response.NoContent(c)
}

// Session reports whether a staff session is currently held
// @Summary Check session state
// @Tags auth
// @Produce json
// @Success 200 {object} response.SuccessResponse
// @Router /auth/session [get]
func (h *AuthHandler) Session(c *gin.Context) {
	_, ok := h.sessions.Token()
	response.OK(c, gin.H{"authenticated": ok})
}
