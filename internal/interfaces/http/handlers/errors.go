package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/zemuria/ops-console/internal/domain/errors"
	"github.com/zemuria/ops-console/internal/infrastructure/external/engine"
	"github.com/zemuria/ops-console/internal/interfaces/http/response"
)

// writeError maps application failures onto the response envelope
func writeError(c *gin.Context, err error) {
	var vErr *domainErrors.ValidationError
	if errors.As(err, &vErr) {
		response.BadRequest(c, vErr.Error())
		return
	}

	switch {
	case errors.Is(err, domainErrors.ErrSessionExpired):
		response.SessionExpired(c, "Your session has expired. Please sign in again.")
	case errors.Is(err, domainErrors.ErrSessionRequired):
		response.Unauthorized(c, "Sign in to use the console")
	case errors.Is(err, domainErrors.ErrInvalidCredentials):
		response.Unauthorized(c, engine.ServerMessage(err))
	case errors.Is(err, domainErrors.ErrSubmissionInFlight):
		response.Conflict(c, "A submission is already in progress")
	case errors.Is(err, domainErrors.ErrUpstreamUnavailable),
		errors.Is(err, domainErrors.ErrMalformedPayload):
		response.BadGateway(c, engine.ServerMessage(err))
	default:
		var upstream *domainErrors.UpstreamError
		if errors.As(err, &upstream) {
			switch {
			case upstream.IsUnauthorized():
				response.SessionExpired(c, "Your session has expired. Please sign in again.")
			case upstream.Status == http.StatusBadRequest:
				// The backend rejected the request itself; surface its
				// message verbatim rather than blaming the upstream link
				response.BadRequest(c, engine.ServerMessage(err))
			default:
				response.BadGateway(c, engine.ServerMessage(err))
			}
			return
		}
		response.InternalError(c, err.Error())
	}
}
