package command

import (
	"context"

	"go.uber.org/zap"

	"github.com/zemuria/ops-console/internal/application/dto"
	domainErrors "github.com/zemuria/ops-console/internal/domain/errors"
	"github.com/zemuria/ops-console/internal/domain/valueobject"
)

const minPasswordLength = 4

// Authenticator exchanges staff credentials for a session
type Authenticator interface {
	Login(ctx context.Context, email, password string) error
}

// LoginCommand establishes the console's staff session
type LoginCommand struct {
	auth   Authenticator
	logger *zap.Logger
}

// NewLoginCommand creates a new login command
func NewLoginCommand(auth Authenticator, logger *zap.Logger) *LoginCommand {
	return &LoginCommand{
		auth:   auth,
		logger: logger,
	}
}

// Execute validates the credentials locally, then exchanges them upstream.
// Obviously bad input never leaves the process.
func (c *LoginCommand) Execute(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	email, err := valueobject.NewStaffEmail(req.Email)
	if err != nil {
		return nil, &domainErrors.ValidationError{Field: "email", Err: err}
	}
	if len(req.Password) < minPasswordLength {
		return nil, domainErrors.NewValidationError("password", "password is too short")
	}

	if err := c.auth.Login(ctx, email.String(), req.Password); err != nil {
		c.logger.Warn("Login rejected upstream", zap.String("email", email.String()), zap.Error(err))
		return nil, err
	}

	c.logger.Info("Staff session established", zap.String("email", email.String()))
	return &dto.LoginResponse{Email: email.String()}, nil
}
