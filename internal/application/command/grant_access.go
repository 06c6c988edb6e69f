package command

import (
	"context"
	"sync"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/zemuria/ops-console/internal/application/dto"
	"github.com/zemuria/ops-console/internal/domain/entity"
	domainErrors "github.com/zemuria/ops-console/internal/domain/errors"
	"github.com/zemuria/ops-console/internal/domain/valueobject"
	"github.com/zemuria/ops-console/internal/infrastructure/cache"
)

// SubmissionState tracks where an override attempt is in its lifecycle
type SubmissionState string

const (
	StateIdle       SubmissionState = "idle"
	StateSubmitting SubmissionState = "submitting"
	StateSucceeded  SubmissionState = "succeeded"
	StateFailed     SubmissionState = "failed"
)

// OverrideSubmitter is the backend slice the workflow writes through
type OverrideSubmitter interface {
	AddUserAccess(ctx context.Context, req *entity.OverrideRequest) error
	GrantCombinedAccess(ctx context.Context, req *entity.OverrideRequest) error
}

// GrantAccessCommand drives the manual-override workflow. Validation happens
// before anything touches the network, at most one submission is in flight
// at a time, and each attempt is sent under a freshly minted transaction id
// so a retried grant can never collide with an earlier one upstream.
type GrantAccessCommand struct {
	backend  OverrideSubmitter
	listings *cache.ListingCache
	validate *validator.Validate
	logger   *zap.Logger

	mu        sync.Mutex
	state     SubmissionState
	lastError string
}

// NewGrantAccessCommand creates a new grant access command
func NewGrantAccessCommand(backend OverrideSubmitter, listings *cache.ListingCache, logger *zap.Logger) *GrantAccessCommand {
	return &GrantAccessCommand{
		backend:  backend,
		listings: listings,
		validate: validator.New(),
		logger:   logger,
		state:    StateIdle,
	}
}

// State reports the current submission state and the last failure message
func (c *GrantAccessCommand) State() (SubmissionState, string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state, c.lastError
}

// Execute validates and submits one override. With combined set, the grant
// also unlocks the bundled product tier.
func (c *GrantAccessCommand) Execute(ctx context.Context, req *entity.OverrideRequest, combined bool) (*dto.OverrideResult, error) {
	if err := c.begin(); err != nil {
		return nil, err
	}

	if err := c.validateRequest(req); err != nil {
		c.finish(StateFailed, err.Error())
		return nil, err
	}

	// Fresh idempotency key per attempt, whatever the form carried
	req.TransactionID = entity.NewManualTransactionID()

	submit := c.backend.AddUserAccess
	action := "user_add"
	if combined {
		submit = c.backend.GrantCombinedAccess
		action = "combined_access"
	}

	if err := submit(ctx, req); err != nil {
		c.logger.Warn("Override submission failed",
			zap.String("action", action),
			zap.String("user", req.User),
			zap.String("transaction_id", req.TransactionID),
			zap.Error(err),
		)
		c.finish(StateFailed, err.Error())
		return nil, err
	}

	// The listings are stale the moment the grant lands
	c.listings.Invalidate()

	c.logger.Info("Override committed",
		zap.String("action", action),
		zap.String("user", req.User),
		zap.String("plan", req.Plan),
		zap.String("transaction_id", req.TransactionID),
	)
	c.finish(StateSucceeded, "")

	return &dto.OverrideResult{
		TransactionID: req.TransactionID,
		Message:       "access granted",
	}, nil
}

// begin claims the single submission slot
func (c *GrantAccessCommand) begin() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == StateSubmitting {
		return domainErrors.ErrSubmissionInFlight
	}
	c.state = StateSubmitting
	c.lastError = ""
	return nil
}

func (c *GrantAccessCommand) finish(state SubmissionState, message string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = state
	c.lastError = message
}

func (c *GrantAccessCommand) validateRequest(req *entity.OverrideRequest) error {
	if err := c.validate.Struct(req); err != nil {
		if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
			field := errs[0].Field()
			return domainErrors.NewValidationError(field, "required")
		}
		return err
	}

	if !valueobject.Gateway(req.Gateway).IsValid() {
		return &domainErrors.ValidationError{Field: "gateway", Err: domainErrors.ErrInvalidGateway}
	}
	if !valueobject.Currency(req.Currency).IsValid() {
		return &domainErrors.ValidationError{Field: "currency", Err: domainErrors.ErrInvalidCurrency}
	}
	if req.TotalAmount.IsNegative() || req.TaxAmount.IsNegative() {
		return &domainErrors.ValidationError{Field: "total_amount", Err: domainErrors.ErrNegativeAmount}
	}

	start, err := entity.ParseOverrideDate(req.StartDate)
	if err != nil {
		return &domainErrors.ValidationError{Field: "start_date", Err: err}
	}
	end, err := entity.ParseOverrideDate(req.EndDate)
	if err != nil {
		return &domainErrors.ValidationError{Field: "end_date", Err: err}
	}
	if !start.Before(end) {
		return &domainErrors.ValidationError{Field: "end_date", Err: domainErrors.ErrInvalidDateRange}
	}
	return nil
}
