package engine

import (
	"context"
	"fmt"

	"github.com/zemuria/ops-console/internal/domain/entity"
	domainErrors "github.com/zemuria/ops-console/internal/domain/errors"
)

// UserOptions returns the selectable users for the override form
func (c *Client) UserOptions(ctx context.Context) ([]Option, error) {
	var resp []Option
	if err := c.get(ctx, "analytics/options/users", nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// PlanOptions returns the selectable plans for the override form
func (c *Client) PlanOptions(ctx context.Context) ([]Option, error) {
	var resp []Option
	if err := c.get(ctx, "analytics/options/plans", nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// AdminLogs returns the recent override actions
func (c *Client) AdminLogs(ctx context.Context) ([]AdminLogEntry, error) {
	var resp []AdminLogEntry
	if err := c.get(ctx, "analytics/admin/logs", nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// AddUserAccess submits a simple user/plan grant. Server-side this writes
// the billing record and grants the plan as one unit; any non-success
// response means nothing was committed.
func (c *Client) AddUserAccess(ctx context.Context, req *entity.OverrideRequest) error {
	return c.submitOverride(ctx, "analytics/admin/user_add", req)
}

// GrantCombinedAccess submits the full manual override: billing record,
// plan grant and credit sync are one atomic unit on the server.
func (c *Client) GrantCombinedAccess(ctx context.Context, req *entity.OverrideRequest) error {
	return c.submitOverride(ctx, "analytics/combined-access", req)
}

func (c *Client) submitOverride(ctx context.Context, path string, req *entity.OverrideRequest) error {
	var resp messageResponse
	if err := c.post(ctx, path, req, &resp); err != nil {
		return err
	}
	// Some backend failures still answer 200 with an error field
	if resp.Error != "" {
		return fmt.Errorf("%w: %s", domainErrors.ErrNothingCommitted, resp.Error)
	}
	return nil
}
