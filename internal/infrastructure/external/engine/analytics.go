package engine

import (
	"context"
	"net/url"
	"strings"

	"github.com/zemuria/ops-console/internal/domain/entity"
	"github.com/zemuria/ops-console/internal/domain/valueobject"
)

// ActiveUsersDaily returns the count of users active today
func (c *Client) ActiveUsersDaily(ctx context.Context) (int, error) {
	var resp dailyActiveResponse
	if err := c.get(ctx, "analytics/active-users/daily", nil, &resp); err != nil {
		return 0, err
	}
	return resp.DailyActiveUsers, nil
}

// ActiveUsersWeekly returns the count of users active in the last 7 days
func (c *Client) ActiveUsersWeekly(ctx context.Context) (int, error) {
	var resp weeklyActiveResponse
	if err := c.get(ctx, "analytics/active-users/weekly", nil, &resp); err != nil {
		return 0, err
	}
	return resp.WeeklyActiveUsersCount, nil
}

// Revenue fetches the gateway-keyed revenue mapping for a reporting window.
// The period is forwarded opaquely; the backend decides what the window
// means. Gateways absent from the response simply had no revenue.
func (c *Client) Revenue(ctx context.Context, period valueobject.Period) (entity.GatewayRevenue, error) {
	query := url.Values{}
	query.Set("period", period.String())

	var resp revenueResponse
	if err := c.get(ctx, "analytics/revenue", query, &resp); err != nil {
		return nil, err
	}

	rev := make(entity.GatewayRevenue, len(resp.Data))
	for name, entries := range resp.Data {
		gateway := valueobject.Gateway(strings.ToUpper(strings.TrimSpace(name)))
		mapped := make([]entity.RevenueEntry, 0, len(entries))
		for _, e := range entries {
			mapped = append(mapped, entity.RevenueEntry{
				Currency: e.Currency,
				Gross:    e.Metrics.Gross.Decimal,
			})
		}
		rev[gateway] = mapped
	}
	return rev, nil
}

// SalesTrendFor returns the revenue time series for a reporting window
func (c *Client) SalesTrendFor(ctx context.Context, period valueobject.Period) (*SalesTrend, error) {
	query := url.Values{}
	query.Set("period", period.String())

	var resp SalesTrend
	if err := c.get(ctx, "analytics/sales", query, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// StreakSplit returns the streak-based user composition buckets
func (c *Client) StreakSplit(ctx context.Context) (*LabelsCounts, error) {
	var resp LabelsCounts
	if err := c.get(ctx, "analytics/streak", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// FeatureRanking returns the feature adoption ranking
func (c *Client) FeatureRanking(ctx context.Context) ([]FeatureUsage, error) {
	var resp featureRankingResponse
	if err := c.get(ctx, "analytics/popular/feature", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Ranking, nil
}

// TimezoneSplit returns the per-timezone user histogram in source order
// plus the headline timezone
func (c *Client) TimezoneSplit(ctx context.Context) (*TimezoneSplit, error) {
	var resp timezoneResponse
	if err := c.get(ctx, "analytics/top-timezone", nil, &resp); err != nil {
		return nil, err
	}

	split := &TimezoneSplit{
		Buckets: make([]entity.SegmentBucket, 0, len(resp.AllTimezones)),
		Top:     resp.TimezoneWithMostUsers,
	}
	for _, tz := range resp.AllTimezones {
		split.Buckets = append(split.Buckets, entity.SegmentBucket{Label: tz.Timezone, Count: tz.UserCount})
	}
	return split, nil
}

// TopUsers returns the highest-engagement users
func (c *Client) TopUsers(ctx context.Context) ([]entity.VIPUser, error) {
	var resp []vipUserDTO
	if err := c.get(ctx, "analytics/top-users", nil, &resp); err != nil {
		return nil, err
	}

	users := make([]entity.VIPUser, 0, len(resp))
	for _, u := range resp {
		users = append(users, entity.VIPUser{
			UserEmail:      u.UserEmail,
			CurrentCredits: u.CurrentCredits,
			TotalUsage:     u.TotalUsage,
		})
	}
	return users, nil
}

// ToolCallerBuckets returns the usage-volume segmentation as parallel
// label/count sequences
func (c *Client) ToolCallerBuckets(ctx context.Context) (*LabelsCounts, error) {
	var resp labelsDataResponse
	if err := c.get(ctx, "analytics/top-tool-callers", nil, &resp); err != nil {
		return nil, err
	}
	return &LabelsCounts{Labels: resp.Labels, Counts: resp.Data}, nil
}

// ChurnRisk returns users at risk of churning. The inconsistent backend
// nesting is resolved at decode time; empty in any shape means no risk.
func (c *Client) ChurnRisk(ctx context.Context) ([]entity.ChurnCandidate, error) {
	var resp churnRiskResponse
	if err := c.get(ctx, "analytics/churn-risk", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Candidates, nil
}

// Storage returns the object-storage usage breakdown
func (c *Client) Storage(ctx context.Context) (*StorageStats, error) {
	var resp StorageStats
	if err := c.get(ctx, "analytics/storage", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// DeviceSplit returns the device-type segmentation
func (c *Client) DeviceSplit(ctx context.Context) (*LabelsCounts, error) {
	var resp labelsDataResponse
	if err := c.get(ctx, "analytics/device", nil, &resp); err != nil {
		return nil, err
	}
	return &LabelsCounts{Labels: resp.Labels, Counts: resp.Data}, nil
}

// Retention returns the auto-renew on/off split
func (c *Client) Retention(ctx context.Context) (*LabelsCounts, error) {
	var resp labelsDataResponse
	if err := c.get(ctx, "analytics/retention", nil, &resp); err != nil {
		return nil, err
	}
	return &LabelsCounts{Labels: resp.Labels, Counts: resp.Data}, nil
}
