package engine

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/zemuria/ops-console/internal/domain/entity"
	domainErrors "github.com/zemuria/ops-console/internal/domain/errors"
)

// ========== AUTH ==========

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

// ========== ACTIVITY ==========

type dailyActiveResponse struct {
	DailyActiveUsers int `json:"daily_active_users"`
}

type weeklyActiveResponse struct {
	WeeklyActiveUsersCount int `json:"weekly_active_users_count"`
}

// ========== REVENUE ==========

// Amount decodes the backend's gross values tolerantly. They arrive as
// numbers, quoted numbers, or null depending on the gateway; anything
// unparseable counts as zero rather than failing the whole payload.
type Amount struct {
	decimal.Decimal
}

func (a *Amount) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "" || s == "null" {
		a.Decimal = decimal.Zero
		return nil
	}
	s = strings.Trim(s, `"`)
	d, err := decimal.NewFromString(s)
	if err != nil {
		a.Decimal = decimal.Zero
		return nil
	}
	a.Decimal = d
	return nil
}

type revenueMetrics struct {
	Gross Amount `json:"gross"`
}

type currencyEntry struct {
	Currency string         `json:"currency"`
	Metrics  revenueMetrics `json:"metrics"`
}

type revenueResponse struct {
	Data map[string][]currencyEntry `json:"data"`
}

// SalesTrend is the time-bucketed revenue series for the trend chart
type SalesTrend struct {
	Dates     []string  `json:"dates"`
	INRValues []float64 `json:"inr_values"`
	USDValues []float64 `json:"usd_values"`
}

// ========== SEGMENTATION ==========

// LabelsCounts is the parallel-sequence histogram shape several endpoints
// share (usage buckets, device split, retention, streaks)
type LabelsCounts struct {
	Labels []string `json:"labels"`
	Counts []int    `json:"counts"`
}

// the usage/device/retention endpoints name the counts field "data"
type labelsDataResponse struct {
	Labels []string `json:"labels"`
	Data   []int    `json:"data"`
}

type timezoneBucket struct {
	Timezone  string `json:"timezone"`
	UserCount int    `json:"user_count"`
}

type timezoneResponse struct {
	AllTimezones          []timezoneBucket `json:"all_timezones"`
	TimezoneWithMostUsers string           `json:"timezone_with_most_users"`
}

// TimezoneSplit carries the timezone histogram plus the headline timezone
type TimezoneSplit struct {
	Buckets []entity.SegmentBucket
	Top     string
}

// FeatureUsage is one row of the feature adoption ranking
type FeatureUsage struct {
	FeatureName string `json:"feature_name"`
	UniqueUsers int    `json:"unique_users"`
}

type featureRankingResponse struct {
	Ranking []FeatureUsage `json:"ranking"`
}

type vipUserDTO struct {
	UserEmail      string  `json:"user__email"`
	CurrentCredits float64 `json:"current_credits"`
	TotalUsage     int     `json:"total_usage"`
}

// ========== CHURN ==========

type churnCandidateDTO struct {
	UserEmail           string  `json:"user__email"`
	MaxStreak           int     `json:"max_streak"`
	LastInteractionDate *string `json:"last_interaction_date"`
}

func (d churnCandidateDTO) toEntity() entity.ChurnCandidate {
	c := entity.ChurnCandidate{
		UserEmail:  d.UserEmail,
		PeakStreak: d.MaxStreak,
	}
	if d.LastInteractionDate != nil {
		c.LastInteraction = *d.LastInteractionDate
	}
	return c
}

// churnRiskResponse decodes the churn-risk payload, which the backend
// returns either as a bare list of candidates or, inconsistently, as a
// one-element list wrapping that list. Exactly one level of wrapping is
// unwrapped; anything else is a decode error rather than a guess.
type churnRiskResponse struct {
	Candidates []entity.ChurnCandidate
}

func (r *churnRiskResponse) UnmarshalJSON(data []byte) error {
	var direct []churnCandidateDTO
	if err := json.Unmarshal(data, &direct); err == nil {
		r.Candidates = churnEntities(direct)
		return nil
	}

	var wrapped [][]churnCandidateDTO
	if err := json.Unmarshal(data, &wrapped); err == nil {
		switch len(wrapped) {
		case 0:
			r.Candidates = []entity.ChurnCandidate{}
			return nil
		case 1:
			r.Candidates = churnEntities(wrapped[0])
			return nil
		default:
			return fmt.Errorf("%w: churn-risk carried %d nested lists", domainErrors.ErrMalformedPayload, len(wrapped))
		}
	}

	return fmt.Errorf("%w: churn-risk is neither a candidate list nor a wrapped list", domainErrors.ErrMalformedPayload)
}

func churnEntities(dtos []churnCandidateDTO) []entity.ChurnCandidate {
	out := make([]entity.ChurnCandidate, 0, len(dtos))
	for _, d := range dtos {
		out = append(out, d.toEntity())
	}
	return out
}

// ========== INFRASTRUCTURE ==========

// StorageStats is the object-storage usage breakdown
type StorageStats struct {
	TotalStorageGB   float64 `json:"total_storage_gb"`
	ActiveStorageGB  float64 `json:"active_storage_gb"`
	DeletedStorageGB float64 `json:"deleted_storage_gb"`
	ObjectCount      int     `json:"object_count"`
}

// ========== ADMIN ==========

// Option is a value/label pair for the override form selects
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// AdminLogEntry is one recorded override action
type AdminLogEntry struct {
	Timestamp  string `json:"timestamp"`
	Actor      string `json:"actor"`
	Action     string `json:"action"`
	TargetUser string `json:"target_user"`
}

type messageResponse struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}
