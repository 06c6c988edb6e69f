package dto

import (
	"github.com/zemuria/ops-console/internal/domain/entity"
)

// LoginRequest carries staff credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse confirms a session was established
type LoginResponse struct {
	Email string `json:"email"`
}

// ChartSeries is a label-aligned series for a single chart
type ChartSeries struct {
	Labels []string `json:"labels"`
	Values []int    `json:"values"`
}

// SalesTrendView carries the dual-currency sales chart
type SalesTrendView struct {
	Dates     []string `json:"dates"`
	INRValues []string `json:"inr_values"`
	USDValues []string `json:"usd_values"`
}

// OverviewView is the landing dashboard: engagement numbers plus the
// sales and streak charts.
type OverviewView struct {
	DailyActiveUsers  int            `json:"daily_active_users"`
	WeeklyActiveUsers int            `json:"weekly_active_users"`
	Stickiness        float64        `json:"stickiness"`
	SalesTrend        SalesTrendView `json:"sales_trend"`
	StreakSplit       ChartSeries    `json:"streak_split"`
	FailedSources     []string       `json:"failed_sources"`
}

// CurrencyTotalView is one currency's reconciled gross
type CurrencyTotalView struct {
	Currency string `json:"currency"`
	Gross    string `json:"gross"`
}

// GatewayTotalView is one gateway's reconciled gross
type GatewayTotalView struct {
	Gateway string `json:"gateway"`
	Gross   string `json:"gross"`
}

// GatewayCardView is one headline card on the financials page. The app
// stores card folds Apple and Google together per currency.
type GatewayCardView struct {
	Name     string `json:"name"`
	Currency string `json:"currency"`
	Gross    string `json:"gross"`
}

// FinancialsView is the revenue dashboard for one reporting window. Both
// breakdowns are dense: every known gateway and currency appears even
// when its gross is zero, and both sum to the same grand total.
type FinancialsView struct {
	Period        string              `json:"period"`
	Cards         []GatewayCardView   `json:"cards"`
	ByCurrency    []CurrencyTotalView `json:"by_currency"`
	ByGateway     []GatewayTotalView  `json:"by_gateway"`
	GrandTotal    string              `json:"grand_total"`
	FailedSources []string            `json:"failed_sources"`
}

// FeatureRankView is one row of the popular-features ranking
type FeatureRankView struct {
	Feature     string `json:"feature"`
	UniqueUsers int    `json:"unique_users"`
}

// TimezoneView carries the timezone histogram plus the headline zone
type TimezoneView struct {
	Buckets []entity.SegmentBucket `json:"buckets"`
	Top     string                 `json:"top"`
}

// UserAnalyticsView groups the user-segmentation panels
type UserAnalyticsView struct {
	FeatureRanking []FeatureRankView      `json:"feature_ranking"`
	Timezones      TimezoneView           `json:"timezones"`
	TopUsers       []entity.VIPUser       `json:"top_users"`
	ToolCallers    ChartSeries            `json:"tool_callers"`
	ChurnRisk      []entity.ChurnCandidate `json:"churn_risk"`
	FailedSources  []string               `json:"failed_sources"`
}

// StorageView is the storage footprint panel
type StorageView struct {
	TotalGB   float64 `json:"total_storage_gb"`
	ActiveGB  float64 `json:"active_storage_gb"`
	DeletedGB float64 `json:"deleted_storage_gb"`
	Objects   int64   `json:"object_count"`
}

// SystemInfraView groups the infrastructure panels
type SystemInfraView struct {
	Storage       StorageView `json:"storage"`
	DeviceSplit   ChartSeries `json:"device_split"`
	Retention     ChartSeries `json:"retention"`
	FailedSources []string    `json:"failed_sources"`
}

// OptionView is one entry of a select-input option set
type OptionView struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// AdminLogView is one audit-log row
type AdminLogView struct {
	Timestamp  string `json:"timestamp"`
	Actor      string `json:"actor"`
	Action     string `json:"action"`
	TargetUser string `json:"target_user"`
}

// OperationsView is the manual-override workbench: the option sets for
// the form, a fresh draft, and the recent audit trail.
type OperationsView struct {
	Users         []OptionView            `json:"users"`
	Plans         []OptionView            `json:"plans"`
	Draft         *entity.OverrideRequest `json:"draft"`
	AdminLogs     []AdminLogView          `json:"admin_logs"`
	FailedSources []string                `json:"failed_sources"`
}

// OverrideResult reports the outcome of an override submission
type OverrideResult struct {
	TransactionID string `json:"transaction_id"`
	Message       string `json:"message"`
}
