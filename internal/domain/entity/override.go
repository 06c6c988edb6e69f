package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	// OverrideStatusActive is the subscription status a manual grant creates
	OverrideStatusActive = "ACTIVE"
	// OverridePaymentSuccessful marks the synthetic payment as settled
	OverridePaymentSuccessful = "SUCCESSFUL"
	// ManualSubscriptionID marks grants that never touched a gateway
	ManualSubscriptionID = "MANUAL_BY_ADMIN"

	// OverrideDateLayout is the datetime-local format the form exchanges
	OverrideDateLayout = "2006-01-02T15:04"
)

// OverrideRequest is the write-side entity: one administrative override
// granting or modifying a user's subscription outside normal billing. The
// server treats the transaction id as an idempotency key, so a request is
// created fresh per submission attempt and never reused across attempts.
type OverrideRequest struct {
	User             string          `json:"user" validate:"required"`
	Plan             string          `json:"plan" validate:"required"`
	Gateway          string          `json:"gateway" validate:"required"`
	Currency         string          `json:"currency" validate:"required"`
	TransactionID    string          `json:"transaction_id" validate:"required"`
	PGSubscriptionID string          `json:"pg_subscription_id" validate:"required"`
	TotalAmount      decimal.Decimal `json:"total_amount"`
	TaxAmount        decimal.Decimal `json:"tax_amount"`
	StartDate        string          `json:"start_date" validate:"required"`
	EndDate          string          `json:"end_date" validate:"required"`
	AutoRenew        bool            `json:"auto_renew"`
	InEffect         bool            `json:"in_effect"`
	Status           string          `json:"status"`
	PaymentStatus    string          `json:"payment_status"`
}

// NewOverrideDraft creates a fresh override draft with the operational
// defaults: a 30-day window starting now and a newly generated manual
// transaction id.
func NewOverrideDraft() *OverrideRequest {
	now := time.Now().UTC()
	return &OverrideRequest{
		Gateway:          "STRIPE",
		Currency:         "USD",
		TransactionID:    NewManualTransactionID(),
		PGSubscriptionID: ManualSubscriptionID,
		TotalAmount:      decimal.Zero,
		TaxAmount:        decimal.Zero,
		StartDate:        now.Format(OverrideDateLayout),
		EndDate:          now.AddDate(0, 0, 30).Format(OverrideDateLayout),
		AutoRenew:        false,
		InEffect:         true,
		Status:           OverrideStatusActive,
		PaymentStatus:    OverridePaymentSuccessful,
	}
}

// NewManualTransactionID generates a MAN- prefixed transaction id unique
// per submission attempt
func NewManualTransactionID() string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", ""))
	return "MAN-" + suffix[:8]
}

// ParseOverrideDate parses a form timestamp, accepting the datetime-local
// layout the form uses as well as full RFC 3339
func ParseOverrideDate(s string) (time.Time, error) {
	if t, err := time.Parse(OverrideDateLayout, s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}
