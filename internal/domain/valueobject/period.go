package valueobject

import "fmt"

// Period is a reporting window. It is forwarded to the backend as an opaque
// query parameter; the console never interprets it.
type Period string

const (
	PeriodDaily   Period = "daily"
	PeriodWeekly  Period = "weekly"
	PeriodMonthly Period = "monthly"
	PeriodTotal   Period = "total"
)

// ParsePeriod parses a reporting period
func ParsePeriod(s string) (Period, error) {
	p := Period(s)
	if !p.IsValid() {
		return "", fmt.Errorf("invalid period: %q", s)
	}
	return p, nil
}

// IsValid returns true if the period is a window the backend understands
func (p Period) IsValid() bool {
	switch p {
	case PeriodDaily, PeriodWeekly, PeriodMonthly, PeriodTotal:
		return true
	}
	return false
}

// String returns the period name
func (p Period) String() string {
	return string(p)
}
