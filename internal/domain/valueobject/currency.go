package valueobject

import (
	"fmt"
	"strings"
)

// Currency is an ISO 4217 code for a currency the backend settles in
type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyINR Currency = "INR"
)

// AllCurrencies lists every settlement currency
func AllCurrencies() []Currency {
	return []Currency{CurrencyUSD, CurrencyINR}
}

// ParseCurrency parses a currency code. Source codes are not consistently
// cased, so the comparison happens after uppercasing.
func ParseCurrency(s string) (Currency, error) {
	c := Currency(strings.ToUpper(strings.TrimSpace(s)))
	if !c.IsValid() {
		return "", fmt.Errorf("invalid currency: %q", s)
	}
	return c, nil
}

// IsValid returns true if the currency is a known settlement currency
func (c Currency) IsValid() bool {
	switch c {
	case CurrencyUSD, CurrencyINR:
		return true
	}
	return false
}

// String returns the currency code
func (c Currency) String() string {
	return string(c)
}
