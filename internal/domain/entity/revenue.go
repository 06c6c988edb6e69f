package entity

import (
	"github.com/shopspring/decimal"
	"github.com/zemuria/ops-console/internal/domain/valueobject"
)

// RevenueEntry is one gateway's gross volume in one currency for the
// requested reporting window. The currency code is kept as received because
// the source does not case it consistently.
type RevenueEntry struct {
	Currency string
	Gross    decimal.Decimal
}

// GatewayRevenue is the raw gateway-keyed revenue mapping as the backend
// reports it. A gateway absent from the map had no revenue in any currency.
type GatewayRevenue map[valueobject.Gateway][]RevenueEntry

// RevenueAggregate is the reconciled, render-safe view of a revenue window.
// Both maps are dense: every known gateway and currency is present, holding
// zero when nothing was observed, so callers never need a presence check.
// It is recomputed from scratch on every fetch, never mutated incrementally.
type RevenueAggregate struct {
	Period     valueobject.Period
	ByCurrency map[valueobject.Currency]decimal.Decimal
	ByGateway  map[valueobject.Gateway]decimal.Decimal
}

// NewRevenueAggregate creates an all-zero aggregate for a reporting window
func NewRevenueAggregate(period valueobject.Period) *RevenueAggregate {
	agg := &RevenueAggregate{
		Period:     period,
		ByCurrency: make(map[valueobject.Currency]decimal.Decimal, len(valueobject.AllCurrencies())),
		ByGateway:  make(map[valueobject.Gateway]decimal.Decimal, len(valueobject.AllGateways())),
	}
	for _, c := range valueobject.AllCurrencies() {
		agg.ByCurrency[c] = decimal.Zero
	}
	for _, g := range valueobject.AllGateways() {
		agg.ByGateway[g] = decimal.Zero
	}
	return agg
}

// Total returns the summed gross across all currencies
func (a *RevenueAggregate) Total() decimal.Decimal {
	total := decimal.Zero
	for _, v := range a.ByCurrency {
		total = total.Add(v)
	}
	return total
}

// CurrencyTotal returns the summed gross for one currency, zero if unseen
func (a *RevenueAggregate) CurrencyTotal(c valueobject.Currency) decimal.Decimal {
	return a.ByCurrency[c]
}

// GatewayTotal returns the summed gross for one gateway, zero if unseen
func (a *RevenueAggregate) GatewayTotal(g valueobject.Gateway) decimal.Decimal {
	return a.ByGateway[g]
}
