package service

import (
	"strings"

	"github.com/shopspring/decimal"
	"github.com/zemuria/ops-console/internal/domain/entity"
	"github.com/zemuria/ops-console/internal/domain/valueobject"
)

// RevenueReconciler merges the backend's gateway-keyed, currency-keyed
// revenue arrays into per-currency and per-gateway totals that are safe to
// render without presence checks.
type RevenueReconciler struct{}

// NewRevenueReconciler creates a new revenue reconciler
func NewRevenueReconciler() *RevenueReconciler {
	return &RevenueReconciler{}
}

// Reconcile folds every entry of the raw mapping into a fresh aggregate.
// The invariant: the sum of per-gateway totals, the sum of per-currency
// totals and the sum of all raw gross values are the same number. Entries
// with currencies or gateways outside the known sets still count on both
// sides, so the invariant holds for arbitrary input.
func (r *RevenueReconciler) Reconcile(rev entity.GatewayRevenue, period valueobject.Period) *entity.RevenueAggregate {
	agg := entity.NewRevenueAggregate(period)

	for gateway, entries := range rev {
		for _, e := range entries {
			currency := valueobject.Currency(strings.ToUpper(strings.TrimSpace(e.Currency)))
			agg.ByCurrency[currency] = agg.ByCurrency[currency].Add(e.Gross)
			agg.ByGateway[gateway] = agg.ByGateway[gateway].Add(e.Gross)
		}
	}

	return agg
}

// GatewayGross sums one gateway's gross volume, optionally filtered to a
// single currency. The currency compare is case-insensitive because source
// codes are not consistently cased. An empty filter sums all currencies; a
// gateway with no entries reports zero.
func (r *RevenueReconciler) GatewayGross(rev entity.GatewayRevenue, gateway valueobject.Gateway, currency string) decimal.Decimal {
	total := decimal.Zero
	filter := strings.ToUpper(strings.TrimSpace(currency))

	for _, e := range rev[gateway] {
		if filter != "" && strings.ToUpper(strings.TrimSpace(e.Currency)) != filter {
			continue
		}
		total = total.Add(e.Gross)
	}

	return total
}

// Stickiness returns the DAU/WAU ratio as a percentage. A zero denominator
// yields a defined zero, not an error.
func (r *RevenueReconciler) Stickiness(dau, wau int) float64 {
	if wau <= 0 {
		return 0
	}
	return float64(dau) / float64(wau) * 100
}
