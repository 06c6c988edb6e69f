package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/zemuria/ops-console/internal/domain/entity"
	"github.com/zemuria/ops-console/internal/domain/valueobject"
)

func gross(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

func TestRevenueReconciler(t *testing.T) {
	r := NewRevenueReconciler()

	t.Run("per-currency and per-gateway totals from mixed mapping", func(t *testing.T) {
		rev := entity.GatewayRevenue{
			valueobject.GatewayStripe:   {{Currency: "USD", Gross: gross("100")}},
			valueobject.GatewayRazorpay: {{Currency: "INR", Gross: gross("500")}},
		}

		agg := r.Reconcile(rev, valueobject.PeriodDaily)

		assert.True(t, agg.CurrencyTotal(valueobject.CurrencyUSD).Equal(gross("100")))
		assert.True(t, agg.CurrencyTotal(valueobject.CurrencyINR).Equal(gross("500")))
		assert.True(t, agg.GatewayTotal(valueobject.GatewayStripe).Equal(gross("100")))
		assert.True(t, agg.GatewayTotal(valueobject.GatewayRazorpay).Equal(gross("500")))
	})

	t.Run("sum invariant holds for arbitrary mapping", func(t *testing.T) {
		rev := entity.GatewayRevenue{
			valueobject.GatewayStripe: {
				{Currency: "USD", Gross: gross("19.99")},
				{Currency: "inr", Gross: gross("830.50")},
			},
			valueobject.GatewayGoogle: {
				{Currency: "usd", Gross: gross("4.01")},
			},
			valueobject.GatewayApple: {},
		}

		agg := r.Reconcile(rev, valueobject.PeriodTotal)

		raw := decimal.Zero
		for _, entries := range rev {
			for _, e := range entries {
				raw = raw.Add(e.Gross)
			}
		}

		byCurrency := decimal.Zero
		for _, v := range agg.ByCurrency {
			byCurrency = byCurrency.Add(v)
		}
		byGateway := decimal.Zero
		for _, v := range agg.ByGateway {
			byGateway = byGateway.Add(v)
		}

		assert.True(t, byCurrency.Equal(raw))
		assert.True(t, byGateway.Equal(raw))
		assert.True(t, agg.Total().Equal(raw))
	})

	t.Run("empty mapping reports dense zeros", func(t *testing.T) {
		agg := r.Reconcile(entity.GatewayRevenue{}, valueobject.PeriodWeekly)

		assert.True(t, agg.Total().IsZero())
		for _, g := range valueobject.AllGateways() {
			v, ok := agg.ByGateway[g]
			assert.True(t, ok, "gateway %s must be present", g)
			assert.True(t, v.IsZero())
		}
		for _, c := range valueobject.AllCurrencies() {
			v, ok := agg.ByCurrency[c]
			assert.True(t, ok, "currency %s must be present", c)
			assert.True(t, v.IsZero())
		}
	})

	t.Run("nil mapping behaves like empty", func(t *testing.T) {
		agg := r.Reconcile(nil, valueobject.PeriodMonthly)
		assert.True(t, agg.Total().IsZero())
	})

	t.Run("currency filter is case-insensitive", func(t *testing.T) {
		rev := entity.GatewayRevenue{
			valueobject.GatewayApple: {
				{Currency: "usd", Gross: gross("12")},
				{Currency: "INR", Gross: gross("700")},
			},
		}

		assert.True(t, r.GatewayGross(rev, valueobject.GatewayApple, "USD").Equal(gross("12")))
		assert.True(t, r.GatewayGross(rev, valueobject.GatewayApple, "inr").Equal(gross("700")))
		assert.True(t, r.GatewayGross(rev, valueobject.GatewayApple, "").Equal(gross("712")))
	})

	t.Run("absent gateway reports zero without presence check", func(t *testing.T) {
		assert.True(t, r.GatewayGross(entity.GatewayRevenue{}, valueobject.GatewayRazorpay, "INR").IsZero())
	})
}

func TestStickiness(t *testing.T) {
	r := NewRevenueReconciler()

	tests := []struct {
		name string
		dau  int
		wau  int
		want float64
	}{
		{"half of weekly actives", 50, 100, 50},
		{"zero denominator yields zero", 10, 0, 0},
		{"negative denominator yields zero", 10, -1, 0},
		{"full stickiness", 80, 80, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Stickiness(tt.dau, tt.wau))
		})
	}
}
