package query

import (
	"context"
	"sort"

	"github.com/zemuria/ops-console/internal/application/dto"
	"github.com/zemuria/ops-console/internal/domain/entity"
	"github.com/zemuria/ops-console/internal/domain/service"
	"github.com/zemuria/ops-console/internal/domain/valueobject"
)

// RevenueSource is the slice of the backend the financials page reads
type RevenueSource interface {
	Revenue(ctx context.Context, period valueobject.Period) (entity.GatewayRevenue, error)
}

// GetFinancialsQuery assembles the reconciled revenue dashboard
type GetFinancialsQuery struct {
	source     RevenueSource
	reconciler *service.RevenueReconciler
}

// NewGetFinancialsQuery creates a new financials query
func NewGetFinancialsQuery(source RevenueSource, reconciler *service.RevenueReconciler) *GetFinancialsQuery {
	return &GetFinancialsQuery{
		source:     source,
		reconciler: reconciler,
	}
}

// Execute fetches one reporting window and reconciles it into dense
// per-currency and per-gateway breakdowns. When the fetch fails the page
// still renders, all zeros, with the source flagged.
func (q *GetFinancialsQuery) Execute(ctx context.Context, period valueobject.Period) (*dto.FinancialsView, error) {
	failed := []string{}

	rev, err := q.source.Revenue(ctx, period)
	if err != nil {
		failed = append(failed, "revenue")
		rev = entity.GatewayRevenue{}
	}

	agg := q.reconciler.Reconcile(rev, period)

	view := &dto.FinancialsView{
		Period:        period.String(),
		Cards:         q.gatewayCards(rev),
		ByCurrency:    currencyRows(agg),
		ByGateway:     gatewayRows(agg),
		GrandTotal:    agg.Total().StringFixed(2),
		FailedSources: failed,
	}
	return view, nil
}

// gatewayCards builds the headline cards: Stripe settles in USD, Razorpay
// in INR, and the two app stores are folded into one card per currency.
func (q *GetFinancialsQuery) gatewayCards(rev entity.GatewayRevenue) []dto.GatewayCardView {
	appStores := func(currency string) string {
		apple := q.reconciler.GatewayGross(rev, valueobject.GatewayApple, currency)
		google := q.reconciler.GatewayGross(rev, valueobject.GatewayGoogle, currency)
		return apple.Add(google).StringFixed(2)
	}

	return []dto.GatewayCardView{
		{
			Name:     "Stripe",
			Currency: valueobject.CurrencyUSD.String(),
			Gross:    q.reconciler.GatewayGross(rev, valueobject.GatewayStripe, "USD").StringFixed(2),
		},
		{
			Name:     "Razorpay",
			Currency: valueobject.CurrencyINR.String(),
			Gross:    q.reconciler.GatewayGross(rev, valueobject.GatewayRazorpay, "INR").StringFixed(2),
		},
		{
			Name:     "App Stores",
			Currency: valueobject.CurrencyUSD.String(),
			Gross:    appStores("USD"),
		},
		{
			Name:     "App Stores",
			Currency: valueobject.CurrencyINR.String(),
			Gross:    appStores("INR"),
		},
	}
}

// currencyRows lists the known currencies in canonical order, then any
// unexpected codes the backend reported, sorted for stable rendering.
func currencyRows(agg *entity.RevenueAggregate) []dto.CurrencyTotalView {
	known := valueobject.AllCurrencies()
	seen := make(map[valueobject.Currency]bool, len(known))
	rows := make([]dto.CurrencyTotalView, 0, len(agg.ByCurrency))

	for _, c := range known {
		seen[c] = true
		rows = append(rows, dto.CurrencyTotalView{
			Currency: c.String(),
			Gross:    agg.CurrencyTotal(c).StringFixed(2),
		})
	}

	extras := make([]valueobject.Currency, 0)
	for c := range agg.ByCurrency {
		if !seen[c] {
			extras = append(extras, c)
		}
	}
	sort.Slice(extras, func(i, j int) bool { return extras[i] < extras[j] })
	for _, c := range extras {
		rows = append(rows, dto.CurrencyTotalView{
			Currency: c.String(),
			Gross:    agg.CurrencyTotal(c).StringFixed(2),
		})
	}
	return rows
}

func gatewayRows(agg *entity.RevenueAggregate) []dto.GatewayTotalView {
	known := valueobject.AllGateways()
	seen := make(map[valueobject.Gateway]bool, len(known))
	rows := make([]dto.GatewayTotalView, 0, len(agg.ByGateway))

	for _, g := range known {
		seen[g] = true
		rows = append(rows, dto.GatewayTotalView{
			Gateway: g.String(),
			Gross:   agg.GatewayTotal(g).StringFixed(2),
		})
	}

	extras := make([]valueobject.Gateway, 0)
	for g := range agg.ByGateway {
		if !seen[g] {
			extras = append(extras, g)
		}
	}
	sort.Slice(extras, func(i, j int) bool { return extras[i] < extras[j] })
	for _, g := range extras {
		rows = append(rows, dto.GatewayTotalView{
			Gateway: g.String(),
			Gross:   agg.GatewayTotal(g).StringFixed(2),
		})
	}
	return rows
}
