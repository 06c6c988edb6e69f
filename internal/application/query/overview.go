package query

import (
	"context"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/zemuria/ops-console/internal/application/dto"
	"github.com/zemuria/ops-console/internal/domain/service"
	"github.com/zemuria/ops-console/internal/domain/valueobject"
	"github.com/zemuria/ops-console/internal/infrastructure/external/engine"
)

// EngagementSource is the slice of the backend the overview page reads
type EngagementSource interface {
	ActiveUsersDaily(ctx context.Context) (int, error)
	ActiveUsersWeekly(ctx context.Context) (int, error)
	SalesTrendFor(ctx context.Context, period valueobject.Period) (*engine.SalesTrend, error)
	StreakSplit(ctx context.Context) (*engine.LabelsCounts, error)
}

// GetOverviewQuery assembles the landing dashboard
type GetOverviewQuery struct {
	source     EngagementSource
	reconciler *service.RevenueReconciler
}

// NewGetOverviewQuery creates a new overview query
func NewGetOverviewQuery(source EngagementSource, reconciler *service.RevenueReconciler) *GetOverviewQuery {
	return &GetOverviewQuery{
		source:     source,
		reconciler: reconciler,
	}
}

// Execute fetches every overview member concurrently. Whatever fails is
// reported in FailedSources and rendered as its zero value.
func (q *GetOverviewQuery) Execute(ctx context.Context, period valueobject.Period) (*dto.OverviewView, error) {
	view := &dto.OverviewView{
		SalesTrend: dto.SalesTrendView{
			Dates:     []string{},
			INRValues: []string{},
			USDValues: []string{},
		},
		StreakSplit: dto.ChartSeries{Labels: []string{}, Values: []int{}},
	}

	var f fanout

	f.run("active_users_daily", func() error {
		dau, err := q.source.ActiveUsersDaily(ctx)
		if err != nil {
			return err
		}
		view.DailyActiveUsers = dau
		return nil
	})

	f.run("active_users_weekly", func() error {
		wau, err := q.source.ActiveUsersWeekly(ctx)
		if err != nil {
			return err
		}
		view.WeeklyActiveUsers = wau
		return nil
	})

	f.run("sales_trend", func() error {
		trend, err := q.source.SalesTrendFor(ctx, period)
		if err != nil {
			return err
		}
		view.SalesTrend = dto.SalesTrendView{
			Dates:     trend.Dates,
			INRValues: formatAmounts(trend.INRValues),
			USDValues: formatAmounts(trend.USDValues),
		}
		return nil
	})

	f.run("streak_split", func() error {
		split, err := q.source.StreakSplit(ctx)
		if err != nil {
			return err
		}
		labels, values := series(split.Labels, split.Counts)
		view.StreakSplit = dto.ChartSeries{Labels: labels, Values: values}
		return nil
	})

	view.FailedSources = f.wait()
	view.Stickiness = q.reconciler.Stickiness(view.DailyActiveUsers, view.WeeklyActiveUsers)
	return view, nil
}

func formatAmounts(values []float64) []string {
	return lo.Map(values, func(v float64, _ int) string {
		return decimal.NewFromFloat(v).StringFixed(2)
	})
}
