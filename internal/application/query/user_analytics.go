package query

import (
	"context"

	"github.com/samber/lo"

	"github.com/zemuria/ops-console/internal/application/dto"
	"github.com/zemuria/ops-console/internal/domain/entity"
	"github.com/zemuria/ops-console/internal/domain/service"
	"github.com/zemuria/ops-console/internal/infrastructure/external/engine"
)

// SegmentationSource is the slice of the backend the user-analytics page reads
type SegmentationSource interface {
	FeatureRanking(ctx context.Context) ([]engine.FeatureUsage, error)
	TimezoneSplit(ctx context.Context) (*engine.TimezoneSplit, error)
	TopUsers(ctx context.Context) ([]entity.VIPUser, error)
	ToolCallerBuckets(ctx context.Context) (*engine.LabelsCounts, error)
	ChurnRisk(ctx context.Context) ([]entity.ChurnCandidate, error)
}

// GetUserAnalyticsQuery assembles the user-segmentation dashboard
type GetUserAnalyticsQuery struct {
	source       SegmentationSource
	segmentation *service.SegmentationService
}

// NewGetUserAnalyticsQuery creates a new user analytics query
func NewGetUserAnalyticsQuery(source SegmentationSource, segmentation *service.SegmentationService) *GetUserAnalyticsQuery {
	return &GetUserAnalyticsQuery{
		source:       source,
		segmentation: segmentation,
	}
}

// Execute fetches the five segmentation panels concurrently, defaulting each
// one independently on failure.
func (q *GetUserAnalyticsQuery) Execute(ctx context.Context) (*dto.UserAnalyticsView, error) {
	view := &dto.UserAnalyticsView{
		FeatureRanking: []dto.FeatureRankView{},
		Timezones:      dto.TimezoneView{Buckets: []entity.SegmentBucket{}},
		TopUsers:       []entity.VIPUser{},
		ToolCallers:    dto.ChartSeries{Labels: []string{}, Values: []int{}},
		ChurnRisk:      []entity.ChurnCandidate{},
	}

	var f fanout

	f.run("feature_ranking", func() error {
		ranking, err := q.source.FeatureRanking(ctx)
		if err != nil {
			return err
		}
		view.FeatureRanking = lo.Map(ranking, func(r engine.FeatureUsage, _ int) dto.FeatureRankView {
			return dto.FeatureRankView{Feature: r.FeatureName, UniqueUsers: r.UniqueUsers}
		})
		return nil
	})

	f.run("timezones", func() error {
		split, err := q.source.TimezoneSplit(ctx)
		if err != nil {
			return err
		}
		view.Timezones = dto.TimezoneView{
			Buckets: q.segmentation.TimezoneHistogram(split.Buckets),
			Top:     split.Top,
		}
		return nil
	})

	f.run("top_users", func() error {
		users, err := q.source.TopUsers(ctx)
		if err != nil {
			return err
		}
		view.TopUsers = users
		return nil
	})

	f.run("tool_callers", func() error {
		buckets, err := q.source.ToolCallerBuckets(ctx)
		if err != nil {
			return err
		}
		labels, values := series(buckets.Labels, buckets.Counts)
		view.ToolCallers = dto.ChartSeries{Labels: labels, Values: values}
		return nil
	})

	f.run("churn_risk", func() error {
		candidates, err := q.source.ChurnRisk(ctx)
		if err != nil {
			return err
		}
		view.ChurnRisk = q.segmentation.ChurnCandidates(candidates)
		return nil
	})

	view.FailedSources = f.wait()
	return view, nil
}
