package query

import (
	"context"

	"github.com/zemuria/ops-console/internal/application/dto"
	"github.com/zemuria/ops-console/internal/infrastructure/external/engine"
)

// InfraSource is the slice of the backend the system-infra page reads
type InfraSource interface {
	Storage(ctx context.Context) (*engine.StorageStats, error)
	DeviceSplit(ctx context.Context) (*engine.LabelsCounts, error)
	Retention(ctx context.Context) (*engine.LabelsCounts, error)
}

// GetSystemInfraQuery assembles the infrastructure dashboard
type GetSystemInfraQuery struct {
	source InfraSource
}

// NewGetSystemInfraQuery creates a new system infra query
func NewGetSystemInfraQuery(source InfraSource) *GetSystemInfraQuery {
	return &GetSystemInfraQuery{source: source}
}

// Execute fetches the three infrastructure panels concurrently
func (q *GetSystemInfraQuery) Execute(ctx context.Context) (*dto.SystemInfraView, error) {
	view := &dto.SystemInfraView{
		DeviceSplit: dto.ChartSeries{Labels: []string{}, Values: []int{}},
		Retention:   dto.ChartSeries{Labels: []string{}, Values: []int{}},
	}

	var f fanout

	f.run("storage", func() error {
		stats, err := q.source.Storage(ctx)
		if err != nil {
			return err
		}
		view.Storage = dto.StorageView{
			TotalGB:   stats.TotalStorageGB,
			ActiveGB:  stats.ActiveStorageGB,
			DeletedGB: stats.DeletedStorageGB,
			Objects:   int64(stats.ObjectCount),
		}
		return nil
	})

	f.run("device_split", func() error {
		split, err := q.source.DeviceSplit(ctx)
		if err != nil {
			return err
		}
		labels, values := series(split.Labels, split.Counts)
		view.DeviceSplit = dto.ChartSeries{Labels: labels, Values: values}
		return nil
	})

	f.run("retention", func() error {
		retention, err := q.source.Retention(ctx)
		if err != nil {
			return err
		}
		labels, values := series(retention.Labels, retention.Counts)
		view.Retention = dto.ChartSeries{Labels: labels, Values: values}
		return nil
	})

	view.FailedSources = f.wait()
	return view, nil
}
