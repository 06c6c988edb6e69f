package query

import (
	"context"

	"github.com/samber/lo"

	"github.com/zemuria/ops-console/internal/application/dto"
	"github.com/zemuria/ops-console/internal/domain/entity"
	"github.com/zemuria/ops-console/internal/infrastructure/cache"
	"github.com/zemuria/ops-console/internal/infrastructure/external/engine"
)

// ListingSource is the slice of the backend the operations page reads
type ListingSource interface {
	UserOptions(ctx context.Context) ([]engine.Option, error)
	PlanOptions(ctx context.Context) ([]engine.Option, error)
	AdminLogs(ctx context.Context) ([]engine.AdminLogEntry, error)
}

// GetOperationsQuery assembles the manual-override workbench: the form
// option sets, a fresh prefilled draft, and the recent audit trail.
type GetOperationsQuery struct {
	source   ListingSource
	listings *cache.ListingCache
}

// NewGetOperationsQuery creates a new operations query
func NewGetOperationsQuery(source ListingSource, listings *cache.ListingCache) *GetOperationsQuery {
	return &GetOperationsQuery{
		source:   source,
		listings: listings,
	}
}

// Execute serves the listings cache-first and fetches misses concurrently.
// The draft is always fresh: every page load gets a new transaction id.
func (q *GetOperationsQuery) Execute(ctx context.Context) (*dto.OperationsView, error) {
	view := &dto.OperationsView{
		Users:     []dto.OptionView{},
		Plans:     []dto.OptionView{},
		AdminLogs: []dto.AdminLogView{},
		Draft:     entity.NewOverrideDraft(),
	}

	var f fanout

	f.run("user_options", func() error {
		options, ok := q.listings.GetUserOptions()
		if !ok {
			fetched, err := q.source.UserOptions(ctx)
			if err != nil {
				return err
			}
			q.listings.SetUserOptions(fetched)
			options = fetched
		}
		view.Users = optionViews(options)
		return nil
	})

	f.run("plan_options", func() error {
		options, ok := q.listings.GetPlanOptions()
		if !ok {
			fetched, err := q.source.PlanOptions(ctx)
			if err != nil {
				return err
			}
			q.listings.SetPlanOptions(fetched)
			options = fetched
		}
		view.Plans = optionViews(options)
		return nil
	})

	f.run("admin_logs", func() error {
		logs, ok := q.listings.GetAdminLogs()
		if !ok {
			fetched, err := q.source.AdminLogs(ctx)
			if err != nil {
				return err
			}
			q.listings.SetAdminLogs(fetched)
			logs = fetched
		}
		view.AdminLogs = lo.Map(logs, func(l engine.AdminLogEntry, _ int) dto.AdminLogView {
			return dto.AdminLogView{
				Timestamp:  l.Timestamp,
				Actor:      l.Actor,
				Action:     l.Action,
				TargetUser: l.TargetUser,
			}
		})
		return nil
	})

	view.FailedSources = f.wait()
	return view, nil
}

func optionViews(options []engine.Option) []dto.OptionView {
	return lo.Map(options, func(o engine.Option, _ int) dto.OptionView {
		return dto.OptionView{Value: o.Value, Label: o.Label}
	})
}
