package report

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/de-tools/learn-atlas/pkg/models/domain"
	"github.com/de-tools/learn-atlas/pkg/services/filter"
	"github.com/de-tools/learn-atlas/pkg/services/templates"
	"github.com/de-tools/learn-atlas/pkg/store/records"
)

// Generator assembles report data: it merges the caller's filter over
// the template defaults, fetches the matching records, projects them
// into rows and computes the declared summary statistics. Generation is
// all-or-nothing; a data-source failure never yields a partial report.
type Generator interface {
	Generate(ctx context.Context, templateID string, raw domain.RawFilter, requestedBy string) (*domain.ReportData, error)
}

type generator struct {
	registry templates.Registry
	store    records.Store
	now      func() time.Time
}

func NewGenerator(registry templates.Registry, store records.Store) Generator {
	return &generator{
		registry: registry,
		store:    store,
		now:      time.Now,
	}
}

// NewGeneratorWithClock pins "now" for deterministic generation.
func NewGeneratorWithClock(registry templates.Registry, store records.Store, now func() time.Time) Generator {
	return &generator{
		registry: registry,
		store:    store,
		now:      now,
	}
}

func (g *generator) Generate(
	ctx context.Context,
	templateID string,
	raw domain.RawFilter,
	requestedBy string,
) (*domain.ReportData, error) {
	logger := zerolog.Ctx(ctx)

	tmpl, err := g.registry.Get(templateID)
	if err != nil {
		return nil, err
	}

	now := g.now()

	merged := filter.MergeRaw(raw, tmpl.DefaultFilters)
	resolved, err := filter.Resolve(merged, now)
	if err != nil {
		return nil, err
	}

	recs, err := g.store.Fetch(ctx, resolved)
	if err != nil {
		return nil, &domain.DataSourceError{Err: err}
	}

	rows := make([]domain.Row, 0, len(recs))
	for _, rec := range recs {
		rows = append(rows, projectRow(tmpl, rec))
	}

	summary := &domain.ReportSummary{
		TotalRecords: len(rows),
		Aggregations: computeAggregations(tmpl.Aggregations, rows),
		Charts:       buildCharts(tmpl.Charts, rows),
	}

	logger.Debug().
		Str("template", templateID).
		Int("records", len(rows)).
		Msg("report generated")

	return &domain.ReportData{
		ID:          fmt.Sprintf("%s-%d", templateID, now.UnixMilli()),
		Template:    tmpl,
		Filters:     resolved,
		GeneratedAt: now,
		GeneratedBy: requestedBy,
		Data:        rows,
		Summary:     summary,
	}, nil
}
