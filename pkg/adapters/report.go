package adapters

import (
	"github.com/de-tools/learn-atlas/pkg/models/api"
	"github.com/de-tools/learn-atlas/pkg/models/domain"
)

func MapApiFilterToDomainRaw(f api.ReportFilter) domain.RawFilter {
	raw := domain.RawFilter{
		Departments: f.Departments,
		CourseIDs:   f.CourseIDs,
		UserIDs:     f.UserIDs,
		MinProgress: f.MinProgress,
		MaxProgress: f.MaxProgress,
	}

	if f.DateRange != nil {
		raw.DateRange = &domain.RawDateRange{
			Preset:    domain.DatePreset(f.DateRange.Preset),
			StartDate: f.DateRange.StartDate,
			EndDate:   f.DateRange.EndDate,
		}
	}

	for _, s := range f.Status {
		raw.Status = append(raw.Status, domain.TrainingStatus(s))
	}

	return raw
}

func MapApiConfigToDomain(c *api.ReportConfig) domain.ReportConfig {
	cfg := domain.DefaultReportConfig()
	if c == nil {
		return cfg
	}

	if c.PageSize != "" {
		cfg.PageSize = domain.PageSize(c.PageSize)
	}
	if c.Orientation != "" {
		cfg.Orientation = domain.Orientation(c.Orientation)
	}
	if c.ShowHeader != nil {
		cfg.ShowHeader = *c.ShowHeader
	}
	if c.ShowFooter != nil {
		cfg.ShowFooter = *c.ShowFooter
	}
	if c.ShowLogo != nil {
		cfg.ShowLogo = *c.ShowLogo
	}
	if c.ShowPageNumbers != nil {
		cfg.ShowPageNumbers = *c.ShowPageNumbers
	}
	if c.ShowGenerationDate != nil {
		cfg.ShowGenerationDate = *c.ShowGenerationDate
	}
	cfg.Watermark = c.Watermark
	cfg.CustomStyles = c.CustomStyles

	return cfg
}

func MapTemplateDomainToApi(t domain.ReportTemplate) api.ReportTemplate {
	tmpl := api.ReportTemplate{
		Id:          t.ID,
		Name:        t.Name,
		Type:        string(t.Type),
		Description: t.Description,
		Fields:      []api.ReportField{},
	}

	for _, r := range t.AvailableFor {
		tmpl.AvailableFor = append(tmpl.AvailableFor, string(r))
	}
	for _, f := range t.Fields {
		tmpl.Fields = append(tmpl.Fields, api.ReportField{
			Key:        f.Key,
			Label:      f.Label,
			Type:       string(f.Type),
			Sortable:   f.Sortable,
			Filterable: f.Filterable,
			Width:      f.Width,
		})
	}

	return tmpl
}

func MapReportDomainToApi(r *domain.ReportData) api.ReportData {
	report := api.ReportData{
		Id:          r.ID,
		TemplateId:  r.Template.ID,
		GeneratedAt: r.GeneratedAt,
		GeneratedBy: r.GeneratedBy,
		Data:        make([]map[string]interface{}, 0, len(r.Data)),
	}

	for _, row := range r.Data {
		report.Data = append(report.Data, map[string]interface{}(row))
	}

	if r.Summary != nil {
		summary := &api.ReportSummary{
			TotalRecords: r.Summary.TotalRecords,
			Aggregations: r.Summary.Aggregations,
		}
		for _, c := range r.Summary.Charts {
			chart := api.Chart{
				Type:  string(c.Type),
				Title: c.Title,
				XKey:  c.XKey,
				YKey:  c.YKey,
				Data:  make([]map[string]interface{}, 0, len(c.Data)),
			}
			for _, row := range c.Data {
				chart.Data = append(chart.Data, map[string]interface{}(row))
			}
			summary.Charts = append(summary.Charts, chart)
		}
		report.Summary = summary
	}

	return report
}
