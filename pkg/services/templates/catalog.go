package templates

import (
	"fmt"
	"time"

	"github.com/spf13/viper"

	"github.com/de-tools/learn-atlas/pkg/models/domain"
)

type catalogFile struct {
	Templates []catalogTemplate `mapstructure:"templates"`
}

type catalogTemplate struct {
	ID           string            `mapstructure:"id"`
	Name         string            `mapstructure:"name"`
	Type         string            `mapstructure:"type"`
	Description  string            `mapstructure:"description"`
	AvailableFor []string          `mapstructure:"available_for"`
	Filters      *catalogFilters   `mapstructure:"default_filters"`
	Fields       []catalogField    `mapstructure:"fields"`
	Aggregations []catalogAgg      `mapstructure:"aggregations"`
	Charts       []catalogChart    `mapstructure:"charts"`
}

type catalogFilters struct {
	Preset      string   `mapstructure:"date_preset"`
	StartDate   string   `mapstructure:"start_date"`
	EndDate     string   `mapstructure:"end_date"`
	Departments []string `mapstructure:"departments"`
	CourseIDs   []string `mapstructure:"course_ids"`
	Status      []string `mapstructure:"status"`
}

type catalogField struct {
	Key        string `mapstructure:"key"`
	Label      string `mapstructure:"label"`
	Type       string `mapstructure:"type"`
	Sortable   bool   `mapstructure:"sortable"`
	Filterable bool   `mapstructure:"filterable"`
	Width      int    `mapstructure:"width"`
}

type catalogAgg struct {
	Name    string `mapstructure:"name"`
	Reducer string `mapstructure:"reducer"`
	Field   string `mapstructure:"field"`
	Match   string `mapstructure:"match"`
}

type catalogChart struct {
	Type  string `mapstructure:"type"`
	Title string `mapstructure:"title"`
	XKey  string `mapstructure:"x_key"`
	YKey  string `mapstructure:"y_key"`
}

// LoadCatalog reads extra report templates from a YAML catalog file.
// Deployments use it to register custom templates next to the builtin
// set; the result feeds NewRegistry at startup.
func LoadCatalog(path string) ([]domain.ReportTemplate, error) {
	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read template catalog: %w", err)
	}

	var file catalogFile
	if err := v.Unmarshal(&file); err != nil {
		return nil, fmt.Errorf("failed to parse template catalog: %w", err)
	}

	tmpls := make([]domain.ReportTemplate, 0, len(file.Templates))
	for _, ct := range file.Templates {
		t, err := ct.toDomain()
		if err != nil {
			return nil, fmt.Errorf("template %q: %w", ct.ID, err)
		}
		tmpls = append(tmpls, t)
	}

	return tmpls, nil
}

func (ct catalogTemplate) toDomain() (domain.ReportTemplate, error) {
	t := domain.ReportTemplate{
		ID:          ct.ID,
		Name:        ct.Name,
		Type:        domain.ReportType(ct.Type),
		Description: ct.Description,
	}
	if t.Type == "" {
		t.Type = domain.ReportCustom
	}

	for _, r := range ct.AvailableFor {
		t.AvailableFor = append(t.AvailableFor, domain.Role(r))
	}

	for _, f := range ct.Fields {
		t.Fields = append(t.Fields, domain.ReportField{
			Key:        f.Key,
			Label:      f.Label,
			Type:       domain.FieldType(f.Type),
			Sortable:   f.Sortable,
			Filterable: f.Filterable,
			Width:      f.Width,
		})
	}

	for _, a := range ct.Aggregations {
		t.Aggregations = append(t.Aggregations, domain.AggregationSpec{
			Name:    a.Name,
			Reducer: domain.Reducer(a.Reducer),
			Field:   a.Field,
			Match:   a.Match,
		})
	}

	for _, c := range ct.Charts {
		t.Charts = append(t.Charts, domain.ChartSpec{
			Type:  domain.ChartType(c.Type),
			Title: c.Title,
			XKey:  c.XKey,
			YKey:  c.YKey,
		})
	}

	if ct.Filters != nil {
		raw, err := ct.Filters.toDomain()
		if err != nil {
			return domain.ReportTemplate{}, err
		}
		t.DefaultFilters = raw
	}

	return t, nil
}

func (cf catalogFilters) toDomain() (domain.RawFilter, error) {
	raw := domain.RawFilter{
		Departments: cf.Departments,
		CourseIDs:   cf.CourseIDs,
	}

	for _, s := range cf.Status {
		raw.Status = append(raw.Status, domain.TrainingStatus(s))
	}

	if cf.Preset != "" {
		dr := domain.RawDateRange{Preset: domain.DatePreset(cf.Preset)}
		if cf.StartDate != "" {
			start, err := time.Parse("2006-01-02", cf.StartDate)
			if err != nil {
				return domain.RawFilter{}, fmt.Errorf("invalid start_date %q: %w", cf.StartDate, err)
			}
			dr.StartDate = &start
		}
		if cf.EndDate != "" {
			end, err := time.Parse("2006-01-02", cf.EndDate)
			if err != nil {
				return domain.RawFilter{}, fmt.Errorf("invalid end_date %q: %w", cf.EndDate, err)
			}
			dr.EndDate = &end
		}
		raw.DateRange = &dr
	}

	return raw, nil
}
