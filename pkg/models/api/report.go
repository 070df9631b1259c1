package api

import "time"

// DateRange mirrors the filter window as submitted by a client.
type DateRange struct {
	Preset    string     `json:"preset"`
	StartDate *time.Time `json:"start_date,omitempty"`
	EndDate   *time.Time `json:"end_date,omitempty"`
}

type ReportFilter struct {
	DateRange   *DateRange `json:"date_range,omitempty"`
	Departments []string   `json:"departments,omitempty"`
	CourseIDs   []string   `json:"course_ids,omitempty"`
	UserIDs     []string   `json:"user_ids,omitempty"`
	Status      []string   `json:"status,omitempty"`
	MinProgress *float64   `json:"min_progress,omitempty"`
	MaxProgress *float64   `json:"max_progress,omitempty"`
}

type ReportField struct {
	Key        string `json:"key"`
	Label      string `json:"label"`
	Type       string `json:"type"`
	Sortable   bool   `json:"sortable"`
	Filterable bool   `json:"filterable"`
	Width      int    `json:"width,omitempty"`
}

type ReportTemplate struct {
	Id           string        `json:"id"`
	Name         string        `json:"name"`
	Type         string        `json:"type"`
	Description  string        `json:"description"`
	AvailableFor []string      `json:"available_for"`
	Fields       []ReportField `json:"fields"`
}

type Chart struct {
	Type  string                   `json:"type"`
	Title string                   `json:"title"`
	Data  []map[string]interface{} `json:"data"`
	XKey  string                   `json:"x_key,omitempty"`
	YKey  string                   `json:"y_key,omitempty"`
}

type ReportSummary struct {
	TotalRecords int                    `json:"total_records"`
	Aggregations map[string]interface{} `json:"aggregations"`
	Charts       []Chart                `json:"charts,omitempty"`
}

type ReportData struct {
	Id          string                   `json:"id"`
	TemplateId  string                   `json:"template_id"`
	GeneratedAt time.Time                `json:"generated_at"`
	GeneratedBy string                   `json:"generated_by"`
	Data        []map[string]interface{} `json:"data"`
	Summary     *ReportSummary           `json:"summary,omitempty"`
}

// GenerateReportRequest is the body of the generate endpoint.
type GenerateReportRequest struct {
	Filter      ReportFilter `json:"filter"`
	RequestedBy string       `json:"requested_by"`
}

// ReportConfig is the presentation policy as submitted by a client.
type ReportConfig struct {
	PageSize           string `json:"page_size,omitempty"`
	Orientation        string `json:"orientation,omitempty"`
	ShowHeader         *bool  `json:"show_header,omitempty"`
	ShowFooter         *bool  `json:"show_footer,omitempty"`
	ShowLogo           *bool  `json:"show_logo,omitempty"`
	ShowPageNumbers    *bool  `json:"show_page_numbers,omitempty"`
	ShowGenerationDate *bool  `json:"show_generation_date,omitempty"`
	Watermark          string `json:"watermark,omitempty"`
	CustomStyles       string `json:"custom_styles,omitempty"`
}

// ExportReportRequest is the body of the export endpoint: generate a
// report and render it in the requested format in one round trip.
type ExportReportRequest struct {
	Filter      ReportFilter  `json:"filter"`
	RequestedBy string        `json:"requested_by"`
	Config      *ReportConfig `json:"config,omitempty"`
}
