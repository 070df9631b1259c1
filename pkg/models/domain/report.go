package domain

import "time"

// Row is one record of a generated report, keyed by the owning
// template's field keys. A nil value means the underlying record had no
// data for that column; renderers turn it into the "N/A" sentinel.
type Row map[string]interface{}

// Chart is a rendered chart descriptor included in a report summary.
type Chart struct {
	Type  ChartType
	Title string
	Data  []Row
	XKey  string
	YKey  string
}

// ReportSummary carries whole-report statistics. TotalRecords always
// equals the full row count before any renderer-side truncation.
type ReportSummary struct {
	TotalRecords int
	Aggregations map[string]interface{}
	Charts       []Chart
}

// ReportData is the immutable result of one generation request.
type ReportData struct {
	ID          string
	Template    ReportTemplate
	Filters     ReportFilter
	GeneratedAt time.Time
	GeneratedBy string
	Data        []Row
	Summary     *ReportSummary
}
