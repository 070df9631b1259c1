package domain

// ReportType identifies one of the closed set of report definitions.
type ReportType string

const (
	ReportEmployeeProgress     ReportType = "employee_progress"
	ReportDepartmentStatistics ReportType = "department_statistics"
	ReportCertifications       ReportType = "certifications"
	ReportPendingAssignments   ReportType = "pending_assignments"
	ReportSystemPerformance    ReportType = "system_performance"
	ReportCompletionHistory    ReportType = "completion_history"
	ReportCustom               ReportType = "custom"
)

// Role gates template visibility. The engine never checks permissions
// itself; roles only drive registry listing.
type Role string

const (
	RoleAdmin      Role = "admin"
	RoleManager    Role = "manager"
	RoleInstructor Role = "instructor"
	RoleEmployee   Role = "employee"
)

// FieldType governs per-cell formatting at render time. The assembler
// stores bare values; e.g. a percentage field holds a number and the
// renderer appends the "%" sign.
type FieldType string

const (
	FieldText       FieldType = "text"
	FieldNumber     FieldType = "number"
	FieldDate       FieldType = "date"
	FieldPercentage FieldType = "percentage"
	FieldStatus     FieldType = "status"
	FieldBadge      FieldType = "badge"
)

// ReportField declares one output column. Key is the row-lookup
// identifier, unique within a template; field order is display order.
type ReportField struct {
	Key        string
	Label      string
	Type       FieldType
	Sortable   bool
	Filterable bool
	Width      int // optional fixed width, 0 means auto
}

// Reducer names a declared aggregation formula.
type Reducer string

const (
	ReducerCount   Reducer = "count"
	ReducerSum     Reducer = "sum"
	ReducerAverage Reducer = "average"
	ReducerRate    Reducer = "rate"
)

// AggregationSpec declares one summary statistic computed over all rows.
// Field names the row key the reducer reads; count ignores it when empty.
// Rate computes the share (0-100) of rows whose Field equals Match.
type AggregationSpec struct {
	Name    string
	Reducer Reducer
	Field   string
	Match   string
}

// ChartType is a summary chart descriptor kind.
type ChartType string

const (
	ChartBar  ChartType = "bar"
	ChartLine ChartType = "line"
	ChartPie  ChartType = "pie"
	ChartArea ChartType = "area"
)

// ChartSpec declares a chart to derive from the report rows. XKey/YKey
// reference field keys of the owning template.
type ChartSpec struct {
	Type  ChartType
	Title string
	XKey  string
	YKey  string
}

// ReportTemplate is a named, role-gated report definition. Templates are
// configuration: loaded once at startup, never mutated afterwards, safe
// for concurrent reads.
type ReportTemplate struct {
	ID             string
	Name           string
	Type           ReportType
	Description    string
	AvailableFor   []Role
	DefaultFilters RawFilter
	Fields         []ReportField
	Aggregations   []AggregationSpec
	Charts         []ChartSpec
}

// FieldKeys returns the declared column keys in display order.
func (t ReportTemplate) FieldKeys() []string {
	keys := make([]string, 0, len(t.Fields))
	for _, f := range t.Fields {
		keys = append(keys, f.Key)
	}
	return keys
}

// VisibleTo reports whether the template is listed for the given role.
func (t ReportTemplate) VisibleTo(role Role) bool {
	for _, r := range t.AvailableFor {
		if r == role {
			return true
		}
	}
	return false
}
