package domain

import "time"

// DatePreset names a relative reporting window resolved against "now"
// in the reporting timezone.
type DatePreset string

const (
	PresetToday       DatePreset = "today"
	PresetThisWeek    DatePreset = "this_week"
	PresetThisMonth   DatePreset = "this_month"
	PresetLastMonth   DatePreset = "last_month"
	PresetThisQuarter DatePreset = "this_quarter"
	PresetThisYear    DatePreset = "this_year"
	PresetCustom      DatePreset = "custom"
)

// TrainingStatus is the completion state of a single course assignment.
type TrainingStatus string

const (
	StatusCompleted  TrainingStatus = "completed"
	StatusInProgress TrainingStatus = "in_progress"
	StatusNotStarted TrainingStatus = "not_started"
	StatusOverdue    TrainingStatus = "overdue"
)

// RawDateRange is the caller-supplied window before preset resolution.
// Start/End are only honored when Preset is "custom".
type RawDateRange struct {
	Preset    DatePreset
	StartDate *time.Time
	EndDate   *time.Time
}

// RawFilter is the selection criteria exactly as submitted by a caller
// (or declared as a template default), prior to validation and preset
// resolution.
type RawFilter struct {
	DateRange   *RawDateRange
	Departments []string
	CourseIDs   []string
	UserIDs     []string
	Status      []TrainingStatus
	MinProgress *float64
	MaxProgress *float64
}

// DateRange is a resolved, inclusive selection window.
type DateRange struct {
	Preset DatePreset
	Start  time.Time
	End    time.Time
}

// ReportFilter is the canonical filter passed to the data-access layer.
// It is an immutable value; every field is optional and an absent field
// places no restriction on the record set.
type ReportFilter struct {
	DateRange   *DateRange
	Departments []string
	CourseIDs   []string
	UserIDs     []string
	Status      []TrainingStatus
	MinProgress *float64
	MaxProgress *float64
}

// IsEmpty reports whether the filter restricts nothing.
func (f ReportFilter) IsEmpty() bool {
	return f.DateRange == nil &&
		len(f.Departments) == 0 &&
		len(f.CourseIDs) == 0 &&
		len(f.UserIDs) == 0 &&
		len(f.Status) == 0 &&
		f.MinProgress == nil &&
		f.MaxProgress == nil
}
