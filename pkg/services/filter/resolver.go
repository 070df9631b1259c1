package filter

import (
	"fmt"
	"time"

	"github.com/de-tools/learn-atlas/pkg/models/domain"
)

// MergeRaw overlays an explicit filter on top of a template's default
// filters. Merging is field-by-field: when the explicit filter sets a
// dimension, it replaces the default dimension entirely; sub-objects are
// never merged internally.
func MergeRaw(explicit, defaults domain.RawFilter) domain.RawFilter {
	merged := defaults

	if explicit.DateRange != nil {
		merged.DateRange = explicit.DateRange
	}
	if len(explicit.Departments) > 0 {
		merged.Departments = explicit.Departments
	}
	if len(explicit.CourseIDs) > 0 {
		merged.CourseIDs = explicit.CourseIDs
	}
	if len(explicit.UserIDs) > 0 {
		merged.UserIDs = explicit.UserIDs
	}
	if len(explicit.Status) > 0 {
		merged.Status = explicit.Status
	}
	if explicit.MinProgress != nil {
		merged.MinProgress = explicit.MinProgress
	}
	if explicit.MaxProgress != nil {
		merged.MaxProgress = explicit.MaxProgress
	}

	return merged
}

// Resolve validates a raw filter and converts its date-range preset into
// concrete bounds relative to now in the reporting timezone. Filters are
// the only channel of row selection, so the resolved value is handed to
// the data-access layer unchanged.
func Resolve(raw domain.RawFilter, now time.Time) (domain.ReportFilter, error) {
	resolved := domain.ReportFilter{
		Departments: raw.Departments,
		CourseIDs:   raw.CourseIDs,
		UserIDs:     raw.UserIDs,
		Status:      raw.Status,
		MinProgress: raw.MinProgress,
		MaxProgress: raw.MaxProgress,
	}

	if err := validateProgress(raw.MinProgress, raw.MaxProgress); err != nil {
		return domain.ReportFilter{}, err
	}
	if err := validateStatus(raw.Status); err != nil {
		return domain.ReportFilter{}, err
	}

	if raw.DateRange != nil {
		dr, err := resolveDateRange(*raw.DateRange, now)
		if err != nil {
			return domain.ReportFilter{}, err
		}
		resolved.DateRange = &dr
	}

	return resolved, nil
}

func validateProgress(min, max *float64) error {
	for _, p := range []*float64{min, max} {
		if p != nil && (*p < 0 || *p > 100) {
			return &domain.InvalidFilterError{
				Reason: fmt.Sprintf("progress bound %v outside [0, 100]", *p),
			}
		}
	}
	if min != nil && max != nil && *min > *max {
		return &domain.InvalidFilterError{
			Reason: fmt.Sprintf("min progress %v exceeds max progress %v", *min, *max),
		}
	}
	return nil
}

func validateStatus(statuses []domain.TrainingStatus) error {
	for _, s := range statuses {
		switch s {
		case domain.StatusCompleted, domain.StatusInProgress,
			domain.StatusNotStarted, domain.StatusOverdue:
		default:
			return &domain.InvalidFilterError{
				Reason: fmt.Sprintf("unknown status %q", s),
			}
		}
	}
	return nil
}

func resolveDateRange(raw domain.RawDateRange, now time.Time) (domain.DateRange, error) {
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	switch raw.Preset {
	case domain.PresetToday:
		return domain.DateRange{
			Preset: raw.Preset,
			Start:  dayStart,
			End:    dayStart.AddDate(0, 0, 1).Add(-time.Nanosecond),
		}, nil

	case domain.PresetThisWeek:
		// time.Weekday counts Sunday as 0; reporting weeks start Monday.
		offset := (int(now.Weekday()) + 6) % 7
		return domain.DateRange{
			Preset: raw.Preset,
			Start:  dayStart.AddDate(0, 0, -offset),
			End:    now,
		}, nil

	case domain.PresetThisMonth:
		return domain.DateRange{
			Preset: raw.Preset,
			Start:  time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()),
			End:    now,
		}, nil

	case domain.PresetLastMonth:
		monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		return domain.DateRange{
			Preset: raw.Preset,
			Start:  monthStart.AddDate(0, -1, 0),
			End:    monthStart.Add(-time.Nanosecond),
		}, nil

	case domain.PresetThisQuarter:
		quarterMonth := time.Month((int(now.Month())-1)/3*3 + 1)
		return domain.DateRange{
			Preset: raw.Preset,
			Start:  time.Date(now.Year(), quarterMonth, 1, 0, 0, 0, 0, now.Location()),
			End:    now,
		}, nil

	case domain.PresetThisYear:
		return domain.DateRange{
			Preset: raw.Preset,
			Start:  time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location()),
			End:    now,
		}, nil

	case domain.PresetCustom:
		if raw.StartDate == nil || raw.EndDate == nil {
			return domain.DateRange{}, &domain.InvalidFilterError{
				Reason: "custom date range requires both start and end dates",
			}
		}
		if raw.StartDate.After(*raw.EndDate) {
			return domain.DateRange{}, &domain.InvalidFilterError{
				Reason: fmt.Sprintf("start date %s after end date %s",
					raw.StartDate.Format("2006-01-02"), raw.EndDate.Format("2006-01-02")),
			}
		}
		return domain.DateRange{
			Preset: raw.Preset,
			Start:  *raw.StartDate,
			End:    *raw.EndDate,
		}, nil

	default:
		return domain.DateRange{}, &domain.InvalidFilterError{
			Reason: fmt.Sprintf("unknown date range preset %q", raw.Preset),
		}
	}
}
