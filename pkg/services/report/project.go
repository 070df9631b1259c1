package report

import (
	"time"

	"github.com/de-tools/learn-atlas/pkg/models/domain"
	"github.com/de-tools/learn-atlas/pkg/models/store"
)

// projectRow maps a raw training record into a report row containing
// exactly the keys the template declares. Values are stored bare: a
// percentage field holds the number, the "%" sign belongs to renderers.
func projectRow(tmpl domain.ReportTemplate, rec store.TrainingRecord) domain.Row {
	row := make(domain.Row, len(tmpl.Fields))
	for _, f := range tmpl.Fields {
		row[f.Key] = fieldValue(rec, f.Key)
	}
	return row
}

func fieldValue(rec store.TrainingRecord, key string) interface{} {
	switch key {
	case "name":
		return stringOrNil(rec.UserName)
	case "user_id":
		return stringOrNil(rec.UserID)
	case "department":
		return stringOrNil(rec.Department)
	case "course":
		return stringOrNil(rec.CourseName)
	case "course_id":
		return stringOrNil(rec.CourseID)
	case "category":
		return stringOrNil(rec.Category)
	case "status":
		return stringOrNil(rec.Status)
	case "progress":
		return floatOrNil(rec.Progress)
	case "score":
		return floatOrNil(rec.Score)
	case "time_spent":
		return floatOrNil(rec.TimeSpentMin)
	case "assigned_at":
		return rec.AssignedAt
	case "started_at":
		return timeOrNil(rec.StartedAt)
	case "completed_at":
		return timeOrNil(rec.CompletedAt)
	case "due_date":
		return timeOrNil(rec.DueDate)
	case "certificate_id":
		return stringOrNil(rec.CertificateID)
	default:
		// Unknown keys stay in the row (templates own the key set) and
		// render as the missing-value sentinel.
		return nil
	}
}

func stringOrNil(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

func floatOrNil(f *float64) interface{} {
	if f == nil {
		return nil
	}
	return *f
}

func timeOrNil(t *time.Time) interface{} {
	if t == nil {
		return nil
	}
	return *t
}
