package records

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/de-tools/learn-atlas/pkg/models/domain"
	"github.com/de-tools/learn-atlas/pkg/models/store"
)

// Store is the data-access collaborator of the report assembler: given a
// resolved filter it returns the matching training records in store
// order. The assembler never learns the storage technology behind it.
type Store interface {
	Fetch(ctx context.Context, filter domain.ReportFilter) ([]store.TrainingRecord, error)
	Add(ctx context.Context, records []store.TrainingRecord) error
}

type recordStore struct {
	db *sql.DB
}

func NewStore(db *sql.DB) (Store, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	return &recordStore{db: db}, nil
}

const selectColumns = `
	SELECT id, user_id, user_name, department, course_id, course_name, category,
	       status, progress, score, assigned_at, started_at, completed_at,
	       due_date, certificate_id, time_spent_min
	FROM training_records`

func (s *recordStore) Fetch(ctx context.Context, filter domain.ReportFilter) ([]store.TrainingRecord, error) {
	where, args := buildPredicates(filter)

	query := selectColumns
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY assigned_at DESC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query training records: %w", err)
	}
	defer rows.Close()

	return scanRecords(rows)
}

func buildPredicates(filter domain.ReportFilter) ([]string, []interface{}) {
	var where []string
	var args []interface{}

	if dr := filter.DateRange; dr != nil {
		where = append(where, "assigned_at >= ? AND assigned_at <= ?")
		args = append(args, dr.Start, dr.End)
	}
	if len(filter.Departments) > 0 {
		where = append(where, inClause("department", len(filter.Departments)))
		for _, d := range filter.Departments {
			args = append(args, d)
		}
	}
	if len(filter.CourseIDs) > 0 {
		where = append(where, inClause("course_id", len(filter.CourseIDs)))
		for _, c := range filter.CourseIDs {
			args = append(args, c)
		}
	}
	if len(filter.UserIDs) > 0 {
		where = append(where, inClause("user_id", len(filter.UserIDs)))
		for _, u := range filter.UserIDs {
			args = append(args, u)
		}
	}
	if len(filter.Status) > 0 {
		where = append(where, inClause("status", len(filter.Status)))
		for _, st := range filter.Status {
			args = append(args, string(st))
		}
	}
	if filter.MinProgress != nil {
		where = append(where, "progress >= ?")
		args = append(args, *filter.MinProgress)
	}
	if filter.MaxProgress != nil {
		where = append(where, "progress <= ?")
		args = append(args, *filter.MaxProgress)
	}

	return where, args
}

func inClause(column string, n int) string {
	placeholders := strings.TrimSuffix(strings.Repeat("?,", n), ",")
	return fmt.Sprintf("%s IN (%s)", column, placeholders)
}

func scanRecords(rows *sql.Rows) ([]store.TrainingRecord, error) {
	var records []store.TrainingRecord

	for rows.Next() {
		var r store.TrainingRecord
		var userName, department, courseName, category, status, certificateID sql.NullString
		var progress, score, timeSpent sql.NullFloat64
		var startedAt, completedAt, dueDate sql.NullTime

		err := rows.Scan(
			&r.ID, &r.UserID, &userName, &department, &r.CourseID, &courseName,
			&category, &status, &progress, &score, &r.AssignedAt, &startedAt,
			&completedAt, &dueDate, &certificateID, &timeSpent,
		)
		if err != nil {
			return nil, fmt.Errorf("scan training record: %w", err)
		}

		r.UserName = userName.String
		r.Department = department.String
		r.CourseName = courseName.String
		r.Category = category.String
		r.Status = status.String
		r.CertificateID = certificateID.String
		if progress.Valid {
			r.Progress = &progress.Float64
		}
		if score.Valid {
			r.Score = &score.Float64
		}
		if timeSpent.Valid {
			r.TimeSpentMin = &timeSpent.Float64
		}
		if startedAt.Valid {
			r.StartedAt = &startedAt.Time
		}
		if completedAt.Valid {
			r.CompletedAt = &completedAt.Time
		}
		if dueDate.Valid {
			r.DueDate = &dueDate.Time
		}

		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate training records: %w", err)
	}
	return records, nil
}

func (s *recordStore) Add(ctx context.Context, records []store.TrainingRecord) error {
	if len(records) == 0 {
		return nil
	}

	query := `
		INSERT INTO training_records (
			id, user_id, user_name, department, course_id, course_name, category,
			status, progress, score, assigned_at, started_at, completed_at,
			due_date, certificate_id, time_spent_min
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	stmt, err := s.db.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare statement: %w", err)
	}
	defer stmt.Close()

	for _, r := range records {
		_, err = stmt.ExecContext(ctx,
			r.ID, r.UserID, r.UserName, r.Department, r.CourseID, r.CourseName,
			r.Category, r.Status, r.Progress, r.Score, r.AssignedAt, r.StartedAt,
			r.CompletedAt, r.DueDate, r.CertificateID, r.TimeSpentMin,
		)
		if err != nil {
			return fmt.Errorf("insert record %s: %w", r.ID, err)
		}
	}

	return nil
}
