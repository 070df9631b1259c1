package records

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/de-tools/learn-atlas/pkg/models/domain"
	storemodels "github.com/de-tools/learn-atlas/pkg/models/store"
)

var recordColumns = []string{
	"id", "user_id", "user_name", "department", "course_id", "course_name",
	"category", "status", "progress", "score", "assigned_at", "started_at",
	"completed_at", "due_date", "certificate_id", "time_spent_min",
}

func TestFetch_NoFilter(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	assigned := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	completed := assigned.AddDate(0, 0, 10)

	mock.ExpectQuery("FROM training_records ORDER BY assigned_at DESC").
		WillReturnRows(sqlmock.NewRows(recordColumns).
			AddRow("tr-1", "u-1", "Ana Torres", "IT", "sec-101", "Seguridad", "Cumplimiento",
				"completed", 100.0, 92.5, assigned, assigned, completed, nil, "cert-1", 120.0).
			AddRow("tr-2", "u-2", "Luis Vega", "Ventas", "sec-101", "Seguridad", "Cumplimiento",
				"not_started", nil, nil, assigned, nil, nil, nil, nil, nil))

	store, err := NewStore(db)
	require.NoError(t, err)

	recs, err := store.Fetch(context.Background(), domain.ReportFilter{})
	require.NoError(t, err)
	require.Len(t, recs, 2)

	assert.Equal(t, "Ana Torres", recs[0].UserName)
	require.NotNil(t, recs[0].Progress)
	assert.Equal(t, 100.0, *recs[0].Progress)
	require.NotNil(t, recs[0].CompletedAt)
	assert.Equal(t, completed, *recs[0].CompletedAt)

	// Nullable columns come back as nil pointers, not zero values.
	assert.Nil(t, recs[1].Progress)
	assert.Nil(t, recs[1].Score)
	assert.Nil(t, recs[1].CompletedAt)
	assert.Empty(t, recs[1].CertificateID)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFetch_AppliesFilterPredicates(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	start := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, time.June, 30, 0, 0, 0, 0, time.UTC)
	minProgress := 25.0

	mock.ExpectQuery(`WHERE assigned_at >= \? AND assigned_at <= \? AND department IN \(\?,\?\) AND status IN \(\?\) AND progress >= \?`).
		WithArgs(start, end, "IT", "Ventas", "in_progress", minProgress).
		WillReturnRows(sqlmock.NewRows(recordColumns))

	store, err := NewStore(db)
	require.NoError(t, err)

	recs, err := store.Fetch(context.Background(), domain.ReportFilter{
		DateRange:   &domain.DateRange{Preset: domain.PresetCustom, Start: start, End: end},
		Departments: []string{"IT", "Ventas"},
		Status:      []domain.TrainingStatus{domain.StatusInProgress},
		MinProgress: &minProgress,
	})
	require.NoError(t, err)
	assert.Empty(t, recs)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFetch_QueryError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("FROM training_records").
		WillReturnError(assert.AnError)

	store, err := NewStore(db)
	require.NoError(t, err)

	_, err = store.Fetch(context.Background(), domain.ReportFilter{})
	assert.Error(t, err)
}

func TestAdd_InsertsAllRecords(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	assigned := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	progress := 40.0

	mock.ExpectPrepare("INSERT INTO training_records")
	mock.ExpectExec("INSERT INTO training_records").
		WillReturnResult(sqlmock.NewResult(0, 1))

	store, err := NewStore(db)
	require.NoError(t, err)

	err = store.Add(context.Background(), []storemodels.TrainingRecord{{
		ID: "tr-1", UserID: "u-1", CourseID: "sec-101",
		Status: "in_progress", Progress: &progress, AssignedAt: assigned,
	}})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNewStore_NilDB(t *testing.T) {
	_, err := NewStore(nil)
	assert.Error(t, err)
}
