package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/de-tools/learn-atlas/pkg/models/domain"
)

func statusRows() []domain.Row {
	return []domain.Row{
		{"status": "completed", "time_spent": 30.0, "progress": 100.0},
		{"status": "completed", "time_spent": 45.5, "progress": 100.0},
		{"status": "in_progress", "time_spent": 10.0, "progress": 40.0},
		{"status": "not_started", "time_spent": nil, "progress": nil},
	}
}

func TestComputeAggregations_Reducers(t *testing.T) {
	aggs := computeAggregations([]domain.AggregationSpec{
		{Name: "total", Reducer: domain.ReducerCount},
		{Name: "con tiempo", Reducer: domain.ReducerCount, Field: "time_spent"},
		{Name: "minutos", Reducer: domain.ReducerSum, Field: "time_spent"},
		{Name: "avance", Reducer: domain.ReducerAverage, Field: "progress"},
		{Name: "finalización", Reducer: domain.ReducerRate, Field: "status", Match: "completed"},
	}, statusRows())

	assert.Equal(t, 4, aggs["total"])
	assert.Equal(t, 3, aggs["con tiempo"])
	assert.Equal(t, 85.5, aggs["minutos"])
	assert.Equal(t, 80.0, aggs["avance"])
	assert.Equal(t, 50.0, aggs["finalización"])
}

func TestComputeAggregations_EmptyRows(t *testing.T) {
	aggs := computeAggregations([]domain.AggregationSpec{
		{Name: "total", Reducer: domain.ReducerCount},
		{Name: "avance", Reducer: domain.ReducerAverage, Field: "progress"},
		{Name: "tasa", Reducer: domain.ReducerRate, Field: "status", Match: "completed"},
	}, nil)

	assert.Equal(t, 0, aggs["total"])
	assert.Equal(t, 0.0, aggs["avance"])
	assert.Equal(t, 0.0, aggs["tasa"])
}

func TestBuildCharts_GroupsByXKey(t *testing.T) {
	charts := buildCharts([]domain.ChartSpec{
		{Type: domain.ChartBar, Title: "Avance por estado", XKey: "status", YKey: "progress"},
	}, statusRows())

	require.Len(t, charts, 1)
	chart := charts[0]
	assert.Equal(t, domain.ChartBar, chart.Type)
	require.Len(t, chart.Data, 3)

	// Grouping preserves first-seen order and averages the numeric y key.
	assert.Equal(t, domain.Row{"status": "completed", "progress": 100.0}, chart.Data[0])
	assert.Equal(t, domain.Row{"status": "in_progress", "progress": 40.0}, chart.Data[1])
	// A group with no numeric values falls back to its size.
	assert.Equal(t, domain.Row{"status": "not_started", "progress": 1}, chart.Data[2])
}
