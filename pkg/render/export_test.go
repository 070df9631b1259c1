package render

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/de-tools/learn-atlas/pkg/models/domain"
)

func TestRenderExport_RawValues(t *testing.T) {
	data := progressReport([]domain.Row{
		{"name": "Ana", "progress": 83.0},
		{"name": "Luis", "progress": nil},
	})

	out, err := renderExport(data)
	require.NoError(t, err)

	rows, err := csv.NewReader(bytes.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, []string{"Empleado", "Avance"}, rows[0])
	// Percentage fields export bare numbers, absent values export empty cells.
	assert.Equal(t, []string{"Ana", "83"}, rows[1])
	assert.Equal(t, []string{"Luis", ""}, rows[2])
}

func TestRenderExport_NoRowCap(t *testing.T) {
	data := progressReport(manyRows(75))

	out, err := renderExport(data)
	require.NoError(t, err)

	rows, err := csv.NewReader(bytes.NewReader(out)).ReadAll()
	require.NoError(t, err)
	assert.Len(t, rows, 76)
}
