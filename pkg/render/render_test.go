package render

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/de-tools/learn-atlas/pkg/models/domain"
)

func TestRender_FormatDispatch(t *testing.T) {
	data := progressReport([]domain.Row{{"name": "Ana", "progress": 100.0}})

	tests := []struct {
		format              Format
		expectedContentType string
		expectedFilename    string
	}{
		{FormatText, "text/plain; charset=utf-8", "employee_progress-1.txt"},
		{FormatPrint, "text/html; charset=utf-8", "employee_progress-1.html"},
		{FormatPDF, "text/html; charset=utf-8", "employee_progress-1.html"},
		{FormatCSV, "text/csv; charset=utf-8", "employee_progress-1.csv"},
		{FormatExcel, "application/vnd.ms-excel", "employee_progress-1.xls"},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			artifact, err := Render(data, tt.format, domain.DefaultReportConfig())
			require.NoError(t, err)
			assert.Equal(t, tt.expectedContentType, artifact.ContentType)
			assert.Equal(t, tt.expectedFilename, artifact.Filename)
			assert.NotEmpty(t, artifact.Content)
		})
	}
}

func TestRender_UnknownFormat(t *testing.T) {
	data := progressReport(nil)

	_, err := Render(data, "docx", domain.DefaultReportConfig())
	assert.Error(t, err)
}

func TestRender_PDFAndPrintShareRenderer(t *testing.T) {
	data := progressReport([]domain.Row{{"name": "Ana", "progress": 100.0}})

	pdf, err := Render(data, FormatPDF, domain.DefaultReportConfig())
	require.NoError(t, err)
	printed, err := Render(data, FormatPrint, domain.DefaultReportConfig())
	require.NoError(t, err)

	assert.Equal(t, pdf.Content, printed.Content)
}

func TestRender_Deterministic(t *testing.T) {
	data := progressReport(manyRows(10))
	data.Template.Aggregations = []domain.AggregationSpec{
		{Name: "Total", Reducer: domain.ReducerCount},
	}
	data.Summary.Aggregations = map[string]interface{}{"Total": 10, "b": 2, "a": 1}

	for _, format := range []Format{FormatText, FormatPDF, FormatCSV} {
		first, err := Render(data, format, domain.DefaultReportConfig())
		require.NoError(t, err)
		second, err := Render(data, format, domain.DefaultReportConfig())
		require.NoError(t, err)
		assert.Equal(t, first.Content, second.Content, format)
	}
}

func TestRender_DefaultsIdenticalAcrossRenderers(t *testing.T) {
	data := progressReport([]domain.Row{{"name": "Ana", "progress": 100.0}})

	// A zero-value config and the documented defaults only differ in the
	// boolean toggles; both renderers must read the same normalized view.
	text, err := Render(data, FormatText, domain.DefaultReportConfig())
	require.NoError(t, err)
	html, err := Render(data, FormatPDF, domain.DefaultReportConfig())
	require.NoError(t, err)

	for _, content := range [][]byte{text.Content, html.Content} {
		assert.Contains(t, string(content), copyrightLine)
		assert.Contains(t, string(content), "2025-06-18")
	}
	assert.Contains(t, string(html.Content), "size: letter portrait")
}

func TestPrint_RequiresSurface(t *testing.T) {
	data := progressReport([]domain.Row{{"name": "Ana", "progress": 100.0}})

	err := Print(nil, data, domain.DefaultReportConfig())

	var noSurface *domain.RenderSurfaceError
	require.ErrorAs(t, err, &noSurface)

	var buf bytes.Buffer
	require.NoError(t, Print(&buf, data, domain.DefaultReportConfig()))
	assert.Contains(t, buf.String(), "<td>Ana</td>")
}
