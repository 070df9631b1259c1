package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/de-tools/learn-atlas/pkg/models/domain"
)

func TestRenderHTML_FullRowSetNoCap(t *testing.T) {
	data := progressReport(manyRows(75))

	out, err := renderHTML(data, domain.DefaultReportConfig())
	require.NoError(t, err)
	html := string(out)

	// Header row plus all 75 data rows; the printable document never truncates.
	assert.Equal(t, 76, strings.Count(html, "<tr>"))
	assert.NotContains(t, html, "registros más")
	assert.Contains(t, html, "Total de registros: 75")
}

func TestRenderHTML_CellFormatting(t *testing.T) {
	data := progressReport([]domain.Row{
		{"name": "Ana", "progress": 100.0},
		{"name": "Luis", "progress": nil},
		{"name": "Eva", "progress": 45.0},
	})

	out, err := renderHTML(data, domain.DefaultReportConfig())
	require.NoError(t, err)
	html := string(out)

	assert.Contains(t, html, "<td>100%</td>")
	assert.Contains(t, html, "<td>N/A</td>")
	assert.Contains(t, html, "<td>45%</td>")
	assert.Contains(t, html, "<th>Empleado</th>")
}

func TestRenderHTML_PageSetup(t *testing.T) {
	data := progressReport([]domain.Row{{"name": "Ana", "progress": 1.0}})

	cfg := domain.DefaultReportConfig()
	cfg.PageSize = domain.PageA4
	cfg.Orientation = domain.OrientationLandscape

	out, err := renderHTML(data, cfg)
	require.NoError(t, err)

	assert.Contains(t, string(out), "size: a4 landscape")
}

func TestRenderHTML_Watermark(t *testing.T) {
	data := progressReport([]domain.Row{{"name": "Ana", "progress": 1.0}})

	cfg := domain.DefaultReportConfig()
	cfg.Watermark = "BORRADOR"
	out, err := renderHTML(data, cfg)
	require.NoError(t, err)
	assert.Contains(t, string(out), `<div class="watermark">BORRADOR</div>`)

	out, err = renderHTML(data, domain.DefaultReportConfig())
	require.NoError(t, err)
	assert.NotContains(t, string(out), `class="watermark"`)
}

func TestRenderHTML_ConfigToggles(t *testing.T) {
	data := progressReport([]domain.Row{{"name": "Ana", "progress": 1.0}})

	cfg := domain.DefaultReportConfig()
	cfg.ShowLogo = true
	cfg.CustomStyles = "h1 { color: black; }"
	out, err := renderHTML(data, cfg)
	require.NoError(t, err)
	html := string(out)
	assert.Contains(t, html, `class="logo"`)
	assert.Contains(t, html, "h1 { color: black; }")
	assert.Contains(t, html, copyrightLine)

	cfg = domain.DefaultReportConfig()
	cfg.ShowHeader = false
	cfg.ShowFooter = false
	out, err = renderHTML(data, cfg)
	require.NoError(t, err)
	html = string(out)
	assert.NotContains(t, html, "<header>")
	assert.NotContains(t, html, "<footer>")
	assert.Contains(t, html, "<td>Ana</td>")
}
