package render

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/de-tools/learn-atlas/pkg/models/domain"
)

const htmlTemplate = `<!DOCTYPE html>
<html lang="es">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
@page { size: {{.PageSize}} {{.Orientation}}; margin: 18mm; }
body { font-family: "Segoe UI", Arial, sans-serif; color: #1f2733; margin: 0; }
header { border-bottom: 2px solid #2b5e92; padding-bottom: 8px; margin-bottom: 16px; }
header h1 { margin: 0 0 4px 0; font-size: 22px; color: #2b5e92; }
header p { margin: 2px 0; font-size: 12px; color: #5a6572; }
.logo { font-weight: 700; font-size: 14px; color: #2b5e92; letter-spacing: 1px; }
.watermark {
  position: fixed; top: 50%; left: 50%;
  transform: translate(-50%, -50%) rotate(-45deg);
  font-size: 88px; color: #2b5e92; opacity: 0.08;
  white-space: nowrap; pointer-events: none; z-index: 0;
}
table { width: 100%; border-collapse: collapse; font-size: 12px; }
th { background: #2b5e92; color: #fff; text-align: left; padding: 6px 8px; }
td { padding: 5px 8px; border-bottom: 1px solid #dde3ea; }
tbody tr:nth-child(even) { background: #f3f6fa; }
.summary { margin-top: 16px; padding: 10px 12px; background: #f3f6fa; font-size: 12px; }
.summary h2 { margin: 0 0 6px 0; font-size: 14px; color: #2b5e92; }
.summary li { margin: 2px 0; }
footer { margin-top: 24px; border-top: 1px solid #dde3ea; padding-top: 6px;
  font-size: 10px; color: #5a6572; display: flex; justify-content: space-between; }
{{.CustomStyles}}
</style>
</head>
<body>
{{if .Watermark}}<div class="watermark">{{.Watermark}}</div>{{end}}
{{if .ShowHeader}}<header>
{{if .ShowLogo}}<div class="logo">LEARN ATLAS</div>{{end}}
<h1>{{.Title}}</h1>
<p>{{.Description}}</p>
<p>Generado: {{.GeneratedAt}} por {{.GeneratedBy}}</p>
{{if .FilterLines}}<p>Filtros: {{range $i, $l := .FilterLines}}{{if $i}} · {{end}}{{$l}}{{end}}</p>{{end}}
</header>{{end}}
<table>
<thead>
<tr>{{range .Columns}}<th{{with .Width}} style="width: {{.}}px"{{end}}>{{.Label}}</th>{{end}}</tr>
</thead>
<tbody>
{{range .Rows}}<tr>{{range .}}<td>{{.}}</td>{{end}}</tr>
{{end}}</tbody>
</table>
{{if .SummaryLines}}<div class="summary">
<h2>Resumen</h2>
<ul>
{{range .SummaryLines}}<li>{{.}}</li>
{{end}}</ul>
{{range .ChartTitles}}<p>Gráfico: {{.}}</p>
{{end}}</div>{{end}}
{{if .ShowFooter}}<footer>
<span>{{.Copyright}}</span>
{{if .ShowPageNumbers}}<span>Página 1</span>{{end}}
{{if .ShowGenerationDate}}<span>{{.GenerationDate}}</span>{{end}}
</footer>{{end}}
</body>
</html>
`

type htmlColumn struct {
	Label string
	Width int
}

type htmlView struct {
	Title              string
	Description        string
	GeneratedAt        string
	GeneratedBy        string
	FilterLines        []string
	Columns            []htmlColumn
	Rows               [][]string
	SummaryLines       []string
	ChartTitles        []string
	PageSize           string
	Orientation        string
	Watermark          string
	CustomStyles       template.CSS
	ShowHeader         bool
	ShowFooter         bool
	ShowLogo           bool
	ShowPageNumbers    bool
	ShowGenerationDate bool
	Copyright          string
	GenerationDate     string
}

// renderHTML produces the printable document. Unlike the text renderer
// it always emits the full row set; truncation would change what a
// printed report certifies.
func renderHTML(data *domain.ReportData, cfg domain.ReportConfig) ([]byte, error) {
	view := htmlView{
		Title:              data.Template.Name,
		Description:        data.Template.Description,
		GeneratedAt:        data.GeneratedAt.Format("2006-01-02 15:04"),
		GeneratedBy:        data.GeneratedBy,
		FilterLines:        filterLines(data.Filters),
		PageSize:           string(cfg.PageSize),
		Orientation:        string(cfg.Orientation),
		Watermark:          cfg.Watermark,
		CustomStyles:       template.CSS(cfg.CustomStyles),
		ShowHeader:         cfg.ShowHeader,
		ShowFooter:         cfg.ShowFooter,
		ShowLogo:           cfg.ShowLogo,
		ShowPageNumbers:    cfg.ShowPageNumbers,
		ShowGenerationDate: cfg.ShowGenerationDate,
		Copyright:          copyrightLine,
		GenerationDate:     data.GeneratedAt.Format("2006-01-02"),
	}

	for _, f := range data.Template.Fields {
		view.Columns = append(view.Columns, htmlColumn{Label: f.Label, Width: f.Width})
	}

	for _, row := range data.Data {
		cells := make([]string, 0, len(data.Template.Fields))
		for _, f := range data.Template.Fields {
			cells = append(cells, formatValue(row[f.Key], f.Type))
		}
		view.Rows = append(view.Rows, cells)
	}

	if data.Summary != nil {
		view.SummaryLines = append(view.SummaryLines,
			fmt.Sprintf("Total de registros: %d", data.Summary.TotalRecords))
		view.SummaryLines = append(view.SummaryLines, aggregationLines(data)...)
		for _, c := range data.Summary.Charts {
			view.ChartTitles = append(view.ChartTitles, c.Title)
		}
	}

	t, err := template.New("report").Parse(htmlTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse html template: %w", err)
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, view); err != nil {
		return nil, fmt.Errorf("failed to render html report: %w", err)
	}
	return buf.Bytes(), nil
}
