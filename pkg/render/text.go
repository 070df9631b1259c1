package render

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/de-tools/learn-atlas/pkg/models/domain"
)

// textRowCap bounds the dense log-style text output. The printable HTML
// document has no cap; keep the asymmetry.
const textRowCap = 50

const columnDelimiter = " | "

const copyrightLine = "© Plataforma de Capacitación Corporativa"

const textTemplate = `{{range .HeaderLines}}{{.}}
{{end}}{{if .FilterLines}}
Filtros aplicados:
{{range .FilterLines}}  {{.}}
{{end}}{{end}}
{{.ColumnHeader}}
{{.Separator}}
{{range .RowLines}}{{.}}
{{end}}{{if .Marker}}{{.Marker}}
{{end}}{{if .SummaryLines}}
Resumen:
{{range .SummaryLines}}  {{.}}
{{end}}{{end}}{{if .FooterLines}}
{{range .FooterLines}}{{.}}
{{end}}{{end}}`

type textView struct {
	HeaderLines  []string
	FilterLines  []string
	ColumnHeader string
	Separator    string
	RowLines     []string
	Marker       string
	SummaryLines []string
	FooterLines  []string
}

func renderText(data *domain.ReportData, cfg domain.ReportConfig) ([]byte, error) {
	view := textView{
		HeaderLines: textHeader(data, cfg),
		FilterLines: filterLines(data.Filters),
	}

	labels := make([]string, 0, len(data.Template.Fields))
	for _, f := range data.Template.Fields {
		labels = append(labels, f.Label)
	}
	view.ColumnHeader = strings.Join(labels, columnDelimiter)
	view.Separator = strings.Repeat("-", len([]rune(view.ColumnHeader)))

	shown := len(data.Data)
	if shown > textRowCap {
		shown = textRowCap
	}
	for _, row := range data.Data[:shown] {
		cells := make([]string, 0, len(data.Template.Fields))
		for _, f := range data.Template.Fields {
			cells = append(cells, formatValue(row[f.Key], f.Type))
		}
		view.RowLines = append(view.RowLines, strings.Join(cells, columnDelimiter))
	}

	total := len(data.Data)
	if data.Summary != nil {
		total = data.Summary.TotalRecords
	}
	if total > textRowCap {
		view.Marker = fmt.Sprintf("... y %d registros más", total-textRowCap)
	}

	if lines := aggregationLines(data); len(lines) > 0 {
		view.SummaryLines = append([]string{fmt.Sprintf("Total de registros: %d", total)}, lines...)
	} else if data.Summary != nil {
		view.SummaryLines = []string{fmt.Sprintf("Total de registros: %d", total)}
	}

	view.FooterLines = textFooter(data, cfg)

	t, err := template.New("report").Parse(textTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse text template: %w", err)
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, view); err != nil {
		return nil, fmt.Errorf("failed to render text report: %w", err)
	}
	return buf.Bytes(), nil
}

func textHeader(data *domain.ReportData, cfg domain.ReportConfig) []string {
	if !cfg.ShowHeader {
		return nil
	}

	lines := []string{
		data.Template.Name,
		data.Template.Description,
		fmt.Sprintf("Generado: %s por %s",
			data.GeneratedAt.Format("2006-01-02 15:04"), data.GeneratedBy),
	}
	if cfg.Watermark != "" {
		lines = append(lines, fmt.Sprintf("*** %s ***", cfg.Watermark))
	}
	return lines
}

// filterLines lists only the non-empty filter dimensions. The date range
// is shown by its preset name, never the raw bounds.
func filterLines(f domain.ReportFilter) []string {
	var lines []string

	if f.DateRange != nil {
		lines = append(lines, fmt.Sprintf("Período: %s", f.DateRange.Preset))
	}
	if len(f.Departments) > 0 {
		lines = append(lines, fmt.Sprintf("Departamentos: %s", strings.Join(f.Departments, ", ")))
	}
	if len(f.CourseIDs) > 0 {
		lines = append(lines, fmt.Sprintf("Cursos: %s", strings.Join(f.CourseIDs, ", ")))
	}
	if len(f.UserIDs) > 0 {
		lines = append(lines, fmt.Sprintf("Usuarios: %s", strings.Join(f.UserIDs, ", ")))
	}
	if len(f.Status) > 0 {
		statuses := make([]string, 0, len(f.Status))
		for _, s := range f.Status {
			statuses = append(statuses, string(s))
		}
		lines = append(lines, fmt.Sprintf("Estados: %s", strings.Join(statuses, ", ")))
	}
	if f.MinProgress != nil {
		lines = append(lines, fmt.Sprintf("Avance mínimo: %s%%", formatScalar(*f.MinProgress)))
	}
	if f.MaxProgress != nil {
		lines = append(lines, fmt.Sprintf("Avance máximo: %s%%", formatScalar(*f.MaxProgress)))
	}

	return lines
}

func textFooter(data *domain.ReportData, cfg domain.ReportConfig) []string {
	if !cfg.ShowFooter {
		return nil
	}

	lines := []string{copyrightLine}
	if cfg.ShowPageNumbers {
		lines = append(lines, "Página 1 de 1")
	}
	if cfg.ShowGenerationDate {
		lines = append(lines, fmt.Sprintf("Fecha de generación: %s",
			data.GeneratedAt.Format("2006-01-02")))
	}
	return lines
}
