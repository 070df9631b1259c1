// Package render turns generated report data plus a presentation config
// into concrete output artifacts. Renderers are pure: the same report
// and config always produce the same bytes.
package render

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"time"

	"github.com/de-tools/learn-atlas/pkg/models/domain"
)

// Format selects one of the closed set of output renderers.
type Format string

const (
	FormatText  Format = "text"
	FormatPrint Format = "print"
	FormatPDF   Format = "pdf"
	FormatCSV   Format = "csv"
	FormatExcel Format = "excel"
)

// Artifact is a rendered report ready to hand to a caller. The print
// and pdf formats produce an HTML document meant for a browser's native
// print-to-PDF path; no binary PDF encoding happens here.
type Artifact struct {
	ContentType string
	Filename    string
	Content     []byte
}

// Render dispatches on the format tag. pdf and print share the HTML
// renderer; csv and excel share the export renderer and differ only in
// the artifact envelope.
func Render(data *domain.ReportData, format Format, cfg domain.ReportConfig) (*Artifact, error) {
	cfg = cfg.Normalized()

	switch format {
	case FormatText:
		content, err := renderText(data, cfg)
		if err != nil {
			return nil, err
		}
		return &Artifact{
			ContentType: "text/plain; charset=utf-8",
			Filename:    data.ID + ".txt",
			Content:     content,
		}, nil

	case FormatPrint, FormatPDF:
		content, err := renderHTML(data, cfg)
		if err != nil {
			return nil, err
		}
		return &Artifact{
			ContentType: "text/html; charset=utf-8",
			Filename:    data.ID + ".html",
			Content:     content,
		}, nil

	case FormatCSV:
		content, err := renderExport(data)
		if err != nil {
			return nil, err
		}
		return &Artifact{
			ContentType: "text/csv; charset=utf-8",
			Filename:    data.ID + ".csv",
			Content:     content,
		}, nil

	case FormatExcel:
		content, err := renderExport(data)
		if err != nil {
			return nil, err
		}
		return &Artifact{
			ContentType: "application/vnd.ms-excel",
			Filename:    data.ID + ".xls",
			Content:     content,
		}, nil

	default:
		return nil, fmt.Errorf("unsupported render format %q", format)
	}
}

// Print renders the printable document straight onto an output surface.
// A missing surface is an explicit failure, never a silent no-op; the
// report stays valid and re-renderable in another format.
func Print(w io.Writer, data *domain.ReportData, cfg domain.ReportConfig) error {
	if w == nil {
		return &domain.RenderSurfaceError{Format: "print"}
	}

	artifact, err := Render(data, FormatPrint, cfg)
	if err != nil {
		return err
	}

	if _, err := w.Write(artifact.Content); err != nil {
		return fmt.Errorf("write print surface: %w", err)
	}
	return nil
}

// missingValue is what both display renderers print for absent data.
const missingValue = "N/A"

// formatValue renders one cell for display output. Percentage fields get
// the "%" suffix here, never in the assembler.
func formatValue(v interface{}, t domain.FieldType) string {
	if v == nil {
		return missingValue
	}

	switch t {
	case domain.FieldPercentage:
		return formatScalar(v) + "%"
	case domain.FieldDate:
		if ts, ok := v.(time.Time); ok {
			return ts.Format("2006-01-02")
		}
		return formatScalar(v)
	default:
		return formatScalar(v)
	}
}

// exportValue renders one cell for spreadsheet output: raw values, no
// cosmetic formatting, empty cell for absent data.
func exportValue(v interface{}) string {
	if v == nil {
		return ""
	}
	if ts, ok := v.(time.Time); ok {
		return ts.Format(time.RFC3339)
	}
	return formatScalar(v)
}

func formatScalar(v interface{}) string {
	switch n := v.(type) {
	case float64:
		return strconv.FormatFloat(n, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(n), 'f', -1, 32)
	case time.Time:
		return n.Format("2006-01-02")
	default:
		return fmt.Sprintf("%v", v)
	}
}

// aggregationLines returns "name: value" pairs in template declaration
// order so output stays deterministic.
func aggregationLines(data *domain.ReportData) []string {
	if data.Summary == nil || len(data.Summary.Aggregations) == 0 {
		return nil
	}

	lines := make([]string, 0, len(data.Summary.Aggregations))
	seen := make(map[string]struct{}, len(data.Summary.Aggregations))

	for _, spec := range data.Template.Aggregations {
		if v, ok := data.Summary.Aggregations[spec.Name]; ok {
			lines = append(lines, fmt.Sprintf("%s: %s", spec.Name, formatScalar(v)))
			seen[spec.Name] = struct{}{}
		}
	}

	// Aggregations without a declared spec (ad hoc callers) come last.
	rest := make([]string, 0)
	for name, v := range data.Summary.Aggregations {
		if _, ok := seen[name]; !ok {
			rest = append(rest, fmt.Sprintf("%s: %s", name, formatScalar(v)))
		}
	}
	sort.Strings(rest)

	return append(lines, rest...)
}
