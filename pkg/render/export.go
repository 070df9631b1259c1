package render

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/de-tools/learn-atlas/pkg/models/domain"
)

// renderExport serializes the full row set in field-declaration order
// for spreadsheet consumption. Values stay raw: percentage fields are
// bare numbers and absent values are empty cells, not "N/A".
func renderExport(data *domain.ReportData) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := make([]string, 0, len(data.Template.Fields))
	for _, f := range data.Template.Fields {
		header = append(header, f.Label)
	}
	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("write export header: %w", err)
	}

	for _, row := range data.Data {
		cells := make([]string, 0, len(data.Template.Fields))
		for _, f := range data.Template.Fields {
			cells = append(cells, exportValue(row[f.Key]))
		}
		if err := w.Write(cells); err != nil {
			return nil, fmt.Errorf("write export row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush export: %w", err)
	}
	return buf.Bytes(), nil
}
