package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
)

// CSVExporter renders documents into CSV bytes.
type CSVExporter struct{}

// NewCSVExporter builds a CSV exporter.
func NewCSVExporter() *CSVExporter {
	return &CSVExporter{}
}

// Render writes each section as a header row plus records. Multi-section
// documents prefix every section with its title and separate them with a blank row.
func (e *CSVExporter) Render(doc Document) ([]byte, error) {
	if err := doc.validate(); err != nil {
		return nil, err
	}
	buf := &bytes.Buffer{}
	writer := csv.NewWriter(buf)
	multi := len(doc.Sections) > 1
	for i, section := range doc.Sections {
		if multi {
			if i > 0 {
				if err := writer.Write([]string{""}); err != nil {
					return nil, fmt.Errorf("write csv separator: %w", err)
				}
			}
			if err := writer.Write([]string{section.Title}); err != nil {
				return nil, fmt.Errorf("write csv section title: %w", err)
			}
		}
		if err := writer.Write(section.Data.Headers); err != nil {
			return nil, fmt.Errorf("write csv headers: %w", err)
		}
		for _, row := range section.Data.Rows {
			record := make([]string, len(section.Data.Headers))
			for j, header := range section.Data.Headers {
				record[j] = row[header]
			}
			if err := writer.Write(record); err != nil {
				return nil, fmt.Errorf("write csv row: %w", err)
			}
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return buf.Bytes(), nil
}
