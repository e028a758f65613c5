package output

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// CSVFormatter outputs rows as CSV format
type CSVFormatter struct {
	writer io.Writer
}

// NewCSVFormatter creates a new CSV formatter
func NewCSVFormatter(w io.Writer) *CSVFormatter {
	return &CSVFormatter{writer: w}
}

// SetOutput sets the output writer
func (c *CSVFormatter) SetOutput(w io.Writer) {
	c.writer = w
}

// Format writes the header row followed by the data rows
func (c *CSVFormatter) Format(cols []string, rows [][]string) error {
	csvWriter := csv.NewWriter(c.writer)

	if err := csvWriter.Write(cols); err != nil {
		return err
	}
	for _, row := range rows {
		record := make([]string, len(row))
		for i, cell := range row {
			record[i] = sanitizeCell(cell)
		}
		if err := csvWriter.Write(record); err != nil {
			return err
		}
	}

	csvWriter.Flush()
	if err := csvWriter.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV writer: %w", err)
	}
	return nil
}

// sanitizeCell guards against CSV injection by prefixing characters
// that could trigger formula execution in spreadsheet applications.
func sanitizeCell(cell string) string {
	if len(cell) == 0 {
		return cell
	}
	switch cell[0] {
	case '=', '@', '\t', '\r', '\n', '|':
		// Escape existing single quotes and prefix with a quote to
		// prevent formula interpretation
		return "'" + strings.ReplaceAll(cell, "'", "''")
	}
	return cell
}
