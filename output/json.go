package output

import (
	"encoding/json"
	"io"
)

// JSONFormatter outputs rows as JSON Lines format
type JSONFormatter struct {
	writer io.Writer
}

// NewJSONFormatter creates a new JSON Lines formatter
func NewJSONFormatter(w io.Writer) *JSONFormatter {
	return &JSONFormatter{writer: w}
}

// SetOutput sets the output writer
func (j *JSONFormatter) SetOutput(w io.Writer) {
	j.writer = w
}

// Format writes each row as one JSON object keyed by column name
func (j *JSONFormatter) Format(cols []string, rows [][]string) error {
	encoder := json.NewEncoder(j.writer)
	for _, row := range rows {
		obj := make(map[string]string, len(cols))
		for i, col := range cols {
			if i < len(row) {
				obj[col] = row[i]
			}
		}
		if err := encoder.Encode(obj); err != nil {
			return err
		}
	}
	return nil
}
