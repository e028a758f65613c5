package output

import (
	"fmt"
	"io"
)

// Formatter renders a result grid: a column header and rows of string
// cells.
//
// Implementers must provide Format to write the grid in the target
// format and SetOutput to change the output destination.
type Formatter interface {
	// Format writes rows under the given column header
	Format(cols []string, rows [][]string) error

	// SetOutput changes the output writer
	SetOutput(w io.Writer)
}

// New returns the formatter registered under name: "table", "json" or
// "csv".
func New(name string, w io.Writer) (Formatter, error) {
	switch name {
	case "table":
		return NewTableFormatter(w), nil
	case "json":
		return NewJSONFormatter(w), nil
	case "csv":
		return NewCSVFormatter(w), nil
	default:
		return nil, fmt.Errorf("unknown output format %q (supported: table, json, csv)", name)
	}
}
