// Package output renders the result tables produced by the sqlfront
// commands in several formats.
//
// Every command produces a column header plus rows of string cells;
// formatters only decide how that grid reaches the writer.
//
// # Supported Formats
//
//   - Table: aligned text table for terminals (the default)
//   - JSON Lines: one JSON object per row, keyed by column name
//   - CSV: comma-separated values with a header row
//
// # Basic Usage
//
// Pick a formatter by name:
//
//	formatter, err := output.New("json", os.Stdout)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := formatter.Format(cols, rows); err != nil {
//	    log.Fatal(err)
//	}
//
// or construct one directly:
//
//	formatter := output.NewCSVFormatter(os.Stdout)
//	if err := formatter.Format(cols, rows); err != nil {
//	    log.Fatal(err)
//	}
//
// # Writing to Different Destinations
//
// Change output destination dynamically:
//
//	formatter := output.NewJSONFormatter(os.Stdout)
//
//	file, err := os.Create("result.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer file.Close()
//
//	formatter.SetOutput(file)
//	if err := formatter.Format(cols, rows); err != nil {
//	    log.Fatal(err)
//	}
//
// # Formatter Interface
//
// Implement custom formatters by satisfying the Formatter interface:
//
//	type Formatter interface {
//	    Format(cols []string, rows [][]string) error
//	    SetOutput(w io.Writer)
//	}
//
// # CSV Hardening
//
// Cells that would be interpreted as formulas by spreadsheet
// applications are prefixed with a quote before writing, so exported
// CSV files stay inert when opened elsewhere.
package output
