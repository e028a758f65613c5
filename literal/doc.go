// Package literal interprets the text of SQL literals after the grammar
// has recognized them.
//
// A scanner hands this package raw literal text, quotes and all, and
// gets back a typed Go value. The package covers the literal kinds a
// SQL front end meets in practice:
//
//   - character strings, including escape decoding for C-style strings
//   - exact numerics with unbounded precision
//   - dates, times and timestamps, with and without time zones
//   - intervals in both the year-month and day-time families
//   - UUIDs
//   - collation names of the form charset$locale$strength
//
// # Strings and escapes
//
// ParseString unwraps a quoted SQL string, honoring the doubled-quote
// convention:
//
//	s := literal.ParseString("'it''s'")
//	// s == "it's"
//
// ParseCString additionally decodes backslash escapes the way C-style
// string literals spell them:
//
//	s, err := literal.ParseCString(`'tab\there'`)
//	// s == "tab\there"
//
// DecodeEscapes is the underlying decoder. It understands the single
// character escapes \b \f \n \r \t \\ \', Unicode escapes \uXXXX and
// \UXXXXXXXX, hex escapes \x up to two digits, and octal escapes up to
// three digits. A malformed Unicode escape fails with a
// MalformedEscapeError carrying the byte offset of its backslash.
//
// # Dates and times
//
// Temporal parsers accept the ISO-style formats "2006-01-02",
// "15:04:05" and "2006-01-02 15:04:05" with an optional fractional
// second part. The fraction's digit count is preserved as the value's
// precision:
//
//	pt, err := literal.ParseTime("12:34:56.789", -1)
//	// pt.Precision == 3
//
// The zoned variants expect a zone suffix after the last space, either
// an IANA name or a fixed offset such as "+05:30". An unresolvable
// zone is an error, never a silent fallback.
//
// # Intervals
//
// Interval text is validated against a Qualifier describing its field
// range, then converted to a total magnitude:
//
//	q, _ := literal.NewQualifier(literal.UnitDay, literal.UnitSecond)
//	iv, _ := literal.ParseInterval(1, "1 2:3:4.5", q)
//	ms, _ := iv.Millis()
//	// ms == 93784500
//
// Year-month intervals convert to months instead. Asking a year-month
// interval for milliseconds, or a day-time interval for months, is a
// programming error and panics.
//
// # Configuration
//
// Behavior that depends on the surrounding dialect, such as the
// character set implied by N'...' literals, comes from a Config value.
// DefaultConfig supplies standard defaults; callers needing different
// ones pass their own Config to the functions that take one.
package literal
