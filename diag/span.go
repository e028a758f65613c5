// Package diag locates tokens and expressions in SQL source text and
// renders positions back to users.
//
// Positions are one-based (line, column) pairs. A Span covers a region
// from a start position to an inclusive end position; a zero-width
// span marks a single point. Spans from neighboring tokens merge with
// Union, which is how a parser grows the position of a composite
// expression out of its parts.
//
// For error reporting, Carets reproduces the offending source with the
// failing region marked:
//
//	diag.Carets("values (foo)", diag.Range(1, 9, 1, 12))
//
// yields
//
//	values (^foo^)
package diag

import "fmt"

// Span is a region of source text, from (Line, Col) to the inclusive
// (EndLine, EndCol). The zero Span means "no position".
type Span struct {
	Line    int
	Col     int
	EndLine int
	EndCol  int
}

// Point returns a zero-width span at a single position.
func Point(line, col int) Span {
	return Span{Line: line, Col: col, EndLine: line, EndCol: col}
}

// Range returns a span covering the given region.
func Range(line, col, endLine, endCol int) Span {
	return Span{Line: line, Col: col, EndLine: endLine, EndCol: endCol}
}

// IsZero reports whether the span carries no position.
func (s Span) IsZero() bool {
	return s == Span{}
}

// Union returns the smallest span covering both s and o. A zero span
// is the identity: union with it returns the other span unchanged.
func (s Span) Union(o Span) Span {
	if s.IsZero() {
		return o
	}
	if o.IsZero() {
		return s
	}
	if before(o.Line, o.Col, s.Line, s.Col) {
		s.Line, s.Col = o.Line, o.Col
	}
	if before(s.EndLine, s.EndCol, o.EndLine, o.EndCol) {
		s.EndLine, s.EndCol = o.EndLine, o.EndCol
	}
	return s
}

func before(l1, c1, l2, c2 int) bool {
	return l1 < l2 || l1 == l2 && c1 < c2
}

// String renders the span the way parse errors quote positions, e.g.
// "line 1, column 9" or "line 1, column 9 through line 1, column 12".
func (s Span) String() string {
	if s.Line == s.EndLine && s.Col == s.EndCol {
		return fmt.Sprintf("line %d, column %d", s.Line, s.Col)
	}
	return fmt.Sprintf("line %d, column %d through line %d, column %d",
		s.Line, s.Col, s.EndLine, s.EndCol)
}

// Carets marks the region sp covers in sql with caret characters.
func Carets(sql string, sp Span) string {
	return AddCarets(sql, sp.Line, sp.Col, sp.EndLine, sp.EndCol)
}
