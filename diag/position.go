package diag

import "strings"

// IndexToLineCol converts a byte offset in s to a one-based line and
// column pair.
func IndexToLineCol(s string, i int) (line, col int) {
	j := 0
	for {
		prevj := j
		j = NextLine(s, j)
		if j < 0 || j > i {
			return line + 1, i - prevj + 1
		}
		line++
	}
}

// LineColToIndex converts a one-based line and column pair to a byte
// offset in s. It is the inverse of IndexToLineCol for positions that
// lie inside the text.
func LineColToIndex(s string, line, col int) int {
	line--
	col--
	i := 0
	for ; line > 0; line-- {
		i = NextLine(s, i)
	}
	return i + col
}

// NextLine returns the offset just past the line terminator that ends
// the line containing offset j, or -1 when no terminator follows.
// "\r\n", "\r" and "\n" all terminate lines, with "\r\n" taking
// priority when terminators share a starting offset.
func NextLine(s string, j int) int {
	rn := indexFrom(s, "\r\n", j)
	r := indexFrom(s, "\r", j)
	n := indexFrom(s, "\n", j)
	switch {
	case r < 0 && n < 0:
		return -1
	case rn >= 0 && (n < 0 || rn < n) && rn <= r:
		return rn + 2
	case r >= 0 && (n < 0 || r < n):
		return r + 1
	default:
		return n + 1
	}
}

func indexFrom(s, sub string, from int) int {
	if from < 0 {
		from = 0
	}
	if from > len(s) {
		return -1
	}
	i := strings.Index(s[from:], sub)
	if i < 0 {
		return -1
	}
	return from + i
}

// EscapeCarets doubles every caret in s so that carets inserted later
// by AddCarets remain unambiguous.
func EscapeCarets(s string) string {
	return strings.ReplaceAll(s, "^", "^^")
}

// AddCarets marks the region of s between (line, col) and (endLine,
// endCol) with caret characters. A zero-width region yields a single
// caret before the position; a wider region gets a caret at each end.
// Carets already present in s are doubled first.
func AddCarets(s string, line, col, endLine, endCol int) string {
	cut := LineColToIndex(s, line, col)
	out := EscapeCarets(s[:cut]) + "^" + EscapeCarets(s[cut:])
	if col != endCol || line != endLine {
		// The end position is located in the marked text so that the
		// caret col/endCol arithmetic stays consistent on a shared line.
		cut = LineColToIndex(out, endLine, endCol)
		if line == endLine {
			cut++
		}
		if cut < len(out) {
			out = out[:cut] + "^" + out[cut:]
		} else {
			out += "^"
		}
	}
	return out
}
