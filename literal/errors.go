package literal

import "fmt"

// MalformedEscapeError reports an escape sequence that cannot be
// decoded.
type MalformedEscapeError struct {
	// Offset is the byte offset of the backslash that starts the
	// malformed sequence.
	Offset int
}

func (e *MalformedEscapeError) Error() string {
	return fmt.Sprintf("malformed escape sequence at offset %d", e.Offset)
}

// IllegalLiteralError reports literal text that does not parse as the
// kind of value its syntax promised.
type IllegalLiteralError struct {
	Kind string // literal kind, e.g. "DATE" or "DECIMAL"
	Text string
	Hint string // expected layout, empty when the kind has none
}

func (e *IllegalLiteralError) Error() string {
	if e.Hint == "" {
		return fmt.Sprintf("invalid %s literal %q", e.Kind, e.Text)
	}
	return fmt.Sprintf("illegal %s literal %q: not in format %q", e.Kind, e.Text, e.Hint)
}

// IllegalIntervalError reports interval text that its qualifier cannot
// evaluate.
type IllegalIntervalError struct {
	Text      string
	Qualifier string
	Err       error // underlying field error, nil for empty text
}

func (e *IllegalIntervalError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("illegal interval literal '%s' %s", e.Text, e.Qualifier)
	}
	return fmt.Sprintf("illegal interval literal '%s' %s: %v", e.Text, e.Qualifier, e.Err)
}

func (e *IllegalIntervalError) Unwrap() error { return e.Err }

// InvalidUUIDError reports text that is not a UUID.
type InvalidUUIDError struct {
	Text string
	Err  error
}

func (e *InvalidUUIDError) Error() string {
	return fmt.Sprintf("invalid UUID literal %q: %v", e.Text, e.Err)
}

func (e *InvalidUUIDError) Unwrap() error { return e.Err }

// InvalidLocaleError reports a collation locale that is not a
// well-formed language tag.
type InvalidLocaleError struct {
	Text string
}

func (e *InvalidLocaleError) Error() string {
	return fmt.Sprintf("invalid locale format %q", e.Text)
}

// UnicodeEscapeCharError reports an unusable UESCAPE character.
type UnicodeEscapeCharError struct {
	Text string
}

func (e *UnicodeEscapeCharError) Error() string {
	if len([]rune(e.Text)) != 1 {
		return fmt.Sprintf("unicode escape character must be exactly one character, got %q", e.Text)
	}
	return fmt.Sprintf("unicode escape character %q must not be a digit, whitespace, plus sign, double quote, or hex digit", e.Text)
}
