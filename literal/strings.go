package literal

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
)

// Casing selects how unquoted text is folded.
type Casing int

const (
	// CasingUnchanged leaves the text as written.
	CasingUnchanged Casing = iota
	// CasingUpper folds the text to upper case.
	CasingUpper
	// CasingLower folds the text to lower case.
	CasingLower
)

// ToCase folds s according to casing.
func ToCase(s string, casing Casing) string {
	switch casing {
	case CasingUpper:
		return strings.ToUpper(s)
	case CasingLower:
		return strings.ToLower(s)
	default:
		return s
	}
}

// ParseString unquotes the body of a SQL character literal, undoubling
// embedded quotes. Text before the opening quote, such as a character
// set prefix, is ignored:
//
//	ParseString("_UTF8'it''s'") == "it's"
func ParseString(s string) string {
	if i := strings.Index(s, "'"); i > 0 {
		s = s[i:]
	}
	return Strip(s, "'", "'", "''", CasingUnchanged)
}

// ParseCString unquotes a SQL character literal and decodes its
// backslash escapes.
func ParseCString(s string) (string, error) {
	return DecodeEscapes(ParseString(s))
}

// CharacterSet extracts the character set prefix of a character
// literal. A plain quoted string has none; the national-string prefix
// N resolves through config.
func CharacterSet(s string, config Config) string {
	if s == "" || s[0] == '\'' {
		return ""
	}
	if s[0] == 'N' || s[0] == 'n' {
		return config.NationalCharset
	}
	i := strings.Index(s, "'")
	if i <= 1 {
		return ""
	}
	// Skip the leading underscore of an explicit _charset prefix.
	return s[1:i]
}

// Strip unquotes and case-folds an identifier or literal. When
// startQuote is empty the text is unquoted already and only the casing
// applies.
func Strip(s, startQuote, endQuote, escape string, casing Casing) string {
	if startQuote != "" {
		return StripQuotes(s, startQuote, endQuote, escape, casing)
	}
	return ToCase(s, casing)
}

// StripQuotes removes one leading and one trailing quote character,
// replaces the escape sequence with the end quote, and case-folds the
// result.
func StripQuotes(s, startQuote, endQuote, escape string, casing Casing) string {
	s = strings.ReplaceAll(s[len(startQuote):len(s)-len(endQuote)], escape, endQuote)
	return ToCase(s, casing)
}

// ParsePositiveInt parses s as a positive integer, rejecting a leading
// minus sign before the usual integer syntax check.
func ParsePositiveInt(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" || s[0] == '-' {
		return 0, fmt.Errorf("invalid positive integer %q", s)
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid positive integer %q", s)
	}
	return n, nil
}

// ParseBinaryString decodes the hex digits of a binary literal such as
// x'AB CD', ignoring whitespace and quote characters. The digit count
// must be even.
func ParseBinaryString(s string) ([]byte, error) {
	s = binaryCleaner.Replace(s)
	if s == "" {
		return []byte{}, nil
	}
	if len(s)%2 != 0 {
		return nil, fmt.Errorf("binary literal %q must have an even number of hex digits", s)
	}
	out, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("binary literal %q: %w", s, err)
	}
	return out, nil
}

var binaryCleaner = strings.NewReplacer(
	" ", "", "\n", "", "\t", "", "\r", "", "\f", "", "'", "",
)
