package literal

import (
	"strconv"
	"strings"
	"unicode"
)

// DecodeEscapes decodes C-style backslash escapes in s.
//
// Recognized sequences are \b \f \n \r \t, \\ and \', \uXXXX with four
// hex digits, \UXXXXXXXX with eight, \x followed by up to two hex
// digits, and octal escapes of up to three digits starting with 0-3. A
// backslash before any other character decodes to itself, as does a
// trailing backslash. Unicode escapes with too few digits or a value
// beyond the Unicode range fail with a MalformedEscapeError.
func DecodeEscapes(s string) (string, error) {
	if len(s) <= 1 {
		return s, nil
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' || i+1 >= len(s) {
			b.WriteByte(c)
			continue
		}
		switch next := s[i+1]; next {
		case 'b':
			b.WriteByte('\b')
			i++
		case 'f':
			b.WriteByte('\f')
			i++
		case 'n':
			b.WriteByte('\n')
			i++
		case 'r':
			b.WriteByte('\r')
			i++
		case 't':
			b.WriteByte('\t')
			i++
		case '\\', '\'':
			b.WriteByte(next)
			i++
		case 'u', 'U':
			n := 4
			if next == 'U' {
				n = 8
			}
			if i+1+n >= len(s) {
				return "", &MalformedEscapeError{Offset: i}
			}
			end := matchWhile(s, i+2, n, isHexDigit)
			if end != i+2+n {
				return "", &MalformedEscapeError{Offset: i}
			}
			v, err := strconv.ParseUint(s[i+2:end], 16, 32)
			if err != nil || v > unicode.MaxRune {
				return "", &MalformedEscapeError{Offset: i}
			}
			b.WriteRune(rune(v))
			i = end - 1
		case 'x':
			end := matchWhile(s, i+2, 2, isHexDigit)
			if end > i+2 {
				v, _ := strconv.ParseUint(s[i+2:end], 16, 16)
				b.WriteRune(rune(v))
				i = end - 1
			} else {
				// No hex digits follow, so "\x" stands for itself.
				b.WriteByte(next)
				i++
			}
		case '0', '1', '2', '3':
			end := matchWhile(s, i+2, 2, isOctalDigit)
			v, _ := strconv.ParseUint(s[i+1:end], 8, 16)
			b.WriteRune(rune(v))
			i = end - 1
		default:
			b.WriteByte(c)
		}
	}
	return b.String(), nil
}

// matchWhile returns the index of the first byte at or after begin that
// fails pred, scanning at most max bytes and never past the end of s.
func matchWhile(s string, begin, max int, pred func(byte) bool) int {
	end := begin + max
	if len(s) < end {
		end = len(s)
	}
	i := begin
	for i < end && pred(s[i]) {
		i++
	}
	return i
}

func isHexDigit(c byte) bool {
	return c >= '0' && c <= '9' || c >= 'a' && c <= 'f' || c >= 'A' && c <= 'F'
}

func isOctalDigit(c byte) bool {
	return c >= '0' && c <= '7'
}

// CheckUnicodeEscapeChar validates a UESCAPE clause's escape character:
// it must be exactly one character and must not be a digit, whitespace,
// the plus sign, a double quote, or a hex letter.
func CheckUnicodeEscapeChar(s string) (rune, error) {
	runes := []rune(s)
	if len(runes) != 1 {
		return 0, &UnicodeEscapeCharError{Text: s}
	}
	c := runes[0]
	if unicode.IsDigit(c) || unicode.IsSpace(c) || c == '+' || c == '"' ||
		c >= 'a' && c <= 'f' || c >= 'A' && c <= 'F' {
		return 0, &UnicodeEscapeCharError{Text: s}
	}
	return c, nil
}
