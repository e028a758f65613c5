package literal

import (
	"strconv"
	"strings"
	"time"
)

// Layouts accepted by the temporal parsers.
const (
	DateFormat      = "2006-01-02"
	TimeFormat      = "15:04:05"
	TimestampFormat = "2006-01-02 15:04:05"
)

// PrecisionTime is a decoded temporal value together with the
// fractional-second text it was written with. Precision is the number
// of fractional digits kept.
type PrecisionTime struct {
	Time      time.Time
	Fraction  string
	Precision int
}

func (pt PrecisionTime) render(layout string, zoned bool) string {
	out := pt.Time.Format(layout)
	if pt.Precision > 0 {
		out += "." + pt.Fraction
	}
	if zoned {
		out += " " + pt.Time.Location().String()
	}
	return out
}

// ParseDate parses a date literal's body in the format "2006-01-02".
func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateFormat, strings.TrimSpace(s), time.UTC)
	if err != nil {
		return time.Time{}, &IllegalLiteralError{Kind: "DATE", Text: s, Hint: DateFormat}
	}
	return t, nil
}

// ParseTime parses a time literal's body in the format "15:04:05" with
// an optional fraction. Fractional digits beyond maxPrecision are
// truncated; a negative maxPrecision keeps them all.
func ParseTime(s string, maxPrecision int) (PrecisionTime, error) {
	pt, ok := parsePrecisionDateTime(s, TimeFormat, time.UTC, maxPrecision)
	if !ok {
		return PrecisionTime{}, &IllegalLiteralError{Kind: "TIME", Text: s, Hint: TimeFormat}
	}
	return pt, nil
}

// ParseTimestamp parses a timestamp literal's body in the format
// "2006-01-02 15:04:05" with an optional fraction. A bare date is
// accepted and means midnight.
func ParseTimestamp(s string, maxPrecision int) (PrecisionTime, error) {
	return parseTimestampKind("TIMESTAMP", s, time.UTC, maxPrecision)
}

// ParseTimeTz parses a time literal whose body carries a trailing time
// zone, such as "12:34:56.789 America/New_York". The zone may be an
// IANA name or a fixed offset like "+05:30"; an unresolvable zone is
// an error.
func ParseTimeTz(s string, maxPrecision int) (PrecisionTime, error) {
	if i := strings.LastIndex(s, " "); i >= 0 {
		if loc := resolveZone(strings.TrimSpace(s[i+1:])); loc != nil {
			if pt, ok := parsePrecisionDateTime(s[:i], TimeFormat, loc, maxPrecision); ok {
				return pt, nil
			}
		}
	}
	return PrecisionTime{}, &IllegalLiteralError{Kind: "TIME WITH TIME ZONE", Text: s, Hint: TimeFormat}
}

// ParseTimestampTz parses a timestamp literal whose body carries a
// trailing time zone.
func ParseTimestampTz(s string, maxPrecision int) (PrecisionTime, error) {
	if i := strings.LastIndex(s, " "); i >= 0 {
		if loc := resolveZone(strings.TrimSpace(s[i+1:])); loc != nil {
			if pt, err := parseTimestampKind("TIMESTAMP WITH TIME ZONE", s[:i], loc, maxPrecision); err == nil {
				return pt, nil
			}
		}
	}
	return PrecisionTime{}, &IllegalLiteralError{Kind: "TIMESTAMP WITH TIME ZONE", Text: s, Hint: TimestampFormat}
}

func parseTimestampKind(kind, s string, loc *time.Location, maxPrecision int) (PrecisionTime, error) {
	for _, layout := range []string{TimestampFormat, DateFormat} {
		if pt, ok := parsePrecisionDateTime(s, layout, loc, maxPrecision); ok {
			return pt, nil
		}
	}
	return PrecisionTime{}, &IllegalLiteralError{Kind: kind, Text: s, Hint: TimestampFormat}
}

func parsePrecisionDateTime(s, layout string, loc *time.Location, maxPrecision int) (PrecisionTime, bool) {
	s = strings.TrimSpace(s)
	base, frac := s, ""
	if dot := strings.IndexByte(s, '.'); dot >= 0 {
		base, frac = s[:dot], s[dot+1:]
		if !allDigits(frac) {
			return PrecisionTime{}, false
		}
	}
	t, err := time.ParseInLocation(layout, base, loc)
	if err != nil {
		return PrecisionTime{}, false
	}
	if maxPrecision >= 0 && len(frac) > maxPrecision {
		frac = frac[:maxPrecision]
	}
	if frac != "" {
		t = t.Add(fracNanos(frac))
	}
	return PrecisionTime{Time: t, Fraction: frac, Precision: len(frac)}, true
}

func fracNanos(frac string) time.Duration {
	if len(frac) > 9 {
		frac = frac[:9]
	}
	n, _ := strconv.Atoi(frac + strings.Repeat("0", 9-len(frac)))
	return time.Duration(n)
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// resolveZone resolves a zone suffix to a location: first as an IANA
// name, then as a fixed ±hh[:mm] offset. Returns nil when the suffix
// means nothing.
func resolveZone(name string) *time.Location {
	if name == "" {
		return nil
	}
	if loc, err := time.LoadLocation(name); err == nil {
		return loc
	}
	if off, ok := parseZoneOffset(name); ok {
		return time.FixedZone(name, off)
	}
	return nil
}

func parseZoneOffset(name string) (int, bool) {
	sign := 1
	switch name[0] {
	case '+':
	case '-':
		sign = -1
	default:
		return 0, false
	}
	hh, mm := name[1:], ""
	if i := strings.IndexByte(hh, ':'); i >= 0 {
		hh, mm = hh[:i], hh[i+1:]
	}
	if !allDigits(hh) || len(hh) > 2 {
		return 0, false
	}
	h, _ := strconv.Atoi(hh)
	m := 0
	if mm != "" {
		if !allDigits(mm) || len(mm) > 2 {
			return 0, false
		}
		m, _ = strconv.Atoi(mm)
	}
	if h > 23 || m > 59 {
		return 0, false
	}
	return sign * (h*3600 + m*60), true
}
