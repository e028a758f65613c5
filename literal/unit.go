package literal

import (
	"fmt"
	"strconv"
	"strings"
)

// Unit is an interval field. Units are ordered from the coarsest down,
// so a qualifier's range runs from a smaller Unit to a larger one.
type Unit int

const (
	UnitYear Unit = iota
	UnitMonth
	UnitDay
	UnitHour
	UnitMinute
	UnitSecond
)

var unitNames = [...]string{"YEAR", "MONTH", "DAY", "HOUR", "MINUTE", "SECOND"}

func (u Unit) String() string {
	if u < 0 || int(u) >= len(unitNames) {
		return fmt.Sprintf("Unit(%d)", int(u))
	}
	return unitNames[u]
}

func (u Unit) isYearMonth() bool { return u <= UnitMonth }

// ParseUnit maps a unit name in any case to its Unit.
func ParseUnit(name string) (Unit, error) {
	up := strings.ToUpper(strings.TrimSpace(name))
	for i, n := range unitNames {
		if n == up {
			return Unit(i), nil
		}
	}
	return 0, fmt.Errorf("unknown interval unit %q", name)
}

// NewQualifier builds a Qualifier covering the fields from start down
// to end inclusive. Both must belong to the same family, year-month or
// day-time, and end must not precede start. A single-field qualifier
// has start == end.
func NewQualifier(start, end Unit) (Qualifier, error) {
	if end < start {
		return nil, fmt.Errorf("interval fields out of order: %s TO %s", start, end)
	}
	if start.isYearMonth() != end.isYearMonth() {
		return nil, fmt.Errorf("interval fields %s TO %s mix families", start, end)
	}
	return &intervalQualifier{start: start, end: end}, nil
}

// intervalQualifier is the Qualifier built by NewQualifier. Grammar
// layers with richer qualifier syntax, such as second precision,
// provide their own Qualifier implementations.
type intervalQualifier struct {
	start, end Unit
}

func (q *intervalQualifier) IsYearMonth() bool { return q.start.isYearMonth() }

func (q *intervalQualifier) String() string {
	if q.start == q.end {
		return q.start.String()
	}
	return q.start.String() + " TO " + q.end.String()
}

func (q *intervalQualifier) Evaluate(text string) ([]int, error) {
	body := strings.TrimSpace(text)
	sign := 1
	switch {
	case strings.HasPrefix(body, "-"):
		sign = -1
		body = strings.TrimSpace(body[1:])
	case strings.HasPrefix(body, "+"):
		body = strings.TrimSpace(body[1:])
	}
	if body == "" {
		return nil, fmt.Errorf("empty interval body")
	}
	if q.IsYearMonth() {
		return q.evalYearMonth(sign, body)
	}
	return q.evalDayTime(sign, body)
}

func (q *intervalQualifier) evalYearMonth(sign int, body string) ([]int, error) {
	years, months := 0, 0
	var err error
	switch {
	case q.start == UnitYear && q.end == UnitMonth:
		i := strings.IndexByte(body, '-')
		if i < 0 {
			return nil, fmt.Errorf("expected year-month form Y-M, got %q", body)
		}
		if years, err = intervalField(body[:i], UnitYear); err != nil {
			return nil, err
		}
		if months, err = intervalField(body[i+1:], UnitMonth); err != nil {
			return nil, err
		}
		if months > 11 {
			return nil, fmt.Errorf("month field %d out of range", months)
		}
	case q.start == UnitYear:
		if years, err = intervalField(body, UnitYear); err != nil {
			return nil, err
		}
	default:
		if months, err = intervalField(body, UnitMonth); err != nil {
			return nil, err
		}
	}
	return []int{sign, years, months}, nil
}

func (q *intervalQualifier) evalDayTime(sign int, body string) ([]int, error) {
	var fields [4]int // day, hour, minute, second
	millis := 0
	rest := body
	if q.start == UnitDay {
		day := rest
		rest = ""
		if i := strings.IndexAny(day, " \t"); i >= 0 {
			day, rest = day[:i], strings.TrimSpace(day[i+1:])
		}
		var err error
		if fields[0], err = intervalField(day, UnitDay); err != nil {
			return nil, err
		}
		if q.end == UnitDay && rest != "" {
			return nil, fmt.Errorf("unexpected text %q after day field", rest)
		}
		if q.end > UnitDay && rest == "" {
			return nil, fmt.Errorf("missing time fields after day field")
		}
	}
	if q.end >= UnitHour {
		first := q.start
		if first < UnitHour {
			first = UnitHour
		}
		segs := strings.Split(rest, ":")
		if want := int(q.end-first) + 1; len(segs) != want {
			return nil, fmt.Errorf("expected %d time fields for %s, got %d", want, q, len(segs))
		}
		for k, seg := range segs {
			u := first + Unit(k)
			if u == UnitSecond {
				if dot := strings.IndexByte(seg, '.'); dot >= 0 {
					frac := seg[dot+1:]
					if !allDigits(frac) {
						return nil, fmt.Errorf("invalid fractional seconds %q", seg)
					}
					millis = fracMillis(frac)
					seg = seg[:dot]
				}
			}
			v, err := intervalField(seg, u)
			if err != nil {
				return nil, err
			}
			if u > q.start && v > timeFieldMax(u) {
				return nil, fmt.Errorf("%s field %d out of range", strings.ToLower(u.String()), v)
			}
			fields[u-UnitDay] = v
		}
	}
	return []int{sign, fields[0], fields[1], fields[2], fields[3], millis}, nil
}

// timeFieldMax bounds the non-leading fields of a day-time interval.
func timeFieldMax(u Unit) int {
	if u == UnitHour {
		return 23
	}
	return 59
}

func intervalField(s string, u Unit) (int, error) {
	s = strings.TrimSpace(s)
	if !allDigits(s) {
		return 0, fmt.Errorf("invalid %s field %q", strings.ToLower(u.String()), s)
	}
	return strconv.Atoi(s)
}

func fracMillis(frac string) int {
	if len(frac) > 3 {
		frac = frac[:3]
	}
	n, _ := strconv.Atoi(frac + strings.Repeat("0", 3-len(frac)))
	return n
}
