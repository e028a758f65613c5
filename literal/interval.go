package literal

// Qualifier describes an interval literal's field range and knows how
// to evaluate its body text into ordered field magnitudes.
type Qualifier interface {
	// IsYearMonth reports whether the fields are year/month rather
	// than day through second.
	IsYearMonth() bool

	// Evaluate parses body text into [sign, fields...] where sign is
	// +1 or -1 and the fields are the family's full magnitude vector:
	// [days, hours, minutes, seconds, millis] or [years, months].
	// Fields outside the qualifier's range are zero.
	Evaluate(text string) ([]int, error)

	// String renders the field range, e.g. "DAY TO SECOND".
	String() string
}

// Interval is a parsed interval literal. Sign is the sign written
// outside the quoted body; the body text may carry its own.
type Interval struct {
	Sign      int
	Text      string
	Qualifier Qualifier
}

func (iv Interval) String() string {
	s := "INTERVAL "
	if iv.Sign < 0 {
		s += "-"
	}
	return s + "'" + iv.Text + "' " + iv.Qualifier.String()
}

func (Interval) literalValue() {}

// Millis converts a day-time interval to milliseconds.
func (iv Interval) Millis() (int64, error) {
	return IntervalToMillis(iv.Text, iv.Qualifier)
}

// Months converts a year-month interval to months.
func (iv Interval) Months() (int64, error) {
	return IntervalToMonths(iv.Text, iv.Qualifier)
}

// ParseInterval builds an interval literal value, validating the body
// text against the qualifier. Empty text is always illegal. sign is
// normalized to +1 or -1.
func ParseInterval(sign int, text string, q Qualifier) (Interval, error) {
	if text == "" {
		return Interval{}, &IllegalIntervalError{Text: text, Qualifier: q.String()}
	}
	if _, err := q.Evaluate(text); err != nil {
		return Interval{}, &IllegalIntervalError{Text: text, Qualifier: q.String(), Err: err}
	}
	if sign < 0 {
		sign = -1
	} else {
		sign = 1
	}
	return Interval{Sign: sign, Text: text, Qualifier: q}, nil
}

const (
	millisPerSecond = 1000
	millisPerMinute = 60 * millisPerSecond
	millisPerHour   = 60 * millisPerMinute
	millisPerDay    = 24 * millisPerHour
)

// IntervalToMillis converts day-time interval text to a total
// millisecond count. Calling it with a year-month qualifier is a
// programming error.
func IntervalToMillis(text string, q Qualifier) (int64, error) {
	if q.IsYearMonth() {
		panic("interval qualifier must be day-time")
	}
	ret, err := q.Evaluate(text)
	if err != nil {
		return 0, &IllegalIntervalError{Text: text, Qualifier: q.String(), Err: err}
	}
	conv := [...]int64{millisPerDay, millisPerHour, millisPerMinute, millisPerSecond, 1}
	var total int64
	for i := 1; i < len(ret); i++ {
		total += conv[i-1] * int64(ret[i])
	}
	return int64(ret[0]) * total, nil
}

// IntervalToMonths converts year-month interval text to a total month
// count. Calling it with a day-time qualifier is a programming error.
func IntervalToMonths(text string, q Qualifier) (int64, error) {
	if !q.IsYearMonth() {
		panic("interval qualifier must be year-month")
	}
	ret, err := q.Evaluate(text)
	if err != nil {
		return 0, &IllegalIntervalError{Text: text, Qualifier: q.String(), Err: err}
	}
	conv := [...]int64{12, 1}
	var total int64
	for i := 1; i < len(ret); i++ {
		total += conv[i-1] * int64(ret[i])
	}
	return int64(ret[0]) * total, nil
}
