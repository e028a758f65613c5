package literal

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Value is a typed literal value produced by this package. Rendering
// with String gives the value back in literal syntax.
type Value interface {
	String() string
	literalValue()
}

// Numeric is an exact-numeric literal value.
type Numeric struct {
	Val decimal.Decimal
}

func (n Numeric) String() string { return n.Val.String() }

// Neg returns the arithmetic negation of n.
func (n Numeric) Neg() Numeric { return Numeric{Val: n.Val.Neg()} }

func (Numeric) literalValue() {}

// StringValue is a character literal value, optionally tagged with the
// character set its prefix named.
type StringValue struct {
	S       string
	Charset string
}

func (v StringValue) String() string {
	quoted := "'" + strings.ReplaceAll(v.S, "'", "''") + "'"
	if v.Charset != "" {
		return "_" + v.Charset + quoted
	}
	return quoted
}

func (StringValue) literalValue() {}

// DateValue is a date literal value.
type DateValue struct {
	T time.Time
}

func (v DateValue) String() string { return v.T.Format(DateFormat) }

func (DateValue) literalValue() {}

// TimeValue is a time literal value. Zoned marks the WITH TIME ZONE
// variant.
type TimeValue struct {
	PrecisionTime
	Zoned bool
}

func (v TimeValue) String() string { return v.render(TimeFormat, v.Zoned) }

func (TimeValue) literalValue() {}

// TimestampValue is a timestamp literal value. Zoned marks the WITH
// TIME ZONE variant.
type TimestampValue struct {
	PrecisionTime
	Zoned bool
}

func (v TimestampValue) String() string { return v.render(TimestampFormat, v.Zoned) }

func (TimestampValue) literalValue() {}

// UUIDValue is a UUID literal value.
type UUIDValue struct {
	ID uuid.UUID
}

func (v UUIDValue) String() string { return v.ID.String() }

func (UUIDValue) literalValue() {}
