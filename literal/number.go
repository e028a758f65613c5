package literal

import "github.com/shopspring/decimal"

// ParseDecimal parses an exact-numeric literal. Exponential notation
// is accepted on input; the value renders back in plain notation.
func ParseDecimal(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, &IllegalLiteralError{Kind: "DECIMAL", Text: s}
	}
	return d, nil
}
