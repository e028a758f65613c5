package literal

import (
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/text/language"
)

// Collation is the decomposition of a collation name of the form
// charset$locale$strength.
type Collation struct {
	Charset  string
	Locale   language.Tag
	Strength string
}

var underscores = regexp.MustCompile("_+")

// ParseCollation splits a collation name into its components. The
// strength defaults from config when the name omits it. The locale
// portion is written with underscores, as in en_US, and must be a
// well-formed language tag.
func ParseCollation(name string, config Config) (Collation, error) {
	parts := strings.Split(name, "$")
	if len(parts) < 2 {
		return Collation{}, fmt.Errorf("collation name %q must have the form charset$locale[$strength]", name)
	}
	strength := config.CollationStrength
	if len(parts) > 2 && parts[2] != "" {
		strength = parts[2]
	}
	tag, err := language.Parse(underscores.ReplaceAllString(parts[1], "-"))
	if err != nil {
		return Collation{}, &InvalidLocaleError{Text: parts[1]}
	}
	return Collation{Charset: parts[0], Locale: tag, Strength: strength}, nil
}
