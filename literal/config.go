package literal

// Config carries the dialect-dependent defaults literal interpretation
// needs. The zero value is not useful; start from DefaultConfig.
type Config struct {
	// NationalCharset is the character set implied by literals written
	// with the national-string prefix N'...'.
	NationalCharset string

	// CollationStrength is used when a collation name omits its
	// strength component.
	CollationStrength string
}

// DefaultConfig holds the standard defaults.
var DefaultConfig = Config{
	NationalCharset:   "ISO-8859-1",
	CollationStrength: "primary",
}
