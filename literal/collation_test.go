package literal

import (
	"errors"
	"testing"
)

func TestParseCollation(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		config       Config
		wantCharset  string
		wantLocale   string
		wantStrength string
		wantErr      bool
	}{
		{
			name:         "full form",
			input:        "ISO-8859-1$en_US$primary",
			config:       DefaultConfig,
			wantCharset:  "ISO-8859-1",
			wantLocale:   "en-US",
			wantStrength: "primary",
		},
		{
			name:         "default strength",
			input:        "latin1$en_US",
			config:       DefaultConfig,
			wantCharset:  "latin1",
			wantLocale:   "en-US",
			wantStrength: "primary",
		},
		{
			name:         "configured strength",
			input:        "latin1$de_DE",
			config:       Config{CollationStrength: "tertiary"},
			wantCharset:  "latin1",
			wantLocale:   "de-DE",
			wantStrength: "tertiary",
		},
		{
			name:         "underscore runs collapse",
			input:        "utf8$en__US",
			config:       DefaultConfig,
			wantCharset:  "utf8",
			wantLocale:   "en-US",
			wantStrength: "primary",
		},
		{
			name:         "bare language",
			input:        "utf8$ja",
			config:       DefaultConfig,
			wantCharset:  "utf8",
			wantLocale:   "ja",
			wantStrength: "primary",
		},
		{
			name:    "missing locale",
			input:   "latin1",
			config:  DefaultConfig,
			wantErr: true,
		},
		{
			name:    "ill formed locale",
			input:   "latin1$!!!",
			config:  DefaultConfig,
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := ParseCollation(tt.input, tt.config)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseCollation(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if c.Charset != tt.wantCharset {
				t.Errorf("charset = %q, want %q", c.Charset, tt.wantCharset)
			}
			if got := c.Locale.String(); got != tt.wantLocale {
				t.Errorf("locale = %q, want %q", got, tt.wantLocale)
			}
			if c.Strength != tt.wantStrength {
				t.Errorf("strength = %q, want %q", c.Strength, tt.wantStrength)
			}
		})
	}
}

func TestParseCollationLocaleError(t *testing.T) {
	_, err := ParseCollation("latin1$!!!", DefaultConfig)
	var invalid *InvalidLocaleError
	if !errors.As(err, &invalid) {
		t.Fatalf("error = %T, want *InvalidLocaleError", err)
	}
	if invalid.Text != "!!!" {
		t.Errorf("error text = %q, want !!!", invalid.Text)
	}
}
