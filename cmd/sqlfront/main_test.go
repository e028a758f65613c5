package main

import (
	"strings"
	"testing"

	"github.com/vegasq/sqlfront/expr"
)

func TestBuildItemsClassification(t *testing.T) {
	items := buildItems([]string{"a", "+", "-", "5"})
	if len(items) != 4 {
		t.Fatalf("buildItems() returned %d items, want 4", len(items))
	}
	if _, ok := items[0].(*expr.Identifier); !ok {
		t.Errorf("items[0] = %T, want *expr.Identifier", items[0])
	}
	plus, ok := items[1].(*expr.OpItem)
	if !ok || plus.Op.Kind != expr.Infix {
		t.Errorf("items[1] should be an infix operator, got %T", items[1])
	}
	minus, ok := items[2].(*expr.OpItem)
	if !ok || minus.Op.Kind != expr.Prefix {
		t.Errorf("items[2] should be a prefix sign, got %T", items[2])
	}
	if _, ok := items[3].(*expr.Literal); !ok {
		t.Errorf("items[3] = %T, want *expr.Literal", items[3])
	}
}

func TestBuildItemsStringsAndNumbers(t *testing.T) {
	items := buildItems([]string{"'abc'", "||", "name", "*", "1.5"})
	if lit, ok := items[0].(*expr.Literal); !ok || lit.String() != "'abc'" {
		t.Errorf("items[0] = %v, want the string literal 'abc'", items[0])
	}
	if _, ok := items[2].(*expr.Identifier); !ok {
		t.Errorf("items[2] = %T, want *expr.Identifier", items[2])
	}
	if lit, ok := items[4].(*expr.Literal); !ok || lit.String() != "1.5" {
		t.Errorf("items[4] = %v, want the numeric literal 1.5", items[4])
	}
}

func TestBuildItemsPositions(t *testing.T) {
	items := buildItems([]string{"sal", ">", "1300"})
	if got := items[0].Span(); got.Col != 1 || got.EndCol != 3 {
		t.Errorf("sal span = %v, want columns 1-3", got)
	}
	if got := items[1].Span(); got.Col != 5 || got.EndCol != 5 {
		t.Errorf("> span = %v, want column 5", got)
	}
	if got := items[2].Span(); got.Col != 7 || got.EndCol != 10 {
		t.Errorf("1300 span = %v, want columns 7-10", got)
	}
}

func TestReduceTokens(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"arithmetic precedence", "1 + 2 * 3", "(+ 1 (* 2 3))"},
		{"negated comparisons", "NOT sal > 1300 AND NOT sal < 1200",
			"(AND (NOT (> sal 1300)) (NOT (< sal 1200)))"},
		{"sign folding", "a + - 5", "(+ a -5)"},
		{"concat", "'id-' || code", "(|| 'id-' code)"},
		{"case insensitive keywords", "a and b or c", "(OR (AND a b) c)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node, err := expr.Reduce(buildItems(strings.Fields(tt.input)))
			if err != nil {
				t.Fatalf("Reduce() error = %v", err)
			}
			if got := node.String(); got != tt.want {
				t.Errorf("Reduce(%q) = %s, want %s", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseLiteralKinds(t *testing.T) {
	tests := []struct {
		name          string
		kind          string
		text          string
		maxPrecision  int
		wantValue     string
		wantPrecision string
		wantErr       bool
	}{
		{"decimal", "decimal", "1.5E2", -1, "150", "-", false},
		{"string", "string", "'it''s'", -1, "it's", "-", false},
		{"cstring", "cstring", `'a\tb'`, -1, "a\tb", "-", false},
		{"date", "date", "2019-07-05", -1, "2019-07-05", "-", false},
		{"time", "time", "12:34:56.789", -1, "12:34:56.789", "3", false},
		{"time truncated", "time", "12:34:56.789", 1, "12:34:56.7", "1", false},
		{"timestamp", "timestamp", "2019-07-05 12:34:56", -1, "2019-07-05 12:34:56", "0", false},
		{"timetz", "timetz", "12:34:56 UTC", -1, "12:34:56 UTC", "0", false},
		{"uuid", "uuid", "123e4567-e89b-12d3-a456-426614174000", -1,
			"123e4567-e89b-12d3-a456-426614174000", "-", false},
		{"bad decimal", "decimal", "12x", -1, "", "", true},
		{"unquoted string", "string", "abc", -1, "", "", true},
		{"unknown kind", "bitstring", "0101", -1, "", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, precision, err := parseLiteral(tt.kind, tt.text, tt.maxPrecision)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseLiteral(%q, %q) error = %v, wantErr %v", tt.kind, tt.text, err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if value != tt.wantValue {
				t.Errorf("value = %q, want %q", value, tt.wantValue)
			}
			if precision != tt.wantPrecision {
				t.Errorf("precision = %q, want %q", precision, tt.wantPrecision)
			}
		})
	}
}

func TestReadSource(t *testing.T) {
	src, err := readSource("testdata/sample.sql")
	if err != nil {
		t.Fatalf("readSource() error = %v", err)
	}
	if !strings.HasPrefix(src, "select empno") {
		t.Errorf("readSource() = %q, want the fixture text", src)
	}
}

func TestReadSourceMissing(t *testing.T) {
	if _, err := readSource(""); err == nil {
		t.Error("readSource(\"\") expected error, got none")
	}
	if _, err := readSource("testdata/does-not-exist.sql"); err == nil {
		t.Error("readSource() on a missing file expected error, got none")
	}
}
