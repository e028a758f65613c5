package expr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/vegasq/sqlfront/diag"
	"github.com/vegasq/sqlfront/literal"
)

var (
	opOr    = InfixOp("OR", 4)
	opAnd   = InfixOp("AND", 6)
	opNot   = PrefixOp("NOT", 8)
	opGt    = InfixOp(">", 10)
	opLt    = InfixOp("<", 10)
	opPlus  = InfixOp("+", 20)
	opMinus = InfixOp("-", 20)
	opTimes = InfixOp("*", 22)
	opPow   = InfixRightOp("**", 24)
	opNeg   = PrefixOp("-", 26)
	opPos   = PrefixOp("+", 26)
	opFact  = PostfixOp("!", 30)
)

func ident(name string, col int) *Identifier {
	return &Identifier{Name: name, Pos: diag.Range(1, col, 1, col+len(name)-1)}
}

func number(text string, col int) *Literal {
	return &Literal{
		Value: literal.Numeric{Val: decimal.RequireFromString(text)},
		Pos:   diag.Range(1, col, 1, col+len(text)-1),
	}
}

func occ(op *Operator, col int) *OpItem {
	return NewOpItem(op, diag.Range(1, col, 1, col+len(op.Name)-1))
}

func TestReduceSingleNode(t *testing.T) {
	n := ident("a", 1)
	got, err := Reduce([]Item{n})
	if err != nil {
		t.Fatalf("Reduce() error = %v", err)
	}
	if got != Node(n) {
		t.Errorf("Reduce() = %v, want the input node back", got)
	}
}

func TestReducePrecedence(t *testing.T) {
	tests := []struct {
		name  string
		items []Item
		want  string
	}{
		{
			name: "multiplication binds tighter",
			items: []Item{
				number("1", 1), occ(opPlus, 3), number("2", 5),
				occ(opTimes, 7), number("3", 9),
			},
			want: "(+ 1 (* 2 3))",
		},
		{
			name: "left associative chain",
			items: []Item{
				number("10", 1), occ(opMinus, 4), number("4", 6),
				occ(opMinus, 8), number("3", 10),
			},
			want: "(- (- 10 4) 3)",
		},
		{
			name: "right associative chain",
			items: []Item{
				number("2", 1), occ(opPow, 3), number("3", 6),
				occ(opPow, 8), number("2", 11),
			},
			want: "(** 2 (** 3 2))",
		},
		{
			name: "comparisons under logic",
			items: []Item{
				ident("a", 1), occ(opGt, 3), number("5", 5),
				occ(opAnd, 7), ident("b", 11), occ(opLt, 13), number("2", 15),
			},
			want: "(AND (> a 5) (< b 2))",
		},
		{
			name: "not binds tighter than and",
			items: []Item{
				occ(opNot, 1), ident("sal", 5), occ(opGt, 9), number("1300", 11),
				occ(opAnd, 16), occ(opNot, 20), ident("sal", 24), occ(opLt, 28), number("1200", 30),
			},
			want: "(AND (NOT (> sal 1300)) (NOT (< sal 1200)))",
		},
		{
			name: "double negation",
			items: []Item{
				occ(opNot, 1), occ(opNot, 5), ident("a", 9),
			},
			want: "(NOT (NOT a))",
		},
		{
			name: "or looser than and",
			items: []Item{
				ident("a", 1), occ(opOr, 3), ident("b", 6),
				occ(opAnd, 8), ident("c", 12),
			},
			want: "(OR a (AND b c))",
		},
		{
			name: "postfix binds tightest",
			items: []Item{
				ident("a", 1), occ(opPlus, 3), ident("b", 5), occ(opFact, 6),
			},
			want: "(+ a (! b))",
		},
		{
			name: "mixed arithmetic and logic",
			items: []Item{
				ident("x", 1), occ(opPlus, 3), number("1", 5),
				occ(opGt, 7), ident("y", 9), occ(opTimes, 11), number("2", 13),
			},
			want: "(> (+ x 1) (* y 2))",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node, err := Reduce(tt.items)
			if err != nil {
				t.Fatalf("Reduce() error = %v", err)
			}
			if got := node.String(); got != tt.want {
				t.Errorf("Reduce() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestSignFolding(t *testing.T) {
	t.Run("minus folds into numeric literal", func(t *testing.T) {
		node, err := Reduce([]Item{occ(opNeg, 1), number("5", 3)})
		if err != nil {
			t.Fatalf("Reduce() error = %v", err)
		}
		lit, ok := node.(*Literal)
		if !ok {
			t.Fatalf("expected *Literal, got %T", node)
		}
		if lit.String() != "-5" {
			t.Errorf("literal = %s, want -5", lit)
		}
		if want := diag.Range(1, 1, 1, 3); lit.Span() != want {
			t.Errorf("span = %v, want %v", lit.Span(), want)
		}
	})

	t.Run("plus leaves numeric literal untouched", func(t *testing.T) {
		five := number("5", 3)
		node, err := Reduce([]Item{occ(opPos, 1), five})
		if err != nil {
			t.Fatalf("Reduce() error = %v", err)
		}
		if node != Node(five) {
			t.Errorf("expected the literal back, got %v", node)
		}
		if want := diag.Range(1, 3, 1, 3); node.Span() != want {
			t.Errorf("span = %v, want %v", node.Span(), want)
		}
	})

	t.Run("double minus folds twice", func(t *testing.T) {
		node, err := Reduce([]Item{occ(opNeg, 1), occ(opNeg, 3), number("5", 5)})
		if err != nil {
			t.Fatalf("Reduce() error = %v", err)
		}
		if got := node.String(); got != "5" {
			t.Errorf("Reduce() = %s, want 5", got)
		}
	})

	t.Run("minus on identifier stays a call", func(t *testing.T) {
		node, err := Reduce([]Item{occ(opNeg, 1), ident("a", 3)})
		if err != nil {
			t.Fatalf("Reduce() error = %v", err)
		}
		if got := node.String(); got != "(- a)" {
			t.Errorf("Reduce() = %s, want (- a)", got)
		}
	})

	t.Run("minus literal inside larger expression", func(t *testing.T) {
		node, err := Reduce([]Item{
			ident("a", 1), occ(opPlus, 3), occ(opNeg, 5), number("5", 7),
		})
		if err != nil {
			t.Fatalf("Reduce() error = %v", err)
		}
		if got := node.String(); got != "(+ a -5)" {
			t.Errorf("Reduce() = %s, want (+ a -5)", got)
		}
	})
}

func TestCallSpanCoversOperands(t *testing.T) {
	node, err := Reduce([]Item{
		ident("a", 1), occ(opPlus, 3), number("42", 5),
	})
	if err != nil {
		t.Fatalf("Reduce() error = %v", err)
	}
	if want := diag.Range(1, 1, 1, 6); node.Span() != want {
		t.Errorf("span = %v, want %v", node.Span(), want)
	}
}

func TestReduceInvariantError(t *testing.T) {
	tests := []struct {
		name  string
		items []Item
	}{
		{"two atoms no operator", []Item{ident("a", 1), ident("b", 3)}},
		{"lone infix operator", []Item{occ(opPlus, 1)}},
		{"infix missing right operand", []Item{ident("a", 1), occ(opPlus, 3)}},
		{"prefix missing operand", []Item{occ(opNot, 1)}},
		{"empty list", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Reduce(tt.items)
			if err == nil {
				t.Fatal("Reduce() expected error, got none")
			}
			var inv *InvariantError
			if !errors.As(err, &inv) {
				t.Fatalf("Reduce() error = %T, want *InvariantError", err)
			}
			if len(inv.Remaining) != len(tt.items) {
				t.Errorf("remaining = %d tokens, want %d", len(inv.Remaining), len(tt.items))
			}
		})
	}
}

func TestSpecialOperator(t *testing.T) {
	betweenCall := &Operator{Name: "BETWEEN", Kind: Special, LeftPrec: 12, RightPrec: 14}
	between := SpecialOp("BETWEEN", 12, 14, func(seq TokenSequence, i int) (Reduced, error) {
		if i < 1 {
			return Reduced{}, fmt.Errorf("BETWEEN needs a left operand")
		}
		if i+3 >= seq.Size() || seq.Op(i+2) == nil || seq.Op(i+2).Op.Name != "AND" {
			return Reduced{}, fmt.Errorf("BETWEEN without AND")
		}
		lo, hi, val := seq.Node(i+1), seq.Node(i+3), seq.Node(i-1)
		if lo == nil || hi == nil || val == nil {
			return Reduced{}, fmt.Errorf("BETWEEN operands not reduced")
		}
		node := NewCall(betweenCall, seq.Op(i).Pos, val, lo, hi)
		return Reduced{Start: i - 1, End: i + 4, Node: node}, nil
	})

	t.Run("folds three operands", func(t *testing.T) {
		node, err := Reduce([]Item{
			ident("x", 1), occ(between, 3), number("1", 11),
			occ(opAnd, 13), number("10", 17),
		})
		if err != nil {
			t.Fatalf("Reduce() error = %v", err)
		}
		if got := node.String(); got != "(BETWEEN x 1 10)" {
			t.Errorf("Reduce() = %s, want (BETWEEN x 1 10)", got)
		}
	})

	t.Run("callback error surfaces", func(t *testing.T) {
		_, err := Reduce([]Item{
			ident("x", 1), occ(between, 3), number("1", 11),
		})
		if err == nil || err.Error() != "BETWEEN without AND" {
			t.Fatalf("Reduce() error = %v, want BETWEEN without AND", err)
		}
	})
}

func TestSpecialOperatorNestedRange(t *testing.T) {
	itemCall := &Operator{Name: "ITEM", Kind: Special, LeftPrec: 28, RightPrec: 29}
	rbracket := SpecialOp("]", 0, 0, nil)
	lbracket := SpecialOp("[", 28, 29, func(seq TokenSequence, i int) (Reduced, error) {
		index, err := ReduceRange(seq, i+1, 0, "]")
		if err != nil {
			return Reduced{}, err
		}
		if i+2 >= seq.Size() || seq.Op(i+2) == nil || seq.Op(i+2).Op.Name != "]" {
			return Reduced{}, fmt.Errorf("missing closing bracket")
		}
		node := NewCall(itemCall, seq.Op(i).Pos, seq.Node(i-1), index)
		return Reduced{Start: i - 1, End: i + 3, Node: node}, nil
	})

	node, err := Reduce([]Item{
		ident("arr", 1), occ(lbracket, 4),
		ident("i", 5), occ(opPlus, 7), number("1", 9),
		occ(rbracket, 10),
	})
	if err != nil {
		t.Fatalf("Reduce() error = %v", err)
	}
	if got := node.String(); got != "(ITEM arr (+ i 1))" {
		t.Errorf("Reduce() = %s, want (ITEM arr (+ i 1))", got)
	}
}

func TestReduceRangeStopper(t *testing.T) {
	comma := SpecialOp(",", 0, 0, nil)
	seq := NewListSequence([]Item{
		ident("a", 1), occ(opPlus, 3), ident("b", 5),
		occ(comma, 6), ident("c", 8),
	})
	node, err := ReduceRange(seq, 0, 0, ",")
	if err != nil {
		t.Fatalf("ReduceRange() error = %v", err)
	}
	if got := node.String(); got != "(+ a b)" {
		t.Errorf("ReduceRange() = %s, want (+ a b)", got)
	}
	if seq.Size() != 3 {
		t.Fatalf("sequence size after reduce = %d, want 3", seq.Size())
	}
	if seq.Node(0) != node {
		t.Error("reduced node not spliced into the sequence")
	}
	if !seq.IsOp(1) || seq.Op(1).Op.Name != "," {
		t.Error("stopper token should remain in place")
	}
}

func TestReduceRangeMinPrecedence(t *testing.T) {
	seq := NewListSequence([]Item{
		ident("x", 1), occ(opTimes, 3), ident("y", 5),
		occ(opAnd, 7), ident("z", 11),
	})
	node, err := ReduceRange(seq, 0, 10, "")
	if err != nil {
		t.Fatalf("ReduceRange() error = %v", err)
	}
	if got := node.String(); got != "(* x y)" {
		t.Errorf("ReduceRange() = %s, want (* x y)", got)
	}
	if seq.Size() != 3 {
		t.Errorf("sequence size after reduce = %d, want 3", seq.Size())
	}
}
