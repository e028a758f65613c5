package expr

import "github.com/vegasq/sqlfront/diag"

// OpKind classifies an operator's syntactic shape.
type OpKind int

const (
	// Prefix operators take the operand to their right.
	Prefix OpKind = iota
	// Postfix operators take the operand to their left.
	Postfix
	// Infix operators take operands on both sides.
	Infix
	// Special operators consume a custom token window through their
	// Reduce function.
	Special
)

func (k OpKind) String() string {
	switch k {
	case Prefix:
		return "prefix"
	case Postfix:
		return "postfix"
	case Infix:
		return "infix"
	case Special:
		return "special"
	default:
		return "unknown"
	}
}

// Operator describes how occurrences of one operator participate in
// precedence climbing. The left/right precedence pair of an infix
// operator encodes associativity: LeftPrec < RightPrec binds left,
// LeftPrec > RightPrec binds right.
type Operator struct {
	Name      string
	Kind      OpKind
	LeftPrec  int
	RightPrec int
	// Reduce folds a Special occurrence; ignored for other kinds.
	Reduce ReduceFunc
}

// LeftAssoc reports whether an infix operator folds leftmost-first at
// equal precedence.
func (o *Operator) LeftAssoc() bool { return o.LeftPrec < o.RightPrec }

// PrefixOp returns a prefix operator binding at prec.
func PrefixOp(name string, prec int) *Operator {
	return &Operator{Name: name, Kind: Prefix, LeftPrec: prec, RightPrec: prec + 1}
}

// PostfixOp returns a postfix operator binding at prec.
func PostfixOp(name string, prec int) *Operator {
	return &Operator{Name: name, Kind: Postfix, LeftPrec: prec, RightPrec: prec + 1}
}

// InfixOp returns a left-associative infix operator binding at prec.
func InfixOp(name string, prec int) *Operator {
	return &Operator{Name: name, Kind: Infix, LeftPrec: prec, RightPrec: prec + 1}
}

// InfixRightOp returns a right-associative infix operator binding at
// prec.
func InfixRightOp(name string, prec int) *Operator {
	return &Operator{Name: name, Kind: Infix, LeftPrec: prec + 1, RightPrec: prec}
}

// SpecialOp returns a special operator with its reduction function.
func SpecialOp(name string, leftPrec, rightPrec int, reduce ReduceFunc) *Operator {
	return &Operator{Name: name, Kind: Special, LeftPrec: leftPrec, RightPrec: rightPrec, Reduce: reduce}
}

// OpItem is one operator occurrence in a flat expression list.
type OpItem struct {
	Op  *Operator
	Pos diag.Span
}

// NewOpItem places an operator occurrence at pos.
func NewOpItem(op *Operator, pos diag.Span) *OpItem {
	return &OpItem{Op: op, Pos: pos}
}

func (it *OpItem) Span() diag.Span { return it.Pos }
func (it *OpItem) String() string  { return it.Op.Name }
