package expr

import (
	"strings"

	"github.com/vegasq/sqlfront/diag"
	"github.com/vegasq/sqlfront/literal"
)

// Node is a finished expression tree node.
type Node interface {
	// Span is the source region the node covers.
	Span() diag.Span
	// String renders the node; calls render prefix-style.
	String() string
	node()
}

// Identifier names a column, table or other referenced entity.
type Identifier struct {
	Name string
	Pos  diag.Span
}

func (x *Identifier) Span() diag.Span { return x.Pos }
func (x *Identifier) String() string  { return x.Name }
func (*Identifier) node()             {}

// Literal is a typed literal leaf.
type Literal struct {
	Value literal.Value
	Pos   diag.Span
}

func (x *Literal) Span() diag.Span { return x.Pos }
func (x *Literal) String() string  { return x.Value.String() }
func (*Literal) node()             {}

// Call applies an operator to ordered operands.
type Call struct {
	Op   *Operator
	Args []Node
	Pos  diag.Span
}

// NewCall builds a Call whose span covers the operator occurrence and
// all operands.
func NewCall(op *Operator, pos diag.Span, args ...Node) *Call {
	for _, a := range args {
		pos = pos.Union(a.Span())
	}
	return &Call{Op: op, Args: args, Pos: pos}
}

func (x *Call) Span() diag.Span { return x.Pos }

func (x *Call) String() string {
	var b strings.Builder
	b.WriteByte('(')
	b.WriteString(x.Op.Name)
	for _, a := range x.Args {
		b.WriteByte(' ')
		b.WriteString(a.String())
	}
	b.WriteByte(')')
	return b.String()
}

func (*Call) node() {}

// FlattenRow returns a ROW call's operands, and any other node as a
// one-element list.
func FlattenRow(n Node) []Node {
	if c, ok := n.(*Call); ok && c.Op.Name == "ROW" {
		return c.Args
	}
	return []Node{n}
}
