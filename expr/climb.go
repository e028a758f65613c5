package expr

import (
	"fmt"
	"io"
	"log/slog"
	"math"
	"strings"

	"github.com/vegasq/sqlfront/literal"
)

// Logger receives reduction traces. It discards them unless a caller
// installs a real handler.
var Logger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.Level(math.MaxInt)}))

// ReduceFunc folds one Special operator occurrence. It receives the
// token window under reduction and the occurrence's position in it,
// and returns the consumed range with its replacement node.
type ReduceFunc func(seq TokenSequence, opOrdinal int) (Reduced, error)

// Reduced is a special reduction's outcome: the half-open token range
// consumed and the node that stands in for it.
type Reduced struct {
	Start int
	End   int
	Node  Node
}

// InvariantError reports a reduction that could not reach a single
// node. It means the operator table and the token list disagree, a
// defect in the calling grammar rather than a user syntax error.
type InvariantError struct {
	// Remaining renders the tokens left when reduction stalled.
	Remaining []string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("expression reduction stalled with %d tokens left: %s",
		len(e.Remaining), strings.Join(e.Remaining, " "))
}

// Reduce condenses a flat operand and operator list into one node.
func Reduce(items []Item) (Node, error) {
	if len(items) == 1 {
		if n, ok := items[0].(Node); ok {
			return n, nil
		}
	}
	Logger.Debug("reducing expression list", "tokens", itemsString(items))
	node, err := ReduceRange(NewListSequence(items), 0, 0, "")
	if err != nil {
		return nil, err
	}
	Logger.Debug("reduced expression list", "node", node.String())
	return node, nil
}

// ReduceRange reduces seq from start up to the first occurrence of the
// stopper operator (when stopper is non-empty) or the first operator
// whose left precedence drops below minPrec (when minPrec is
// positive), whichever comes first. The consumed range collapses in
// seq to the resulting node, which is also returned.
func ReduceRange(seq TokenSequence, start, minPrec int, stopper string) (Node, error) {
	w := seq.window(start, func(op *OpItem) bool {
		return stopper != "" && op.Op.Name == stopper ||
			minPrec > 0 && op.Op.LeftPrec < minPrec
	})
	consumed := len(w.tokens)
	node, err := w.reduce()
	if err != nil {
		return nil, err
	}
	seq.Replace(start, start+consumed, node)
	return node, nil
}

// ctoken is one slot of a reduction window: an operand node or an
// operator occurrence.
type ctoken struct {
	node Node
	op   *OpItem
}

type window struct {
	tokens []ctoken
}

func newWindow() *window { return &window{} }

func (w *window) pushAtom(n Node) { w.tokens = append(w.tokens, ctoken{node: n}) }

func (w *window) pushOp(op *OpItem) { w.tokens = append(w.tokens, ctoken{op: op}) }

func (w *window) replace(start, end int, n Node) {
	w.tokens = ReplaceSublist(w.tokens, start, end, ctoken{node: n})
}

func (w *window) isAtom(i int) bool {
	return i >= 0 && i < len(w.tokens) && w.tokens[i].node != nil
}

func (w *window) reduce() (Node, error) {
	for {
		i := w.next()
		if i < 0 {
			break
		}
		if err := w.fold(i); err != nil {
			return nil, err
		}
	}
	if len(w.tokens) != 1 || w.tokens[0].node == nil {
		return nil, &InvariantError{Remaining: w.strings()}
	}
	return w.tokens[0].node, nil
}

// next picks the occurrence to fold: scanning left to right, the
// highest-precedence operator whose operand slots hold finished nodes.
// Special operators are always foldable. At equal precedence the
// leftmost occurrence wins, except that a right-associative infix
// operator yields to later occurrences of the same precedence.
func (w *window) next() int {
	best, bestPrec := -1, -1
	for i, t := range w.tokens {
		if t.op == nil {
			continue
		}
		op := t.op.Op
		var prec int
		switch op.Kind {
		case Prefix:
			if !w.isAtom(i + 1) {
				continue
			}
			prec = op.LeftPrec
		case Postfix:
			if !w.isAtom(i - 1) {
				continue
			}
			prec = op.RightPrec
		case Infix:
			if !w.isAtom(i-1) || !w.isAtom(i+1) {
				continue
			}
			prec = op.LeftPrec
		case Special:
			prec = op.LeftPrec
		}
		if prec > bestPrec {
			best, bestPrec = i, prec
		} else if prec == bestPrec && op.Kind == Infix && !op.LeftAssoc() {
			best = i
		}
	}
	return best
}

func (w *window) fold(i int) error {
	occ := w.tokens[i].op
	Logger.Debug("folding operator", "op", occ.Op.Name, "kind", occ.Op.Kind.String(), "at", i)
	switch occ.Op.Kind {
	case Prefix:
		w.replace(i, i+2, foldPrefix(occ, w.tokens[i+1].node))
	case Postfix:
		w.replace(i-1, i+1, NewCall(occ.Op, occ.Pos, w.tokens[i-1].node))
	case Infix:
		w.replace(i-1, i+2, NewCall(occ.Op, occ.Pos, w.tokens[i-1].node, w.tokens[i+1].node))
	case Special:
		if occ.Op.Reduce == nil {
			return &InvariantError{Remaining: w.strings()}
		}
		r, err := occ.Op.Reduce(&windowSequence{w: w}, i)
		if err != nil {
			return err
		}
		w.replace(r.Start, r.End, r.Node)
	}
	return nil
}

// foldPrefix folds a prefix application. A numeric sign applied
// directly to a numeric literal folds into the literal itself, so
// "-5" parses as a negative number rather than a negation call.
func foldPrefix(occ *OpItem, arg Node) Node {
	if lit, ok := arg.(*Literal); ok {
		if num, ok := lit.Value.(literal.Numeric); ok {
			switch occ.Op.Name {
			case "-":
				return &Literal{Value: num.Neg(), Pos: occ.Pos.Union(lit.Pos)}
			case "+":
				return lit
			}
		}
	}
	return NewCall(occ.Op, occ.Pos, arg)
}

func (w *window) strings() []string {
	out := make([]string, len(w.tokens))
	for i, t := range w.tokens {
		if t.op != nil {
			out[i] = t.op.String()
		} else {
			out[i] = t.node.String()
		}
	}
	return out
}

func itemsString(items []Item) string {
	parts := make([]string, len(items))
	for i, it := range items {
		parts[i] = it.String()
	}
	return strings.Join(parts, " ")
}
