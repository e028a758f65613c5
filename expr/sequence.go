package expr

import "github.com/vegasq/sqlfront/diag"

// Item is one element of a flat expression list: either a finished
// Node or an operator occurrence.
type Item interface {
	Span() diag.Span
	String() string
}

// TokenSequence is a positioned view over the operands and operators
// under reduction. Special-operator reduce functions receive one to
// inspect their neighborhood and to collapse ranges of it in place.
type TokenSequence interface {
	Size() int
	// IsOp reports whether position i holds an operator occurrence.
	IsOp(i int) bool
	// Op returns the occurrence at i, or nil for an operand.
	Op(i int) *OpItem
	// Node returns the operand at i, or nil for an operator.
	Node(i int) Node
	// Pos returns the source span of the element at i.
	Pos(i int) diag.Span
	// Replace collapses the half-open range [start, end) into n.
	Replace(start, end int, n Node)

	// window copies the elements from start onward, stopping before
	// the first occurrence stop accepts.
	window(start int, stop stopFunc) *window
}

type stopFunc func(*OpItem) bool

// ListSequence adapts a flat item list to TokenSequence.
type ListSequence struct {
	items []Item
}

// NewListSequence wraps items for reduction. The slice is owned by the
// sequence afterwards.
func NewListSequence(items []Item) *ListSequence {
	return &ListSequence{items: items}
}

func (s *ListSequence) Size() int { return len(s.items) }

func (s *ListSequence) IsOp(i int) bool {
	_, ok := s.items[i].(*OpItem)
	return ok
}

func (s *ListSequence) Op(i int) *OpItem {
	op, _ := s.items[i].(*OpItem)
	return op
}

func (s *ListSequence) Node(i int) Node {
	n, _ := s.items[i].(Node)
	return n
}

func (s *ListSequence) Pos(i int) diag.Span { return s.items[i].Span() }

func (s *ListSequence) Replace(start, end int, n Node) {
	s.items = ReplaceSublist(s.items, start, end, Item(n))
}

// Items exposes the current list, reduced so far.
func (s *ListSequence) Items() []Item { return s.items }

func (s *ListSequence) window(start int, stop stopFunc) *window {
	w := newWindow()
	for _, it := range s.items[start:] {
		if op, ok := it.(*OpItem); ok {
			if stop(op) {
				break
			}
			w.pushOp(op)
		} else {
			w.pushAtom(it.(Node))
		}
	}
	return w
}

// windowSequence views the live token window of an in-progress
// reduction, so special operators can reduce within it.
type windowSequence struct {
	w *window
}

func (s *windowSequence) Size() int { return len(s.w.tokens) }

func (s *windowSequence) IsOp(i int) bool { return s.w.tokens[i].op != nil }

func (s *windowSequence) Op(i int) *OpItem { return s.w.tokens[i].op }

func (s *windowSequence) Node(i int) Node { return s.w.tokens[i].node }

func (s *windowSequence) Pos(i int) diag.Span {
	if t := s.w.tokens[i]; t.op != nil {
		return t.op.Pos
	}
	return s.w.tokens[i].node.Span()
}

func (s *windowSequence) Replace(start, end int, n Node) {
	s.w.replace(start, end, n)
}

func (s *windowSequence) window(start int, stop stopFunc) *window {
	w := newWindow()
	for _, t := range s.w.tokens[start:] {
		if t.op != nil {
			if stop(t.op) {
				break
			}
			w.pushOp(t.op)
		} else {
			w.pushAtom(t.node)
		}
	}
	return w
}

// ReplaceSublist replaces the elements of list in the half-open range
// [start, end) with the single element o:
//
//	ReplaceSublist([a, b, c, d, e], 1, 4, x) == [a, x, e]
func ReplaceSublist[T any](list []T, start, end int, o T) []T {
	if start >= end {
		panic("replace range must be non-empty")
	}
	out := append(list[:start+1], list[end:]...)
	out[start] = o
	return out
}
