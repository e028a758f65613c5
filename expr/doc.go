// Package expr assembles flat operand and operator lists into
// expression trees by precedence climbing.
//
// A grammar that recognizes expressions bottom-up ends up with a flat
// list like
//
//	1 + 2 * 3
//
// in which every operand is already a finished Node and every operator
// is an OpItem naming an Operator from the dialect's table. Reduce
// repeatedly folds the highest-precedence operator whose operands are
// ready until one node remains:
//
//	items := []expr.Item{
//		one, expr.NewOpItem(plus, p1),
//		two, expr.NewOpItem(times, p2),
//		three,
//	}
//	node, err := expr.Reduce(items)
//	// node.String() == "(+ 1 (* 2 3))"
//
// Infix associativity comes from an operator's precedence pair: a
// left-associative operator has LeftPrec < RightPrec, so equal
// operators fold leftmost-first, while a right-associative one has
// the pair reversed and folds rightmost-first.
//
// # Special operators
//
// Operators whose shape is not prefix, postfix or infix, such as
// BETWEEN or array subscripts, register as Special with a ReduceFunc.
// The engine calls the function with a TokenSequence view of the
// tokens under reduction and the operator's position; the function
// decides how many neighbors it consumes and returns the replacement
// node. ReduceRange lets such a function reduce a subrange first, for
// instance everything up to a closing bracket.
//
// # Failures
//
// Reduction failing to reach a single node means the operator table
// and the token list disagree; that is reported as an InvariantError
// naming the leftover tokens, and is a bug in the calling grammar
// rather than in the user's input.
package expr
