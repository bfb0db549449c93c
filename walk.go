package exprtree

import "fmt"

// Walk calls fn for each node of e in depth-first, left-to-right order: a
// node before its operands, a binary operator's left operand before its
// right, and a ternary's condition, then its then-branch, then its else. If
// fn returns false, Walk skips the node's operands.
func Walk[V Number](e Expr[V], fn func(Expr[V]) bool) {
	if !fn(e) {
		return
	}
	switch e := e.(type) {
	case Constant[V], Parameter[V]:
		// leaves
	case Unary[V]:
		Walk(e.X, fn)
	case Binary[V]:
		Walk(e.L, fn)
		Walk(e.R, fn)
	case Ternary[V]:
		Walk(e.Cond, fn)
		Walk(e.Then, fn)
		Walk(e.Else, fn)
	default:
		panic(fmt.Sprintf("exprtree: invalid AST node %T", e))
	}
}

// Params returns the distinct parameter names used in e in the order of
// their first appearance. The result is nil if e has no parameters.
func Params[V Number](e Expr[V]) []string {
	var names []string
	seen := make(map[string]bool)
	Walk(e, func(e Expr[V]) bool {
		if p, ok := e.(Parameter[V]); ok && !seen[p.Name] {
			seen[p.Name] = true
			names = append(names, p.Name)
		}
		return true
	})
	return names
}
