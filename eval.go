package exprtree

import "fmt"

// Eval evaluates an expression using the values bound in env. If the
// expression uses a parameter that env does not bind, the error is a
// *NameError; division by zero gives a *DomainError.
//
// Both operands of every binary operator are evaluated, including && and ||.
// A ternary evaluates only the branch its condition selects.
func Eval[V Number](e Expr[V], env Env[V]) (V, error) {
	switch e := e.(type) {
	case Constant[V]:
		return e.Value, nil
	case Parameter[V]:
		v, ok := env.Lookup(e.Name)
		if !ok {
			return 0, &NameError{Name: e.Name}
		}
		return v, nil
	case Unary[V]:
		x, err := Eval(e.X, env)
		if err != nil {
			return 0, err
		}
		return unary(e.Op, x), nil
	case Binary[V]:
		l, err := Eval(e.L, env)
		if err != nil {
			return 0, err
		}
		r, err := Eval(e.R, env)
		if err != nil {
			return 0, err
		}
		return binop(e.Op, l, r)
	case Ternary[V]:
		c, err := Eval(e.Cond, env)
		if err != nil {
			return 0, err
		}
		if c != 0 {
			return Eval(e.Then, env)
		}
		return Eval(e.Else, env)
	case nil:
		panic("exprtree: Eval of nil expression")
	default:
		panic(fmt.Sprintf("exprtree: invalid AST node %T", e))
	}
}

func unary[V Number](op UnaryOp, x V) V {
	switch op {
	case OpInvert:
		return ^x
	case OpNegate:
		return -x
	case OpNot:
		return truth[V](x == 0)
	default:
		panic("exprtree: invalid unary operator " + op.String())
	}
}

func binop[V Number](op BinaryOp, l, r V) (V, error) {
	switch op {
	case OpAdd:
		return l + r, nil
	case OpSub:
		return l - r, nil
	case OpMul:
		return l * r, nil
	case OpDiv:
		if r == 0 {
			return 0, &DomainError{X: r, Func: op.String()}
		}
		return l / r, nil
	case OpBitAnd:
		return l & r, nil
	case OpBitOr:
		return l | r, nil
	case OpBitXor:
		return l ^ r, nil
	case OpEq:
		return truth[V](l == r), nil
	case OpNe:
		return truth[V](l != r), nil
	case OpGt:
		return truth[V](l > r), nil
	case OpLt:
		return truth[V](l < r), nil
	case OpGe:
		return truth[V](l >= r), nil
	case OpLe:
		return truth[V](l <= r), nil
	case OpLogicalAnd:
		return truth[V](l != 0 && r != 0), nil
	case OpLogicalOr:
		return truth[V](l != 0 || r != 0), nil
	default:
		panic("exprtree: invalid binary operator " + op.String())
	}
}

// truth converts a Go boolean to one or zero.
func truth[V Number](b bool) V {
	if b {
		return 1
	}
	return 0
}
