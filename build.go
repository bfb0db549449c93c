package exprtree

// Const creates a constant expression.
func Const[V Number](v V) Expr[V] {
	return Constant[V]{Value: v}
}

// Param creates a parameter expression. The type usually has to be given
// explicitly, e.g. Param[int]("x").
func Param[V Number](name string) Expr[V] {
	return Parameter[V]{Name: name}
}

// Bool creates a constant one if b is true and zero otherwise.
func Bool[V Number](b bool) Expr[V] {
	return Constant[V]{Value: truth[V](b)}
}

// NewUnary creates a unary expression. It panics if x is nil.
func NewUnary[V Number](op UnaryOp, x Expr[V]) Expr[V] {
	if x == nil {
		panic("exprtree: nil operand to " + op.String())
	}
	return Unary[V]{Op: op, X: x}
}

// NewBinary creates a binary expression. It panics if either operand is nil.
func NewBinary[V Number](op BinaryOp, l, r Expr[V]) Expr[V] {
	if l == nil || r == nil {
		panic("exprtree: nil operand to " + op.String())
	}
	return Binary[V]{Op: op, L: l, R: r}
}

// NewTernary creates a conditional expression. It panics if any operand is
// nil.
func NewTernary[V Number](cond, then, els Expr[V]) Expr[V] {
	if cond == nil || then == nil || els == nil {
		panic("exprtree: nil operand to ?:")
	}
	return Ternary[V]{Cond: cond, Then: then, Else: els}
}

// Switch is NewTernary: then if cond is nonzero, else els.
func Switch[V Number](cond, then, els Expr[V]) Expr[V] {
	return NewTernary(cond, then, els)
}

func Invert[V Number](x Expr[V]) Expr[V] { return NewUnary(OpInvert, x) }
func Negate[V Number](x Expr[V]) Expr[V] { return NewUnary(OpNegate, x) }
func Not[V Number](x Expr[V]) Expr[V]    { return NewUnary(OpNot, x) }

func Add[V Number](l, r Expr[V]) Expr[V]    { return NewBinary(OpAdd, l, r) }
func Sub[V Number](l, r Expr[V]) Expr[V]    { return NewBinary(OpSub, l, r) }
func Mul[V Number](l, r Expr[V]) Expr[V]    { return NewBinary(OpMul, l, r) }
func Div[V Number](l, r Expr[V]) Expr[V]    { return NewBinary(OpDiv, l, r) }
func BitAnd[V Number](l, r Expr[V]) Expr[V] { return NewBinary(OpBitAnd, l, r) }
func BitOr[V Number](l, r Expr[V]) Expr[V]  { return NewBinary(OpBitOr, l, r) }
func BitXor[V Number](l, r Expr[V]) Expr[V] { return NewBinary(OpBitXor, l, r) }
func Eq[V Number](l, r Expr[V]) Expr[V]     { return NewBinary(OpEq, l, r) }
func Ne[V Number](l, r Expr[V]) Expr[V]     { return NewBinary(OpNe, l, r) }
func Gt[V Number](l, r Expr[V]) Expr[V]     { return NewBinary(OpGt, l, r) }
func Lt[V Number](l, r Expr[V]) Expr[V]     { return NewBinary(OpLt, l, r) }
func Ge[V Number](l, r Expr[V]) Expr[V]     { return NewBinary(OpGe, l, r) }
func Le[V Number](l, r Expr[V]) Expr[V]     { return NewBinary(OpLe, l, r) }

// LogicalAnd is one if both operands are nonzero. Both operands are always
// evaluated.
func LogicalAnd[V Number](l, r Expr[V]) Expr[V] { return NewBinary(OpLogicalAnd, l, r) }

// LogicalOr is one if either operand is nonzero. Both operands are always
// evaluated.
func LogicalOr[V Number](l, r Expr[V]) Expr[V] { return NewBinary(OpLogicalOr, l, r) }
