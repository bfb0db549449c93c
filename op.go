package exprtree

import "strconv"

// UnaryOp is an operator applied to a single operand.
type UnaryOp uint8

const (
	OpInvert UnaryOp = iota // bitwise complement
	OpNegate                // arithmetic negation
	OpNot                   // logical not

	unaryOpCount
)

var unarySymbols = [unaryOpCount]string{
	OpInvert: "~",
	OpNegate: "-",
	OpNot:    "!",
}

// Valid returns whether op is one of the defined unary operators.
func (op UnaryOp) Valid() bool {
	return op < unaryOpCount
}

// String returns the operator's symbol.
func (op UnaryOp) String() string {
	if !op.Valid() {
		return "UnaryOp(" + strconv.Itoa(int(op)) + ")"
	}
	return unarySymbols[op]
}

// BinaryOp is an operator applied to two operands.
type BinaryOp uint8

const (
	OpAdd BinaryOp = iota
	OpSub
	OpMul
	OpDiv
	OpBitAnd
	OpBitOr
	OpBitXor
	OpEq
	OpNe
	OpGt
	OpLt
	OpGe
	OpLe
	OpLogicalAnd // 0 if either operand is 0, else 1; evaluates both operands
	OpLogicalOr  // 0 if both operands are 0, else 1; evaluates both operands

	binaryOpCount
)

var binarySymbols = [binaryOpCount]string{
	OpAdd:        "+",
	OpSub:        "-",
	OpMul:        "*",
	OpDiv:        "/",
	OpBitAnd:     "&",
	OpBitOr:      "|",
	OpBitXor:     "^",
	OpEq:         "==",
	OpNe:         "!=",
	OpGt:         ">",
	OpLt:         "<",
	OpGe:         ">=",
	OpLe:         "<=",
	OpLogicalAnd: "&&",
	OpLogicalOr:  "||",
}

// Valid returns whether op is one of the defined binary operators.
func (op BinaryOp) Valid() bool {
	return op < binaryOpCount
}

// String returns the operator's symbol.
func (op BinaryOp) String() string {
	if !op.Valid() {
		return "BinaryOp(" + strconv.Itoa(int(op)) + ")"
	}
	return binarySymbols[op]
}

// Comparison returns whether op compares its operands, producing 1 or 0.
func (op BinaryOp) Comparison() bool {
	return OpEq <= op && op <= OpLe
}
