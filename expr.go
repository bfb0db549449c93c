package exprtree

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/exp/constraints"
)

// Number is the set of types over which expressions compute. Zero is false
// and one is the canonical true.
type Number interface {
	constraints.Integer
}

// Expr is a node in an expression tree. The implementations are exactly
// Constant, Parameter, Unary, Binary, and Ternary. Expressions are immutable
// once built and may be shared freely, including between goroutines.
type Expr[V Number] interface {
	// String formats the expression with every operand parenthesized.
	String() string
	// Equal reports whether e has the same shape as the receiver, with the
	// same operators, values, and names at every position.
	Equal(e Expr[V]) bool
	// Hash returns a hash of the expression consistent with Equal.
	Hash() uint64

	fmt(b *strings.Builder)
	hash(d *xxhash.Digest)
}

// Constant is a leaf holding a value.
type Constant[V Number] struct {
	Value V
}

// Parameter is a leaf naming a value supplied at evaluation.
type Parameter[V Number] struct {
	Name string
}

// Unary is the application of a unary operator.
type Unary[V Number] struct {
	Op UnaryOp
	X  Expr[V]
}

// Binary is the application of a binary operator.
type Binary[V Number] struct {
	Op   BinaryOp
	L, R Expr[V]
}

// Ternary selects Then when Cond is nonzero and Else otherwise.
type Ternary[V Number] struct {
	Cond, Then, Else Expr[V]
}

// Tags written ahead of each node's fields when hashing.
const (
	tagConstant byte = 1 + iota
	tagParameter
	tagUnary
	tagBinary
	tagTernary
)

func (c Constant[V]) String() string  { return str[V](c) }
func (p Parameter[V]) String() string { return str[V](p) }
func (u Unary[V]) String() string     { return str[V](u) }
func (b Binary[V]) String() string    { return str[V](b) }
func (t Ternary[V]) String() string   { return str[V](t) }

func str[V Number](e Expr[V]) string {
	var b strings.Builder
	e.fmt(&b)
	return b.String()
}

func (c Constant[V]) fmt(b *strings.Builder) {
	fmt.Fprint(b, c.Value)
}

func (p Parameter[V]) fmt(b *strings.Builder) {
	b.WriteString(p.Name)
}

func (u Unary[V]) fmt(b *strings.Builder) {
	b.WriteString(u.Op.String())
	b.WriteByte(' ')
	paren(b, u.X)
}

func (n Binary[V]) fmt(b *strings.Builder) {
	paren(b, n.L)
	b.WriteByte(' ')
	b.WriteString(n.Op.String())
	b.WriteByte(' ')
	paren(b, n.R)
}

func (t Ternary[V]) fmt(b *strings.Builder) {
	paren(b, t.Cond)
	b.WriteString(" ? ")
	paren(b, t.Then)
	b.WriteString(" : ")
	paren(b, t.Else)
}

func paren[V Number](b *strings.Builder, e Expr[V]) {
	b.WriteByte('(')
	e.fmt(b)
	b.WriteByte(')')
}

func (c Constant[V]) Equal(e Expr[V]) bool {
	o, ok := e.(Constant[V])
	return ok && o.Value == c.Value
}

func (p Parameter[V]) Equal(e Expr[V]) bool {
	o, ok := e.(Parameter[V])
	return ok && o.Name == p.Name
}

func (u Unary[V]) Equal(e Expr[V]) bool {
	o, ok := e.(Unary[V])
	return ok && o.Op == u.Op && u.X.Equal(o.X)
}

func (n Binary[V]) Equal(e Expr[V]) bool {
	o, ok := e.(Binary[V])
	return ok && o.Op == n.Op && n.L.Equal(o.L) && n.R.Equal(o.R)
}

func (t Ternary[V]) Equal(e Expr[V]) bool {
	o, ok := e.(Ternary[V])
	return ok && t.Cond.Equal(o.Cond) && t.Then.Equal(o.Then) && t.Else.Equal(o.Else)
}

// Equal reports whether two expressions are structurally equal. Unlike the
// Equal method, it accepts nil expressions, which are equal only to nil.
func Equal[V Number](a, b Expr[V]) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(b)
}

func (c Constant[V]) Hash() uint64  { return sum[V](c) }
func (p Parameter[V]) Hash() uint64 { return sum[V](p) }
func (u Unary[V]) Hash() uint64     { return sum[V](u) }
func (b Binary[V]) Hash() uint64    { return sum[V](b) }
func (t Ternary[V]) Hash() uint64   { return sum[V](t) }

// Hash returns the hash of an expression. The hash of nil is zero.
func Hash[V Number](e Expr[V]) uint64 {
	if e == nil {
		return 0
	}
	return e.Hash()
}

func sum[V Number](e Expr[V]) uint64 {
	d := xxhash.New()
	e.hash(d)
	return d.Sum64()
}

func (c Constant[V]) hash(d *xxhash.Digest) {
	var buf [9]byte
	buf[0] = tagConstant
	binary.LittleEndian.PutUint64(buf[1:], uint64(c.Value))
	d.Write(buf[:])
}

func (p Parameter[V]) hash(d *xxhash.Digest) {
	// Length prefix keeps adjacent names from running together.
	var buf [9]byte
	buf[0] = tagParameter
	binary.LittleEndian.PutUint64(buf[1:], uint64(len(p.Name)))
	d.Write(buf[:])
	d.WriteString(p.Name)
}

func (u Unary[V]) hash(d *xxhash.Digest) {
	d.Write([]byte{tagUnary, byte(u.Op)})
	u.X.hash(d)
}

func (n Binary[V]) hash(d *xxhash.Digest) {
	d.Write([]byte{tagBinary, byte(n.Op)})
	n.L.hash(d)
	n.R.hash(d)
}

func (t Ternary[V]) hash(d *xxhash.Digest) {
	d.Write([]byte{tagTernary})
	t.Cond.hash(d)
	t.Then.hash(d)
	t.Else.hash(d)
}
