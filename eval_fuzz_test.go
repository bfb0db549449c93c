package exprtree_test

import (
	"testing"

	"github.com/zephyrtronium/exprtree"
)

// fuzzNode builds an expression from a byte string, returning the unused
// remainder.
func fuzzNode(b []byte, depth int) (expr, []byte) {
	if len(b) == 0 || depth > 12 {
		return c(1), b
	}
	k, b := b[0], b[1:]
	switch k % 5 {
	case 0:
		return c(int(int8(k))), b
	case 1:
		return p([]string{"x", "y", "z"}[int(k/5)%3]), b
	case 2:
		x, b := fuzzNode(b, depth+1)
		return exprtree.NewUnary(exprtree.UnaryOp(int(k/5)%3), x), b
	case 3:
		l, b := fuzzNode(b, depth+1)
		r, b := fuzzNode(b, depth+1)
		return exprtree.NewBinary(exprtree.BinaryOp(int(k/5)%15), l, r), b
	default:
		cond, b := fuzzNode(b, depth+1)
		then, b := fuzzNode(b, depth+1)
		els, b := fuzzNode(b, depth+1)
		return exprtree.Switch(cond, then, els), b
	}
}

func FuzzEval(f *testing.F) {
	f.Add([]byte{0})
	f.Add([]byte{3, 1, 6})
	f.Add([]byte{4, 1, 2, 0, 3, 11, 15, 18})
	f.Fuzz(func(t *testing.T, b []byte) {
		e, _ := fuzzNode(b, 0)
		d, _ := fuzzNode(b, 0)
		if !e.Equal(d) || e.Hash() != d.Hash() || e.String() != d.String() {
			t.Fatalf("rebuilding %v gave a different tree %v", e, d)
		}
		env := exprtree.Env[int]{{"x", 3}, {"y", 0}, {"z", -5}}
		r1, err1 := exprtree.Eval(e, env)
		r2, err2 := exprtree.Eval(d, env)
		if r1 != r2 || (err1 == nil) != (err2 == nil) {
			t.Fatalf("%v evaluated differently: %d (%v), %d (%v)", e, r1, err1, r2, err2)
		}
	})
}
