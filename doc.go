// Package exprtree implements expression trees over integers.
//
// Trees are built from constants and named parameters with functions like Add,
// Gt, Not, and Switch, the last being the conditional operator. Zero is false
// and any other value is true; comparisons and logical operators produce one
// for true. Trees are immutable, compare structurally with Equal, and print
// with every operand parenthesized:
//
//	e := exprtree.Add(exprtree.Const(4), exprtree.Param[int]("x"))
//	fmt.Println(e) // (4) + (x)
//
// Eval computes a tree's value given an Env binding each parameter. When the
// values aren't known up front, EvalInteractive asks a Source for each
// parameter the first time the walk reaches it, so a parameter used several
// times is asked for only once.
//
package exprtree
