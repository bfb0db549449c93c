package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/zephyrtronium/exprtree"
)

func compareCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "compare",
		Short: "Compare separately built copies of the demo expression",
		Long: `Build the demo expression twice, then once more with z renamed to w, and
show which of them are structurally equal.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			runCompare(cmd.OutOrStdout())
			return nil
		},
	}
}

func runCompare(out io.Writer) {
	exprs := []exprtree.Expr[int32]{
		demoExpr[int32]("z"),
		demoExpr[int32]("z"),
		demoExpr[int32]("w"),
	}
	for i, e := range exprs {
		fmt.Fprintf(out, "expr%d: %v\n", i+1, e)
	}
	for i, e := range exprs {
		fmt.Fprintf(out, "hash expr%d: %016x\n", i+1, e.Hash())
	}
	for _, j := range []int{1, 2} {
		fmt.Fprintf(out, "expr1 == expr%d: %s\n", j+1, truthy(exprs[0].Equal(exprs[j])))
	}
}

func truthy(b bool) string {
	if b {
		return color.GreenString("true")
	}
	return color.RedString("false")
}
