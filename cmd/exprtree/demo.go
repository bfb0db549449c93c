package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/zephyrtronium/exprtree"
)

type demoOptions struct {
	width    int
	given    givenFlag
	bindings string
	plain    bool
}

func demoCommand() *cobra.Command {
	var opts demoOptions
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Evaluate the demo expression, asking for its parameters",
		Long: `Print the demo expression and evaluate it. Parameters not given with --given
or --bindings are asked for in the order the expression first uses them.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			switch opts.width {
			case 8:
				return runDemo[int8](cmd.InOrStdin(), cmd.OutOrStdout(), &opts)
			case 16:
				return runDemo[int16](cmd.InOrStdin(), cmd.OutOrStdout(), &opts)
			case 32:
				return runDemo[int32](cmd.InOrStdin(), cmd.OutOrStdout(), &opts)
			case 64:
				return runDemo[int64](cmd.InOrStdin(), cmd.OutOrStdout(), &opts)
			default:
				return errors.Errorf("width must be 8, 16, 32, or 64, not %d", opts.width)
			}
		},
	}
	f := cmd.Flags()
	f.IntVar(&opts.width, "width", 32, "bits in the integer type of the expression")
	f.Var(&opts.given, "given", "name=value parameter definition (any number of times)")
	f.StringVar(&opts.bindings, "bindings", "", "YAML or TOML file of parameter values")
	f.BoolVar(&opts.plain, "plain", false, "read parameter values as plain lines even on a terminal")
	return cmd
}

// demoExpr builds the expression
//
//	((((! ((((4) + (-3)) * ((4) - (-3))) > (x))) ? (y) : (z)) - (4)) > (x)) ? ((z) + (4)) : ((y) / (-3))
//
// with z replaced by the given name.
func demoExpr[V exprtree.Number](z string) exprtree.Expr[V] {
	three := V(3)
	a, b := exprtree.Const(V(4)), exprtree.Const(-three)
	x, y, zz := exprtree.Param[V]("x"), exprtree.Param[V]("y"), exprtree.Param[V](z)
	c := exprtree.Not(exprtree.Gt(exprtree.Mul(exprtree.Add(a, b), exprtree.Sub(a, b)), x))
	return exprtree.Switch(
		exprtree.Gt(exprtree.Sub(exprtree.Switch(c, y, zz), a), x),
		exprtree.Add(zz, a),
		exprtree.Div(y, b),
	)
}

func runDemo[V exprtree.Number](in io.Reader, out io.Writer, opts *demoOptions) error {
	e := demoExpr[V]("z")
	fmt.Fprintln(out, e)
	env, err := predefined[V](opts)
	if err != nil {
		return err
	}
	env, err = exprtree.Resolve(e, env, source[V](in, out, opts.plain))
	if err != nil {
		return err
	}
	logrus.WithFields(logrus.Fields{"params": env.Names(), "bindings": env}).Debug("resolved parameters")
	r, err := exprtree.Eval(e, env)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, r)
	return nil
}

// predefined collects the parameter values given on the command line, then
// those in the bindings file. Since the first binding of a name wins, the
// command line overrides the file.
func predefined[V exprtree.Number](opts *demoOptions) (exprtree.Env[V], error) {
	defs := opts.given.defs
	if opts.bindings != "" {
		b, err := loadBindings(opts.bindings)
		if err != nil {
			return nil, err
		}
		defs = append(defs[:len(defs):len(defs)], b...)
	}
	var env exprtree.Env[V]
	for _, d := range defs {
		v, err := exprtree.ParseNumber[V](d.text)
		if err != nil {
			return nil, errors.Wrapf(err, "setting %s", d.name)
		}
		env = env.Bind(d.name, v)
	}
	return env, nil
}

// source chooses how to ask for parameter values. A terminal gets an
// interactive prompt; anything else is read line by line.
func source[V exprtree.Number](in io.Reader, out io.Writer, plain bool) exprtree.Source[V] {
	if f, ok := in.(*os.File); ok && !plain && isatty.IsTerminal(f.Fd()) {
		return termSource[V]{}
	}
	return exprtree.NewReaderSource(in, out, exprtree.WithLogger[V](logrus.StandardLogger()))
}
