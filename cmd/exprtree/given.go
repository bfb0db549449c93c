package main

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
)

// definition is a parameter value as text, to be parsed once the integer
// type is known.
type definition struct {
	name, text string
}

// givenFlag collects --given name=value definitions in order.
type givenFlag struct {
	defs []definition
}

var _ pflag.Value = (*givenFlag)(nil)

func (g *givenFlag) String() string {
	s := make([]string, len(g.defs))
	for i, d := range g.defs {
		s[i] = d.name + "=" + d.text
	}
	return strings.Join(s, ",")
}

func (g *givenFlag) Set(s string) error {
	d := strings.SplitN(s, "=", 2)
	if len(d) != 2 || strings.TrimSpace(d[0]) == "" {
		return fmt.Errorf(`parameter definitions must be "name=value", not %q`, s)
	}
	g.defs = append(g.defs, definition{name: strings.TrimSpace(d[0]), text: strings.TrimSpace(d[1])})
	return nil
}

func (g *givenFlag) Type() string {
	return "name=value"
}
