package main

import (
	"github.com/manifoldco/promptui"

	"github.com/zephyrtronium/exprtree"
)

// termSource asks for parameter values on the terminal. Input that does not
// parse is rejected while it is typed, so Prompt only fails on interrupt or
// end of input.
type termSource[V exprtree.Number] struct{}

func (termSource[V]) Prompt(name string) (V, error) {
	p := promptui.Prompt{
		Label:    "Parameter " + name,
		Validate: validate[V],
	}
	s, err := p.Run()
	if err != nil {
		return 0, err
	}
	return exprtree.ParseNumber[V](s)
}

func validate[V exprtree.Number](s string) error {
	_, err := exprtree.ParseNumber[V](s)
	return err
}
