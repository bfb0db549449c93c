package exprtree

import (
	"fmt"
	"strconv"
)

// NameError is an error from a lookup for a parameter that is missing from
// the evaluation environment.
type NameError struct {
	// Name is the name that was missing.
	Name string
}

func (err *NameError) Error() string {
	return "undefined parameter " + strconv.Quote(err.Name)
}

// DomainError is an error returned when an operator is applied to operands
// outside its domain, which for integers means division by zero.
type DomainError struct {
	// X is the operand outside the domain, such as a zero divisor.
	X any
	// Func is the operator symbol.
	Func string
}

func (err *DomainError) Error() string {
	r := fmt.Sprint(err.X) + " outside domain"
	if err.Func != "" {
		r += " of " + err.Func
	}
	return r
}

// PromptError is an error returned when a value source fails to supply a
// value for a parameter.
type PromptError struct {
	// Name is the parameter being prompted.
	Name string
	// Err is the error from the source.
	Err error
}

func (err *PromptError) Error() string {
	return "prompting for " + strconv.Quote(err.Name) + ": " + err.Err.Error()
}

func (err *PromptError) Unwrap() error {
	return err.Err
}
