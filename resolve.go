package exprtree

// Source supplies values for parameters on demand.
type Source[V Number] interface {
	// Prompt returns a value for the named parameter. It blocks until a valid
	// value is available, dealing with malformed input itself. An error means
	// the source cannot supply the value at all.
	Prompt(name string) (V, error)
}

// SourceFunc adapts a function to a Source.
type SourceFunc[V Number] func(name string) (V, error)

// Prompt calls f(name).
func (f SourceFunc[V]) Prompt(name string) (V, error) {
	return f(name)
}

// Resolve binds every parameter in e that env leaves unbound, asking src for
// each exactly once. Parameters are requested in the order Walk visits them,
// and a name that has been bound, whether by env or by an earlier request,
// is never requested again.
//
// The result is a new environment holding env followed by the new bindings
// in request order; env itself is unchanged. If src fails, the error is a
// *PromptError and the bindings obtained so far are returned with it.
func Resolve[V Number](e Expr[V], env Env[V], src Source[V]) (Env[V], error) {
	r := make(Env[V], len(env))
	copy(r, env)
	var err error
	Walk(e, func(e Expr[V]) bool {
		if err != nil {
			return false
		}
		p, ok := e.(Parameter[V])
		if !ok || r.Has(p.Name) {
			return true
		}
		v, perr := src.Prompt(p.Name)
		if perr != nil {
			err = &PromptError{Name: p.Name, Err: perr}
			return false
		}
		r = append(r, Binding[V]{Name: p.Name, Value: v})
		return true
	})
	return r, err
}

// EvalInteractive evaluates e, asking src for the value of each distinct
// parameter in e as it is first encountered.
func EvalInteractive[V Number](e Expr[V], src Source[V]) (V, error) {
	env, err := Resolve(e, nil, src)
	if err != nil {
		return 0, err
	}
	return Eval(e, env)
}
