package exprtree

// Binding associates a parameter name with a value.
type Binding[V Number] struct {
	Name  string
	Value V
}

// Env is an ordered list of bindings used to evaluate expressions. Names may
// repeat; the first binding with a given name is the one that counts.
type Env[V Number] []Binding[V]

// Lookup returns the value of the first binding with the given name.
func (env Env[V]) Lookup(name string) (V, bool) {
	for _, b := range env {
		if b.Name == name {
			return b.Value, true
		}
	}
	return 0, false
}

// Has returns whether env binds name.
func (env Env[V]) Has(name string) bool {
	_, ok := env.Lookup(name)
	return ok
}

// Bind returns a copy of env with an additional binding at the end. env itself
// is never modified. Since lookups find the first binding, Bind cannot shadow
// a name env already binds.
func (env Env[V]) Bind(name string, value V) Env[V] {
	r := make(Env[V], len(env), len(env)+1)
	copy(r, env)
	return append(r, Binding[V]{Name: name, Value: value})
}

// Names returns the names bound in env, in order, without repeats.
func (env Env[V]) Names() []string {
	if len(env) == 0 {
		return nil
	}
	r := make([]string, 0, len(env))
	seen := make(map[string]bool, len(env))
	for _, b := range env {
		if seen[b.Name] {
			continue
		}
		seen[b.Name] = true
		r = append(r, b.Name)
	}
	return r
}
