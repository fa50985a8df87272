package value

import "sort"

// Environment maps variable names to their current values. It lives for the
// whole session so that variables persist between separately submitted
// programs. The binder only reads it; assignments during evaluation write it.
//
// An Environment has no internal locking. Hosts that share one between
// goroutines must serialise access themselves.
type Environment struct {
	vars map[string]Value
}

func NewEnvironment() *Environment {
	return &Environment{vars: make(map[string]Value)}
}

// Lookup returns the value bound to name and whether it exists.
func (e *Environment) Lookup(name string) (Value, bool) {
	v, ok := e.vars[name]
	return v, ok
}

// Assign binds name to v, replacing any previous value of any type.
func (e *Environment) Assign(name string, v Value) {
	e.vars[name] = v
}

// Len returns the number of variables.
func (e *Environment) Len() int {
	return len(e.vars)
}

// Names returns the variable names in sorted order.
func (e *Environment) Names() []string {
	names := make([]string, 0, len(e.vars))
	for name := range e.vars {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Clone returns an independent copy. Values are immutable, so a shallow copy
// of the map is enough.
func (e *Environment) Clone() *Environment {
	c := &Environment{vars: make(map[string]Value, len(e.vars))}
	for name, v := range e.vars {
		c.vars[name] = v
	}
	return c
}
