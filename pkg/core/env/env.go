// Package env implements the flat run-time variable store. One Env
// serves one program execution; there is no nesting and no shadowing.
package env

// binding is one name-value pair.
type binding struct {
	name  string
	value float64
}

const initialCapacity = 8

// Env holds all variables of a run in insertion order, unique by name.
// Lookups are linear scans with exact byte-for-byte name comparison.
type Env struct {
	bindings []binding
}

// New returns an empty environment.
func New() *Env {
	return &Env{bindings: make([]binding, 0, initialCapacity)}
}

// Set binds name to value. An existing binding is overwritten in place;
// a new name is appended. Re-declaring a 'let' goes through here too,
// since the language has no distinct update operator.
func (e *Env) Set(name string, value float64) {
	for i := range e.bindings {
		if e.bindings[i].name == name {
			e.bindings[i].value = value
			return
		}
	}
	e.bindings = append(e.bindings, binding{name: name, value: value})
}

// Get returns the value bound to name, or false if name is unbound.
func (e *Env) Get(name string) (float64, bool) {
	for i := range e.bindings {
		if e.bindings[i].name == name {
			return e.bindings[i].value, true
		}
	}
	return 0, false
}

// Len reports the number of distinct bindings.
func (e *Env) Len() int {
	return len(e.bindings)
}
