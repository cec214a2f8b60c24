/*
File   : oxa/environment/environment.go
Package: environment
*/

// Package environment implements Oxa's single flat variable scope: a
// mapping from name to a shared mutable cell holding an object.Object.
// There is no lexical nesting — spec.md §3/§4.4 call for one scope that
// persists for the life of the interpreter, unlike the teacher's
// parent-chained Scope, which exists to support closures Oxa does not have.
package environment

import "github.com/akashmaji946/oxa/object"

// Environment owns every bound variable cell for the program. Cells are
// pointers so that multiple expressions can observe the same mutable slot —
// the Go analogue of the upstream Rust source's Rc<RefCell<Object>>.
type Environment struct {
	values map[string]*object.Object
}

// New creates an empty Environment.
func New() *Environment {
	return &Environment{values: make(map[string]*object.Object)}
}

// Define inserts or overwrites the cell bound to name and returns it.
func (e *Environment) Define(name string, value object.Object) *object.Object {
	cell := &value
	e.values[name] = cell
	return cell
}

// Assign overwrites the cell bound to name if it is already defined,
// returning that cell and true. If name is not defined, it returns
// (nil, false); the caller is responsible for surfacing an undefined-variable
// error.
func (e *Environment) Assign(name string, value object.Object) (*object.Object, bool) {
	cell, ok := e.values[name]
	if !ok {
		return nil, false
	}
	*cell = value
	return cell, true
}

// Get returns the cell bound to name, or (nil, false) if undefined.
func (e *Environment) Get(name string) (*object.Object, bool) {
	cell, ok := e.values[name]
	return cell, ok
}
