package interp

// Environment represents a symbol table for variable storage and scope
// management. It supports nested scopes through the outer environment
// reference, enabling proper lexical scoping for Lox programs.
//
// Environments are shared by reference: a closure keeps its declaring
// environment alive for as long as the closure itself is reachable.
type Environment struct {
	// store maps variable names to their runtime values. Lox is
	// case-sensitive, so names are used as written.
	store map[string]Value
	// outer references the enclosing (parent) environment for nested scopes
	outer *Environment
}

// NewEnvironment creates a new root-level environment with no outer scope.
// This is typically used for the global scope of a program.
func NewEnvironment() *Environment {
	return &Environment{
		store: make(map[string]Value),
		outer: nil,
	}
}

// NewEnclosedEnvironment creates a new environment that is enclosed by the
// given outer environment. This is used for creating nested scopes such as
// blocks and function bodies.
//
// When resolving variables, the inner environment is checked first, then
// the outer environments are searched recursively up the scope chain.
func NewEnclosedEnvironment(outer *Environment) *Environment {
	return &Environment{
		store: make(map[string]Value),
		outer: outer,
	}
}

// Get retrieves a variable value by name. It searches the current
// environment first, then recursively searches outer (parent) environments
// if not found.
//
// Returns the value and true if found, or nil and false if the variable is
// undefined in this scope chain.
func (e *Environment) Get(name string) (Value, bool) {
	if val, ok := e.store[name]; ok {
		return val, true
	}

	if e.outer != nil {
		return e.outer.Get(name)
	}

	return nil, false
}

// Assign updates an existing variable's value. It searches the current
// environment first, then recursively searches outer environments to find
// where the variable is defined.
//
// Returns false if the variable is not defined in any scope in the chain;
// it never creates a new binding. Use Define() to create variables.
func (e *Environment) Assign(name string, val Value) bool {
	if _, ok := e.store[name]; ok {
		e.store[name] = val
		return true
	}

	if e.outer != nil {
		return e.outer.Assign(name, val)
	}

	return false
}

// Define creates a new variable in the current environment's scope.
// If a variable with the same name already exists in this scope, it is
// overwritten (no error is returned); Lox permits redeclaration.
//
// This differs from Assign() which only updates existing variables.
// Define() is used for variable declarations and parameter binding.
func (e *Environment) Define(name string, val Value) {
	e.store[name] = val
}

// Has checks if a variable is defined in the current environment or any
// outer scope.
func (e *Environment) Has(name string) bool {
	_, ok := e.Get(name)
	return ok
}

// GetLocal retrieves a variable value only from the current environment,
// without searching outer scopes. This is useful for checking whether a
// variable is shadowing an outer variable.
func (e *Environment) GetLocal(name string) (Value, bool) {
	val, ok := e.store[name]
	return val, ok
}

// Size returns the number of variables defined in the current environment
// (not including outer scopes).
func (e *Environment) Size() int {
	return len(e.store)
}

// Outer returns the outer (parent) environment, or nil if this is the root
// environment. This is primarily used for testing and debugging.
func (e *Environment) Outer() *Environment {
	return e.outer
}
