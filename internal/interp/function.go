package interp

import (
	"github.com/cwbudde/go-lox/internal/ast"
)

// FunctionValue represents a user-defined Lox function together with the
// environment captured at its declaration (the closure).
//
// The closure is whatever environment was current when the fun declaration
// was evaluated, not the global environment. A function defined inside a
// block therefore keeps reading and writing the block's variables even
// when called from elsewhere.
type FunctionValue struct {
	Declaration *ast.FunctionStatement
	Closure     *Environment
}

// Type returns "FUNCTION".
func (f *FunctionValue) Type() string {
	return "FUNCTION"
}

// String returns the display form of the function, e.g. "<fn fib>".
func (f *FunctionValue) String() string {
	return "<fn " + f.Declaration.Name.Literal + ">"
}

// Arity returns the declared parameter count.
func (f *FunctionValue) Arity() int {
	return len(f.Declaration.Parameters)
}

// Call executes the function body in a fresh environment enclosed by the
// captured closure. Parameters are bound in declaration order; the
// argument count has already been checked by the caller.
//
// The caller's environment is restored on every exit path: normal
// completion, early return, or a propagating runtime error.
func (f *FunctionValue) Call(i *Interpreter, args []Value) Value {
	previous := i.env
	defer func() {
		i.env = previous
	}()

	env := NewEnclosedEnvironment(f.Closure)
	for idx, param := range f.Declaration.Parameters {
		env.Define(param.Literal, args[idx])
	}
	i.env = env

	for _, stmt := range f.Declaration.Body {
		result := i.Eval(stmt)
		if isError(result) {
			return result
		}
		if i.returnSignal {
			i.returnSignal = false
			return i.returnValue
		}
	}

	// A body that completes without a return produces nil.
	return Nil
}
