package interp

import (
	"time"
)

// Callable is implemented by values that can be invoked with a call
// expression: user-defined functions and built-in natives.
//
// Call receives the interpreter so bodies can be evaluated in it, and the
// already-evaluated argument values. The argument count has been checked
// against Arity() by the caller before Call is invoked.
type Callable interface {
	Value
	Arity() int
	Call(i *Interpreter, args []Value) Value
}

// BuiltinFunction is a native function implemented in Go.
type BuiltinFunction struct {
	Name  string
	arity int
	fn    func(i *Interpreter, args []Value) Value
}

// Type returns "BUILTIN".
func (b *BuiltinFunction) Type() string {
	return "BUILTIN"
}

// String returns the display form of the native, e.g. "<fn clock>".
func (b *BuiltinFunction) String() string {
	return "<fn " + b.Name + ">"
}

// Arity returns the declared parameter count.
func (b *BuiltinFunction) Arity() int {
	return b.arity
}

// Call invokes the native implementation.
func (b *BuiltinFunction) Call(i *Interpreter, args []Value) Value {
	return b.fn(i, args)
}

// registerBuiltins defines the native functions in the global environment.
// The Lox standard library is a single function: clock.
func registerBuiltins(env *Environment) {
	env.Define("clock", &BuiltinFunction{
		Name:  "clock",
		arity: 0,
		fn: func(_ *Interpreter, _ []Value) Value {
			// Whole seconds since the epoch; sub-second precision is
			// intentionally discarded.
			return &NumberValue{Value: float64(time.Now().Unix())}
		},
	})
}
