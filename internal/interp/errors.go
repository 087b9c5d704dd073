package interp

import (
	"fmt"

	"github.com/cwbudde/go-lox/internal/lexer"
)

// ErrorValue represents a runtime error. It propagates through Eval like
// any other value; every evaluation step checks for it and unwinds.
//
// Token, when set, identifies the operator or name the error is attached
// to, for line reporting.
type ErrorValue struct {
	Message  string
	Token    lexer.Token
	hasToken bool
}

// Type returns "ERROR".
func (e *ErrorValue) Type() string { return "ERROR" }

// String returns the formatted error. With a token attached the form is
// "[Line L] Error 'LEXEME': MESSAGE"; without one, the bare message.
func (e *ErrorValue) String() string {
	if e.hasToken {
		return fmt.Sprintf("[Line %d] Error '%s': %s", e.Token.Pos.Line, e.Token.Literal, e.Message)
	}
	return e.Message
}

// newError creates a runtime error with no source position.
func newError(format string, args ...interface{}) *ErrorValue {
	return &ErrorValue{Message: fmt.Sprintf(format, args...)}
}

// newErrorAt creates a runtime error attached to the given token.
func newErrorAt(tok lexer.Token, format string, args ...interface{}) *ErrorValue {
	return &ErrorValue{Message: fmt.Sprintf(format, args...), Token: tok, hasToken: true}
}

// isError reports whether a value is a runtime error being propagated.
func isError(val Value) bool {
	if val == nil {
		return false
	}
	_, ok := val.(*ErrorValue)
	return ok
}
