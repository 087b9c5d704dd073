package interp

import (
	"math"
	"strconv"
)

// Value is the interface implemented by all Lox runtime values.
// Every value carries a precise type tag; operations that require a
// specific type inspect the tag and fail with a runtime error rather
// than coercing.
type Value interface {
	// Type returns the type tag of the value, e.g. "NUMBER" or "STRING".
	Type() string

	// String returns the display form of the value, as produced by print.
	String() string
}

// ============================================================================
// Primitive Value Types
// ============================================================================

// NumberValue represents a Lox number. All numbers are IEEE-754 doubles.
type NumberValue struct {
	Value float64
}

// Type returns "NUMBER".
func (n *NumberValue) Type() string {
	return "NUMBER"
}

// String returns the display form of the number. Integral values print
// without a fractional part: 3, not 3.0.
func (n *NumberValue) String() string {
	if n.Value == math.Trunc(n.Value) && !math.IsInf(n.Value, 0) {
		return strconv.FormatFloat(n.Value, 'f', -1, 64)
	}
	return strconv.FormatFloat(n.Value, 'g', -1, 64)
}

// StringValue represents a Lox string.
type StringValue struct {
	Value string
}

// Type returns "STRING".
func (s *StringValue) Type() string {
	return "STRING"
}

// String returns the string contents without surrounding quotes.
func (s *StringValue) String() string {
	return s.Value
}

// BooleanValue represents a Lox boolean.
type BooleanValue struct {
	Value bool
}

// Type returns "BOOLEAN".
func (b *BooleanValue) Type() string {
	return "BOOLEAN"
}

// String returns "true" or "false".
func (b *BooleanValue) String() string {
	if b.Value {
		return "true"
	}
	return "false"
}

// NilValue represents the Lox nil value.
type NilValue struct{}

// Type returns "NIL".
func (n *NilValue) Type() string {
	return "NIL"
}

// String returns "nil".
func (n *NilValue) String() string {
	return "nil"
}

// Nil is the shared nil value. Nil carries no state, so a single instance
// serves every occurrence.
var Nil = &NilValue{}

// True and False are the shared boolean values.
var (
	True  = &BooleanValue{Value: true}
	False = &BooleanValue{Value: false}
)

// boolValue returns the shared boolean value for b.
func boolValue(b bool) *BooleanValue {
	if b {
		return True
	}
	return False
}

// IsTruthy classifies a value for boolean contexts. Only nil and false
// are falsey; every other value, including 0 and "", is truthy.
func IsTruthy(val Value) bool {
	switch v := val.(type) {
	case *NilValue:
		return false
	case *BooleanValue:
		return v.Value
	default:
		return true
	}
}

// ValuesEqual implements Lox equality. Values of different types are
// never equal; matching types compare structurally (numbers follow
// IEEE-754, so NaN != NaN). Callables compare by identity. Never fails.
func ValuesEqual(a, b Value) bool {
	switch av := a.(type) {
	case *NilValue:
		_, ok := b.(*NilValue)
		return ok
	case *BooleanValue:
		bv, ok := b.(*BooleanValue)
		return ok && av.Value == bv.Value
	case *NumberValue:
		bv, ok := b.(*NumberValue)
		return ok && av.Value == bv.Value
	case *StringValue:
		bv, ok := b.(*StringValue)
		return ok && av.Value == bv.Value
	default:
		// Callables are shared immutable references; identity equality.
		return a == b
	}
}
