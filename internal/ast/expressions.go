package ast

import (
	"bytes"
	"strings"

	"github.com/cwbudde/go-lox/internal/lexer"
)

// NumberLiteral represents a number literal value.
// All Lox numbers are 64-bit floats.
type NumberLiteral struct {
	Token lexer.Token // The NUMBER token
	Value float64
}

func (nl *NumberLiteral) expressionNode()      {}
func (nl *NumberLiteral) TokenLiteral() string { return nl.Token.Literal }
func (nl *NumberLiteral) String() string       { return nl.Token.Literal }
func (nl *NumberLiteral) Pos() lexer.Position  { return nl.Token.Pos }

// StringLiteral represents a string literal value.
type StringLiteral struct {
	Token lexer.Token // The STRING token
	Value string      // The string contents (without quotes)
}

func (sl *StringLiteral) expressionNode()      {}
func (sl *StringLiteral) TokenLiteral() string { return sl.Token.Literal }
func (sl *StringLiteral) String() string       { return "\"" + sl.Value + "\"" }
func (sl *StringLiteral) Pos() lexer.Position  { return sl.Token.Pos }

// BooleanLiteral represents the literals true and false.
type BooleanLiteral struct {
	Token lexer.Token // The TRUE or FALSE token
	Value bool
}

func (bl *BooleanLiteral) expressionNode()      {}
func (bl *BooleanLiteral) TokenLiteral() string { return bl.Token.Literal }
func (bl *BooleanLiteral) String() string       { return bl.Token.Literal }
func (bl *BooleanLiteral) Pos() lexer.Position  { return bl.Token.Pos }

// NilLiteral represents the literal nil.
type NilLiteral struct {
	Token lexer.Token // The NIL token
}

func (nl *NilLiteral) expressionNode()      {}
func (nl *NilLiteral) TokenLiteral() string { return nl.Token.Literal }
func (nl *NilLiteral) String() string       { return "nil" }
func (nl *NilLiteral) Pos() lexer.Position  { return nl.Token.Pos }

// Identifier represents a variable reference.
type Identifier struct {
	Token lexer.Token // The IDENT token
	Value string      // The variable name
}

func (i *Identifier) expressionNode()      {}
func (i *Identifier) TokenLiteral() string { return i.Token.Literal }
func (i *Identifier) String() string       { return i.Value }
func (i *Identifier) Pos() lexer.Position  { return i.Token.Pos }

// GroupingExpression represents a parenthesized expression.
type GroupingExpression struct {
	Token      lexer.Token // The LPAREN token
	Expression Expression
}

func (ge *GroupingExpression) expressionNode()      {}
func (ge *GroupingExpression) TokenLiteral() string { return ge.Token.Literal }
func (ge *GroupingExpression) String() string {
	return "(" + ge.Expression.String() + ")"
}
func (ge *GroupingExpression) Pos() lexer.Position { return ge.Token.Pos }

// UnaryExpression represents a prefix operator expression: -x or !x.
type UnaryExpression struct {
	Token    lexer.Token // The operator token
	Operator string
	Right    Expression
}

func (ue *UnaryExpression) expressionNode()      {}
func (ue *UnaryExpression) TokenLiteral() string { return ue.Token.Literal }
func (ue *UnaryExpression) String() string {
	return "(" + ue.Operator + ue.Right.String() + ")"
}
func (ue *UnaryExpression) Pos() lexer.Position { return ue.Token.Pos }

// BinaryExpression represents an infix operator expression.
type BinaryExpression struct {
	Token    lexer.Token // The operator token
	Operator string
	Left     Expression
	Right    Expression
}

func (be *BinaryExpression) expressionNode()      {}
func (be *BinaryExpression) TokenLiteral() string { return be.Token.Literal }
func (be *BinaryExpression) String() string {
	return "(" + be.Left.String() + " " + be.Operator + " " + be.Right.String() + ")"
}
func (be *BinaryExpression) Pos() lexer.Position { return be.Token.Pos }

// LogicalExpression represents the short-circuiting operators and / or.
// It is distinct from BinaryExpression because the right operand may
// never be evaluated.
type LogicalExpression struct {
	Token    lexer.Token // The AND or OR token
	Operator string
	Left     Expression
	Right    Expression
}

func (le *LogicalExpression) expressionNode()      {}
func (le *LogicalExpression) TokenLiteral() string { return le.Token.Literal }
func (le *LogicalExpression) String() string {
	return "(" + le.Left.String() + " " + le.Operator + " " + le.Right.String() + ")"
}
func (le *LogicalExpression) Pos() lexer.Position { return le.Token.Pos }

// AssignExpression represents an assignment: name = value.
// Assignment is an expression in Lox; its value is the assigned value.
type AssignExpression struct {
	Token lexer.Token // The name (IDENT) token
	Name  string
	Value Expression
}

func (ae *AssignExpression) expressionNode()      {}
func (ae *AssignExpression) TokenLiteral() string { return ae.Token.Literal }
func (ae *AssignExpression) String() string {
	return "(" + ae.Name + " = " + ae.Value.String() + ")"
}
func (ae *AssignExpression) Pos() lexer.Position { return ae.Token.Pos }

// CallExpression represents a function call.
// Paren is the closing parenthesis token; runtime errors raised while
// checking the call (arity, non-callable callee) are attached to it.
type CallExpression struct {
	Token     lexer.Token // The LPAREN token opening the argument list
	Callee    Expression
	Paren     lexer.Token // The RPAREN token closing the argument list
	Arguments []Expression
}

func (ce *CallExpression) expressionNode()      {}
func (ce *CallExpression) TokenLiteral() string { return ce.Token.Literal }
func (ce *CallExpression) String() string {
	var out bytes.Buffer

	args := make([]string, 0, len(ce.Arguments))
	for _, arg := range ce.Arguments {
		args = append(args, arg.String())
	}

	out.WriteString(ce.Callee.String())
	out.WriteString("(")
	out.WriteString(strings.Join(args, ", "))
	out.WriteString(")")

	return out.String()
}
func (ce *CallExpression) Pos() lexer.Position { return ce.Token.Pos }
