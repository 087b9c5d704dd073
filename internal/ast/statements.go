package ast

import (
	"bytes"
	"strings"

	"github.com/cwbudde/go-lox/internal/lexer"
)

// ExpressionStatement wraps an expression evaluated for its side effects.
type ExpressionStatement struct {
	Token      lexer.Token // The first token of the expression
	Expression Expression
}

func (es *ExpressionStatement) statementNode()       {}
func (es *ExpressionStatement) TokenLiteral() string { return es.Token.Literal }
func (es *ExpressionStatement) String() string {
	return es.Expression.String() + ";"
}
func (es *ExpressionStatement) Pos() lexer.Position { return es.Token.Pos }

// PrintStatement writes the display form of an expression to the output.
type PrintStatement struct {
	Token      lexer.Token // The PRINT token
	Expression Expression
}

func (ps *PrintStatement) statementNode()       {}
func (ps *PrintStatement) TokenLiteral() string { return ps.Token.Literal }
func (ps *PrintStatement) String() string {
	return "print " + ps.Expression.String() + ";"
}
func (ps *PrintStatement) Pos() lexer.Position { return ps.Token.Pos }

// VarStatement declares a variable with an optional initializer.
type VarStatement struct {
	Token       lexer.Token // The VAR token
	Name        lexer.Token // The IDENT token naming the variable
	Initializer Expression  // nil when the declaration has no initializer
}

func (vs *VarStatement) statementNode()       {}
func (vs *VarStatement) TokenLiteral() string { return vs.Token.Literal }
func (vs *VarStatement) String() string {
	var out bytes.Buffer

	out.WriteString("var ")
	out.WriteString(vs.Name.Literal)
	if vs.Initializer != nil {
		out.WriteString(" = ")
		out.WriteString(vs.Initializer.String())
	}
	out.WriteString(";")

	return out.String()
}
func (vs *VarStatement) Pos() lexer.Position { return vs.Token.Pos }

// BlockStatement groups statements and introduces a new scope.
type BlockStatement struct {
	Token      lexer.Token // The LBRACE token
	Statements []Statement
}

func (bs *BlockStatement) statementNode()       {}
func (bs *BlockStatement) TokenLiteral() string { return bs.Token.Literal }
func (bs *BlockStatement) String() string {
	var out bytes.Buffer

	out.WriteString("{ ")
	for _, stmt := range bs.Statements {
		out.WriteString(stmt.String())
		out.WriteString(" ")
	}
	out.WriteString("}")

	return out.String()
}
func (bs *BlockStatement) Pos() lexer.Position { return bs.Token.Pos }

// IfStatement executes one of two branches based on a condition.
type IfStatement struct {
	Token      lexer.Token // The IF token
	Condition  Expression
	ThenBranch Statement
	ElseBranch Statement // nil when there is no else branch
}

func (is *IfStatement) statementNode()       {}
func (is *IfStatement) TokenLiteral() string { return is.Token.Literal }
func (is *IfStatement) String() string {
	var out bytes.Buffer

	out.WriteString("if (")
	out.WriteString(is.Condition.String())
	out.WriteString(") ")
	out.WriteString(is.ThenBranch.String())
	if is.ElseBranch != nil {
		out.WriteString(" else ")
		out.WriteString(is.ElseBranch.String())
	}

	return out.String()
}
func (is *IfStatement) Pos() lexer.Position { return is.Token.Pos }

// WhileStatement executes its body while the condition is truthy.
// The parser also desugars for loops into this node.
type WhileStatement struct {
	Token     lexer.Token // The WHILE (or FOR) token
	Condition Expression
	Body      Statement
}

func (ws *WhileStatement) statementNode()       {}
func (ws *WhileStatement) TokenLiteral() string { return ws.Token.Literal }
func (ws *WhileStatement) String() string {
	return "while (" + ws.Condition.String() + ") " + ws.Body.String()
}
func (ws *WhileStatement) Pos() lexer.Position { return ws.Token.Pos }

// FunctionStatement declares a named function.
type FunctionStatement struct {
	Token      lexer.Token   // The FUN token
	Name       lexer.Token   // The IDENT token naming the function
	Parameters []lexer.Token // Parameter name tokens, in declaration order
	Body       []Statement   // The statements of the function body
}

func (fs *FunctionStatement) statementNode()       {}
func (fs *FunctionStatement) TokenLiteral() string { return fs.Token.Literal }
func (fs *FunctionStatement) String() string {
	var out bytes.Buffer

	params := make([]string, 0, len(fs.Parameters))
	for _, param := range fs.Parameters {
		params = append(params, param.Literal)
	}

	out.WriteString("fun ")
	out.WriteString(fs.Name.Literal)
	out.WriteString("(")
	out.WriteString(strings.Join(params, ", "))
	out.WriteString(") { ")
	for _, stmt := range fs.Body {
		out.WriteString(stmt.String())
		out.WriteString(" ")
	}
	out.WriteString("}")

	return out.String()
}
func (fs *FunctionStatement) Pos() lexer.Position { return fs.Token.Pos }

// ReturnStatement returns from the nearest enclosing function.
type ReturnStatement struct {
	Token lexer.Token // The RETURN token
	Value Expression  // nil for a bare return
}

func (rs *ReturnStatement) statementNode()       {}
func (rs *ReturnStatement) TokenLiteral() string { return rs.Token.Literal }
func (rs *ReturnStatement) String() string {
	if rs.Value != nil {
		return "return " + rs.Value.String() + ";"
	}
	return "return;"
}
func (rs *ReturnStatement) Pos() lexer.Position { return rs.Token.Pos }
