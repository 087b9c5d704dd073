// Package parser implements the Lox parser using Pratt parsing.
//
// Key patterns:
//   - Precedence climbing via prefixParseFns/infixParseFns maps
//   - Error accumulation: errors are collected, not thrown; callers check Errors()
//   - Error recovery: synchronize() skips to the next statement boundary
package parser

import (
	"fmt"
	"strconv"

	"github.com/cwbudde/go-lox/internal/ast"
	"github.com/cwbudde/go-lox/internal/lexer"
)

// Precedence levels for operators (lowest to highest).
const (
	_ int = iota
	LOWEST
	ASSIGN      // =
	OR          // or
	AND         // and
	EQUALS      // == !=
	LESSGREATER // < > <= >=
	SUM         // + -
	PRODUCT     // * /
	PREFIX      // -x, !x
	CALL        // function(args)
)

// precedences maps token types to their precedence levels.
var precedences = map[lexer.TokenType]int{
	lexer.ASSIGN:     ASSIGN,
	lexer.OR:         OR,
	lexer.AND:        AND,
	lexer.EQ:         EQUALS,
	lexer.BANG_EQ:    EQUALS,
	lexer.LESS:       LESSGREATER,
	lexer.GREATER:    LESSGREATER,
	lexer.LESS_EQ:    LESSGREATER,
	lexer.GREATER_EQ: LESSGREATER,
	lexer.PLUS:       SUM,
	lexer.MINUS:      SUM,
	lexer.STAR:       PRODUCT,
	lexer.SLASH:      PRODUCT,
	lexer.LPAREN:     CALL,
}

// maxArguments is the limit on call arguments and function parameters.
const maxArguments = 255

// prefixParseFn parses prefix expressions (literals, unary ops, grouping).
type prefixParseFn func() ast.Expression

// infixParseFn parses infix expressions (binary ops, calls, assignment).
type infixParseFn func(ast.Expression) ast.Expression

// ParserError represents a single parse error with its source position.
type ParserError struct {
	Message string
	Token   lexer.Token
}

// Error implements the error interface using the conventional Lox format.
func (e *ParserError) Error() string {
	if e.Token.Type == lexer.EOF {
		return fmt.Sprintf("[line %d] Error at end: %s", e.Token.Pos.Line, e.Message)
	}
	return fmt.Sprintf("[line %d] Error at '%s': %s", e.Token.Pos.Line, e.Token.Literal, e.Message)
}

// Parser represents the Lox parser.
type Parser struct {
	l              *lexer.Lexer
	errors         []*ParserError
	prefixParseFns map[lexer.TokenType]prefixParseFn
	infixParseFns  map[lexer.TokenType]infixParseFn
	curToken       lexer.Token
	peekToken      lexer.Token
}

// New creates a new Parser reading tokens from the given lexer.
func New(l *lexer.Lexer) *Parser {
	p := &Parser{l: l}

	p.prefixParseFns = map[lexer.TokenType]prefixParseFn{
		lexer.NUMBER: p.parseNumberLiteral,
		lexer.STRING: p.parseStringLiteral,
		lexer.TRUE:   p.parseBooleanLiteral,
		lexer.FALSE:  p.parseBooleanLiteral,
		lexer.NIL:    p.parseNilLiteral,
		lexer.IDENT:  p.parseIdentifier,
		lexer.LPAREN: p.parseGroupingExpression,
		lexer.MINUS:  p.parseUnaryExpression,
		lexer.BANG:   p.parseUnaryExpression,
	}

	p.infixParseFns = map[lexer.TokenType]infixParseFn{
		lexer.ASSIGN:     p.parseAssignExpression,
		lexer.OR:         p.parseLogicalExpression,
		lexer.AND:        p.parseLogicalExpression,
		lexer.EQ:         p.parseBinaryExpression,
		lexer.BANG_EQ:    p.parseBinaryExpression,
		lexer.LESS:       p.parseBinaryExpression,
		lexer.GREATER:    p.parseBinaryExpression,
		lexer.LESS_EQ:    p.parseBinaryExpression,
		lexer.GREATER_EQ: p.parseBinaryExpression,
		lexer.PLUS:       p.parseBinaryExpression,
		lexer.MINUS:      p.parseBinaryExpression,
		lexer.STAR:       p.parseBinaryExpression,
		lexer.SLASH:      p.parseBinaryExpression,
		lexer.LPAREN:     p.parseCallExpression,
	}

	// Read two tokens so curToken and peekToken are both set
	p.nextToken()
	p.nextToken()

	return p
}

// Errors returns the list of parsing errors.
func (p *Parser) Errors() []*ParserError {
	return p.errors
}

// LexerErrors returns all lexer errors accumulated during tokenization.
// This should be checked in addition to parser errors for complete error reporting.
func (p *Parser) LexerErrors() []lexer.LexerError {
	return p.l.Errors()
}

// ParseProgram parses the whole input and returns the AST root.
// Parse errors are accumulated; check Errors() before using the result.
func (p *Parser) ParseProgram() *ast.Program {
	program := &ast.Program{}

	for !p.curTokenIs(lexer.EOF) {
		stmt := p.parseDeclaration()
		if stmt != nil {
			program.Statements = append(program.Statements, stmt)
		}
	}

	return program
}

// nextToken advances curToken and peekToken.
func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.l.NextToken()
}

// curTokenIs checks if the current token is of the given type.
func (p *Parser) curTokenIs(t lexer.TokenType) bool {
	return p.curToken.Type == t
}

// peekTokenIs checks if the peek token is of the given type.
func (p *Parser) peekTokenIs(t lexer.TokenType) bool {
	return p.peekToken.Type == t
}

// expectPeek advances to the next token if it has the expected type,
// otherwise records an error and returns false.
func (p *Parser) expectPeek(t lexer.TokenType, message string) bool {
	if p.peekTokenIs(t) {
		p.nextToken()
		return true
	}
	p.addErrorAt(p.peekToken, message)
	return false
}

// addError records a parse error at the current token.
func (p *Parser) addError(message string) {
	p.addErrorAt(p.curToken, message)
}

// addErrorAt records a parse error at the given token.
func (p *Parser) addErrorAt(tok lexer.Token, message string) {
	p.errors = append(p.errors, &ParserError{Message: message, Token: tok})
}

// curPrecedence returns the precedence of the current token.
func (p *Parser) curPrecedence() int {
	if prec, ok := precedences[p.curToken.Type]; ok {
		return prec
	}
	return LOWEST
}

// peekPrecedence returns the precedence of the peek token.
func (p *Parser) peekPrecedence() int {
	if prec, ok := precedences[p.peekToken.Type]; ok {
		return prec
	}
	return LOWEST
}

// synchronize discards tokens until a likely statement boundary so that
// parsing can continue after an error without cascading failures.
func (p *Parser) synchronize() {
	p.nextToken()

	for !p.curTokenIs(lexer.EOF) {
		if p.curTokenIs(lexer.SEMICOLON) {
			p.nextToken()
			return
		}

		switch p.peekToken.Type {
		case lexer.CLASS, lexer.FUN, lexer.VAR, lexer.FOR,
			lexer.IF, lexer.WHILE, lexer.PRINT, lexer.RETURN:
			p.nextToken()
			return
		}

		p.nextToken()
	}
}

// ============================================================================
// Expressions
// ============================================================================

// parseExpression parses an expression with operator precedence climbing.
// Returns nil (with an error recorded) if no expression can be parsed.
func (p *Parser) parseExpression(precedence int) ast.Expression {
	prefix, ok := p.prefixParseFns[p.curToken.Type]
	if !ok {
		p.addError("Expect expression.")
		return nil
	}
	left := prefix()
	if left == nil {
		return nil
	}

	for !p.peekTokenIs(lexer.SEMICOLON) && precedence < p.peekPrecedence() {
		infix, ok := p.infixParseFns[p.peekToken.Type]
		if !ok {
			return left
		}
		p.nextToken()
		left = infix(left)
		if left == nil {
			return nil
		}
	}

	return left
}

func (p *Parser) parseNumberLiteral() ast.Expression {
	value, err := strconv.ParseFloat(p.curToken.Literal, 64)
	if err != nil {
		p.addError("Invalid number literal.")
		return nil
	}
	return &ast.NumberLiteral{Token: p.curToken, Value: value}
}

func (p *Parser) parseStringLiteral() ast.Expression {
	return &ast.StringLiteral{Token: p.curToken, Value: p.curToken.Literal}
}

func (p *Parser) parseBooleanLiteral() ast.Expression {
	return &ast.BooleanLiteral{Token: p.curToken, Value: p.curTokenIs(lexer.TRUE)}
}

func (p *Parser) parseNilLiteral() ast.Expression {
	return &ast.NilLiteral{Token: p.curToken}
}

func (p *Parser) parseIdentifier() ast.Expression {
	return &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}
}

func (p *Parser) parseGroupingExpression() ast.Expression {
	tok := p.curToken
	p.nextToken()

	expr := p.parseExpression(LOWEST)
	if expr == nil {
		return nil
	}
	if !p.expectPeek(lexer.RPAREN, "Expect ')' after expression.") {
		return nil
	}

	return &ast.GroupingExpression{Token: tok, Expression: expr}
}

func (p *Parser) parseUnaryExpression() ast.Expression {
	tok := p.curToken
	p.nextToken()

	right := p.parseExpression(PREFIX)
	if right == nil {
		return nil
	}

	return &ast.UnaryExpression{Token: tok, Operator: tok.Literal, Right: right}
}

func (p *Parser) parseBinaryExpression(left ast.Expression) ast.Expression {
	tok := p.curToken
	precedence := p.curPrecedence()
	p.nextToken()

	right := p.parseExpression(precedence)
	if right == nil {
		return nil
	}

	return &ast.BinaryExpression{Token: tok, Operator: tok.Literal, Left: left, Right: right}
}

func (p *Parser) parseLogicalExpression(left ast.Expression) ast.Expression {
	tok := p.curToken
	precedence := p.curPrecedence()
	p.nextToken()

	right := p.parseExpression(precedence)
	if right == nil {
		return nil
	}

	return &ast.LogicalExpression{Token: tok, Operator: tok.Literal, Left: left, Right: right}
}

// parseAssignExpression parses name = value. Only a plain variable is a
// valid assignment target in this subset. The right-hand side is parsed
// at LOWEST so assignment is right-associative: a = b = c.
func (p *Parser) parseAssignExpression(left ast.Expression) ast.Expression {
	eqToken := p.curToken
	p.nextToken()

	value := p.parseExpression(LOWEST)
	if value == nil {
		return nil
	}

	target, ok := left.(*ast.Identifier)
	if !ok {
		p.addErrorAt(eqToken, "Invalid assignment target.")
		return nil
	}

	return &ast.AssignExpression{Token: target.Token, Name: target.Value, Value: value}
}

func (p *Parser) parseCallExpression(callee ast.Expression) ast.Expression {
	lparen := p.curToken

	var args []ast.Expression
	if !p.peekTokenIs(lexer.RPAREN) {
		for {
			p.nextToken()
			arg := p.parseExpression(LOWEST)
			if arg == nil {
				return nil
			}
			if len(args) >= maxArguments {
				p.addError("Can't have more than 255 arguments.")
				return nil
			}
			args = append(args, arg)

			if !p.peekTokenIs(lexer.COMMA) {
				break
			}
			p.nextToken() // consume the comma
		}
	}

	if !p.expectPeek(lexer.RPAREN, "Expect ')' after arguments.") {
		return nil
	}

	return &ast.CallExpression{Token: lparen, Callee: callee, Paren: p.curToken, Arguments: args}
}
