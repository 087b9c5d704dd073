package parser

import (
	"github.com/cwbudde/go-lox/internal/ast"
	"github.com/cwbudde/go-lox/internal/lexer"
)

// Statement parsers are entered with curToken on the statement's first
// token and leave curToken on the first token of the following statement.

// parseDeclaration parses a declaration or statement. On a parse error it
// synchronizes to the next statement boundary and returns nil.
func (p *Parser) parseDeclaration() ast.Statement {
	var stmt ast.Statement

	switch p.curToken.Type {
	case lexer.VAR:
		stmt = p.parseVarStatement()
	case lexer.FUN:
		stmt = p.parseFunctionStatement()
	case lexer.CLASS:
		p.addError("Class declarations are not supported.")
	default:
		stmt = p.parseStatement()
	}

	if stmt == nil && !p.curTokenIs(lexer.EOF) {
		p.synchronize()
	}
	return stmt
}

// parseStatement parses a non-declaration statement.
func (p *Parser) parseStatement() ast.Statement {
	switch p.curToken.Type {
	case lexer.PRINT:
		return p.parsePrintStatement()
	case lexer.LBRACE:
		return p.parseBlockStatement()
	case lexer.IF:
		return p.parseIfStatement()
	case lexer.WHILE:
		return p.parseWhileStatement()
	case lexer.FOR:
		return p.parseForStatement()
	case lexer.RETURN:
		return p.parseReturnStatement()
	default:
		return p.parseExpressionStatement()
	}
}

func (p *Parser) parseExpressionStatement() ast.Statement {
	tok := p.curToken

	expr := p.parseExpression(LOWEST)
	if expr == nil {
		return nil
	}
	if !p.expectPeek(lexer.SEMICOLON, "Expect ';' after expression.") {
		return nil
	}
	p.nextToken()

	return &ast.ExpressionStatement{Token: tok, Expression: expr}
}

func (p *Parser) parsePrintStatement() ast.Statement {
	tok := p.curToken
	p.nextToken()

	expr := p.parseExpression(LOWEST)
	if expr == nil {
		return nil
	}
	if !p.expectPeek(lexer.SEMICOLON, "Expect ';' after value.") {
		return nil
	}
	p.nextToken()

	return &ast.PrintStatement{Token: tok, Expression: expr}
}

func (p *Parser) parseVarStatement() ast.Statement {
	tok := p.curToken

	if !p.expectPeek(lexer.IDENT, "Expect variable name.") {
		return nil
	}
	name := p.curToken

	var initializer ast.Expression
	if p.peekTokenIs(lexer.ASSIGN) {
		p.nextToken()
		p.nextToken()
		initializer = p.parseExpression(LOWEST)
		if initializer == nil {
			return nil
		}
	}

	if !p.expectPeek(lexer.SEMICOLON, "Expect ';' after variable declaration.") {
		return nil
	}
	p.nextToken()

	return &ast.VarStatement{Token: tok, Name: name, Initializer: initializer}
}

// parseBlockStatement parses { ... }. The closing brace is consumed.
func (p *Parser) parseBlockStatement() *ast.BlockStatement {
	block := &ast.BlockStatement{Token: p.curToken}
	p.nextToken()

	for !p.curTokenIs(lexer.RBRACE) && !p.curTokenIs(lexer.EOF) {
		stmt := p.parseDeclaration()
		if stmt != nil {
			block.Statements = append(block.Statements, stmt)
		}
	}

	if !p.curTokenIs(lexer.RBRACE) {
		p.addError("Expect '}' after block.")
		return nil
	}
	p.nextToken()

	return block
}

func (p *Parser) parseIfStatement() ast.Statement {
	tok := p.curToken

	if !p.expectPeek(lexer.LPAREN, "Expect '(' after 'if'.") {
		return nil
	}
	p.nextToken()

	condition := p.parseExpression(LOWEST)
	if condition == nil {
		return nil
	}
	if !p.expectPeek(lexer.RPAREN, "Expect ')' after if condition.") {
		return nil
	}
	p.nextToken()

	thenBranch := p.parseStatement()
	if thenBranch == nil {
		return nil
	}

	var elseBranch ast.Statement
	if p.curTokenIs(lexer.ELSE) {
		p.nextToken()
		elseBranch = p.parseStatement()
		if elseBranch == nil {
			return nil
		}
	}

	return &ast.IfStatement{Token: tok, Condition: condition, ThenBranch: thenBranch, ElseBranch: elseBranch}
}

func (p *Parser) parseWhileStatement() ast.Statement {
	tok := p.curToken

	if !p.expectPeek(lexer.LPAREN, "Expect '(' after 'while'.") {
		return nil
	}
	p.nextToken()

	condition := p.parseExpression(LOWEST)
	if condition == nil {
		return nil
	}
	if !p.expectPeek(lexer.RPAREN, "Expect ')' after condition.") {
		return nil
	}
	p.nextToken()

	body := p.parseStatement()
	if body == nil {
		return nil
	}

	return &ast.WhileStatement{Token: tok, Condition: condition, Body: body}
}

// parseForStatement parses a for loop and desugars it into the equivalent
// initializer + while + increment form, so the evaluator never sees a
// dedicated for node.
func (p *Parser) parseForStatement() ast.Statement {
	tok := p.curToken

	if !p.expectPeek(lexer.LPAREN, "Expect '(' after 'for'.") {
		return nil
	}

	// Initializer clause
	var initializer ast.Statement
	switch p.peekToken.Type {
	case lexer.SEMICOLON:
		p.nextToken()
		p.nextToken()
	case lexer.VAR:
		p.nextToken()
		initializer = p.parseVarStatement()
		if initializer == nil {
			return nil
		}
	default:
		p.nextToken()
		initializer = p.parseExpressionStatement()
		if initializer == nil {
			return nil
		}
	}

	// Condition clause
	var condition ast.Expression
	if p.curTokenIs(lexer.SEMICOLON) {
		p.nextToken()
	} else {
		condition = p.parseExpression(LOWEST)
		if condition == nil {
			return nil
		}
		if !p.expectPeek(lexer.SEMICOLON, "Expect ';' after loop condition.") {
			return nil
		}
		p.nextToken()
	}

	// Increment clause
	var increment ast.Expression
	if p.curTokenIs(lexer.RPAREN) {
		p.nextToken()
	} else {
		increment = p.parseExpression(LOWEST)
		if increment == nil {
			return nil
		}
		if !p.expectPeek(lexer.RPAREN, "Expect ')' after for clauses.") {
			return nil
		}
		p.nextToken()
	}

	body := p.parseStatement()
	if body == nil {
		return nil
	}

	// Desugar: run the increment after the body on every iteration.
	if increment != nil {
		body = &ast.BlockStatement{
			Token: tok,
			Statements: []ast.Statement{
				body,
				&ast.ExpressionStatement{Token: tok, Expression: increment},
			},
		}
	}

	// A missing condition is an infinite loop.
	if condition == nil {
		condition = &ast.BooleanLiteral{
			Token: lexer.NewToken(lexer.TRUE, "true", tok.Pos),
			Value: true,
		}
	}

	var loop ast.Statement = &ast.WhileStatement{Token: tok, Condition: condition, Body: body}

	// The initializer runs once, in a scope enclosing the loop.
	if initializer != nil {
		loop = &ast.BlockStatement{Token: tok, Statements: []ast.Statement{initializer, loop}}
	}

	return loop
}

func (p *Parser) parseFunctionStatement() ast.Statement {
	tok := p.curToken

	if !p.expectPeek(lexer.IDENT, "Expect function name.") {
		return nil
	}
	name := p.curToken

	if !p.expectPeek(lexer.LPAREN, "Expect '(' after function name.") {
		return nil
	}

	var parameters []lexer.Token
	if !p.peekTokenIs(lexer.RPAREN) {
		for {
			if !p.expectPeek(lexer.IDENT, "Expect parameter name.") {
				return nil
			}
			if len(parameters) >= maxArguments {
				p.addError("Can't have more than 255 parameters.")
				return nil
			}
			parameters = append(parameters, p.curToken)

			if !p.peekTokenIs(lexer.COMMA) {
				break
			}
			p.nextToken() // consume the comma
		}
	}

	if !p.expectPeek(lexer.RPAREN, "Expect ')' after parameters.") {
		return nil
	}
	if !p.expectPeek(lexer.LBRACE, "Expect '{' before function body.") {
		return nil
	}

	body := p.parseBlockStatement()
	if body == nil {
		return nil
	}

	return &ast.FunctionStatement{Token: tok, Name: name, Parameters: parameters, Body: body.Statements}
}

func (p *Parser) parseReturnStatement() ast.Statement {
	tok := p.curToken

	var value ast.Expression
	if p.peekTokenIs(lexer.SEMICOLON) {
		p.nextToken()
	} else {
		p.nextToken()
		value = p.parseExpression(LOWEST)
		if value == nil {
			return nil
		}
		if !p.expectPeek(lexer.SEMICOLON, "Expect ';' after return value.") {
			return nil
		}
	}
	p.nextToken()

	return &ast.ReturnStatement{Token: tok, Value: value}
}
