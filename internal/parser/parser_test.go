package parser

import (
	"strings"
	"testing"

	"github.com/cwbudde/go-lox/internal/ast"
	"github.com/cwbudde/go-lox/internal/lexer"
)

// parseProgram parses the input and fails the test on parse errors.
func parseProgram(t *testing.T, input string) *ast.Program {
	t.Helper()

	p := New(lexer.New(input))
	program := p.ParseProgram()

	if len(p.Errors()) > 0 {
		t.Fatalf("parser errors for %q: %v", input, p.Errors())
	}
	return program
}

// parseErrors parses the input and returns the error messages.
func parseErrors(t *testing.T, input string) []string {
	t.Helper()

	p := New(lexer.New(input))
	p.ParseProgram()

	msgs := make([]string, 0, len(p.Errors()))
	for _, err := range p.Errors() {
		msgs = append(msgs, err.Error())
	}
	return msgs
}

func TestOperatorPrecedence(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"1 + 2 * 3;", "(1 + (2 * 3));"},
		{"1 * 2 + 3;", "((1 * 2) + 3);"},
		{"(1 + 2) * 3;", "(((1 + 2)) * 3);"},
		{"-1 + 2;", "((-1) + 2);"},
		{"!true == false;", "((!true) == false);"},
		{"1 < 2 == 2 < 3;", "((1 < 2) == (2 < 3));"},
		{"1 + 2 < 3 + 4;", "((1 + 2) < (3 + 4));"},
		{"a or b and c;", "(a or (b and c));"},
		{"a and b == c;", "(a and (b == c));"},
		{"a = b or c;", "(a = (b or c));"},
		{"a = b = c;", "(a = (b = c));"},
		{"1 - 2 - 3;", "((1 - 2) - 3);"},
		{"8 / 4 / 2;", "((8 / 4) / 2);"},
		{"-f(1);", "(-f(1));"},
		{"f(1) + g(2);", "(f(1) + g(2));"},
	}

	for _, tt := range tests {
		program := parseProgram(t, tt.input)
		if len(program.Statements) != 1 {
			t.Fatalf("%q: expected 1 statement, got %d", tt.input, len(program.Statements))
		}
		if got := program.Statements[0].String(); got != tt.expected {
			t.Errorf("%q: expected %q, got %q", tt.input, tt.expected, got)
		}
	}
}

func TestVarStatement(t *testing.T) {
	program := parseProgram(t, `var x = 1 + 2; var y;`)

	if len(program.Statements) != 2 {
		t.Fatalf("expected 2 statements, got %d", len(program.Statements))
	}

	first, ok := program.Statements[0].(*ast.VarStatement)
	if !ok {
		t.Fatalf("expected *ast.VarStatement, got %T", program.Statements[0])
	}
	if first.Name.Literal != "x" {
		t.Errorf("expected name x, got %q", first.Name.Literal)
	}
	if first.Initializer == nil {
		t.Fatal("expected initializer")
	}

	second := program.Statements[1].(*ast.VarStatement)
	if second.Initializer != nil {
		t.Errorf("expected no initializer, got %s", second.Initializer.String())
	}
}

func TestIfStatement(t *testing.T) {
	program := parseProgram(t, `if (a < b) print a; else print b;`)

	stmt, ok := program.Statements[0].(*ast.IfStatement)
	if !ok {
		t.Fatalf("expected *ast.IfStatement, got %T", program.Statements[0])
	}
	if stmt.Condition.String() != "(a < b)" {
		t.Errorf("unexpected condition: %s", stmt.Condition.String())
	}
	if _, ok := stmt.ThenBranch.(*ast.PrintStatement); !ok {
		t.Errorf("expected print then-branch, got %T", stmt.ThenBranch)
	}
	if stmt.ElseBranch == nil {
		t.Fatal("expected else branch")
	}
}

func TestDanglingElse(t *testing.T) {
	// The else binds to the nearest if.
	program := parseProgram(t, `if (a) if (b) print 1; else print 2;`)

	outer := program.Statements[0].(*ast.IfStatement)
	if outer.ElseBranch != nil {
		t.Fatal("else bound to the outer if")
	}
	inner, ok := outer.ThenBranch.(*ast.IfStatement)
	if !ok {
		t.Fatalf("expected nested if, got %T", outer.ThenBranch)
	}
	if inner.ElseBranch == nil {
		t.Fatal("else missing from the inner if")
	}
}

func TestWhileStatement(t *testing.T) {
	program := parseProgram(t, `while (x > 0) { x = x - 1; }`)

	stmt, ok := program.Statements[0].(*ast.WhileStatement)
	if !ok {
		t.Fatalf("expected *ast.WhileStatement, got %T", program.Statements[0])
	}
	if stmt.Condition.String() != "(x > 0)" {
		t.Errorf("unexpected condition: %s", stmt.Condition.String())
	}
	if _, ok := stmt.Body.(*ast.BlockStatement); !ok {
		t.Errorf("expected block body, got %T", stmt.Body)
	}
}

func TestForDesugaring(t *testing.T) {
	// A full for loop desugars to:
	//   { initializer; while (condition) { body; increment; } }
	program := parseProgram(t, `for (var i = 0; i < 3; i = i + 1) print i;`)

	outer, ok := program.Statements[0].(*ast.BlockStatement)
	if !ok {
		t.Fatalf("expected desugared block, got %T", program.Statements[0])
	}
	if len(outer.Statements) != 2 {
		t.Fatalf("expected initializer + loop, got %d statements", len(outer.Statements))
	}
	if _, ok := outer.Statements[0].(*ast.VarStatement); !ok {
		t.Errorf("expected var initializer, got %T", outer.Statements[0])
	}

	loop, ok := outer.Statements[1].(*ast.WhileStatement)
	if !ok {
		t.Fatalf("expected while loop, got %T", outer.Statements[1])
	}
	if loop.Condition.String() != "(i < 3)" {
		t.Errorf("unexpected condition: %s", loop.Condition.String())
	}

	body, ok := loop.Body.(*ast.BlockStatement)
	if !ok {
		t.Fatalf("expected block loop body, got %T", loop.Body)
	}
	if len(body.Statements) != 2 {
		t.Fatalf("expected body + increment, got %d statements", len(body.Statements))
	}
	if _, ok := body.Statements[1].(*ast.ExpressionStatement); !ok {
		t.Errorf("expected increment expression statement, got %T", body.Statements[1])
	}
}

func TestForWithoutClauses(t *testing.T) {
	// All clauses omitted: for (;;) is while (true).
	program := parseProgram(t, `for (;;) print 1;`)

	loop, ok := program.Statements[0].(*ast.WhileStatement)
	if !ok {
		t.Fatalf("expected bare while loop, got %T", program.Statements[0])
	}
	cond, ok := loop.Condition.(*ast.BooleanLiteral)
	if !ok || !cond.Value {
		t.Errorf("expected true condition, got %s", loop.Condition.String())
	}
}

func TestFunctionStatement(t *testing.T) {
	program := parseProgram(t, `fun add(a, b) { return a + b; }`)

	stmt, ok := program.Statements[0].(*ast.FunctionStatement)
	if !ok {
		t.Fatalf("expected *ast.FunctionStatement, got %T", program.Statements[0])
	}
	if stmt.Name.Literal != "add" {
		t.Errorf("expected name add, got %q", stmt.Name.Literal)
	}
	if len(stmt.Parameters) != 2 || stmt.Parameters[0].Literal != "a" || stmt.Parameters[1].Literal != "b" {
		t.Errorf("unexpected parameters: %v", stmt.Parameters)
	}
	if len(stmt.Body) != 1 {
		t.Fatalf("expected 1 body statement, got %d", len(stmt.Body))
	}
	if _, ok := stmt.Body[0].(*ast.ReturnStatement); !ok {
		t.Errorf("expected return statement, got %T", stmt.Body[0])
	}
}

func TestReturnWithoutValue(t *testing.T) {
	program := parseProgram(t, `fun f() { return; }`)

	fn := program.Statements[0].(*ast.FunctionStatement)
	ret := fn.Body[0].(*ast.ReturnStatement)
	if ret.Value != nil {
		t.Errorf("expected bare return, got value %s", ret.Value.String())
	}
}

func TestCallExpression(t *testing.T) {
	program := parseProgram(t, `f(1, "two", three)(4);`)

	stmt := program.Statements[0].(*ast.ExpressionStatement)
	outer, ok := stmt.Expression.(*ast.CallExpression)
	if !ok {
		t.Fatalf("expected call, got %T", stmt.Expression)
	}
	if len(outer.Arguments) != 1 {
		t.Fatalf("expected 1 argument on outer call, got %d", len(outer.Arguments))
	}

	inner, ok := outer.Callee.(*ast.CallExpression)
	if !ok {
		t.Fatalf("expected curried callee, got %T", outer.Callee)
	}
	if len(inner.Arguments) != 3 {
		t.Fatalf("expected 3 arguments, got %d", len(inner.Arguments))
	}
	if inner.Paren.Type != lexer.RPAREN {
		t.Errorf("expected closing paren token, got %s", inner.Paren.Type)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		input       string
		wantMessage string
	}{
		{`1 + 2`, "Expect ';' after expression."},
		{`print;`, "Expect expression."},
		{`var;`, "Expect variable name."},
		{`(1 + 2;`, "Expect ')' after expression."},
		{`if a) print 1;`, "Expect '(' after 'if'."},
		{`1 + 2 = 3;`, "Invalid assignment target."},
		{`fun () {}`, "Expect function name."},
		{`fun f(1) {}`, "Expect parameter name."},
		{`{ print 1;`, "Expect '}' after block."},
		{`class Foo {}`, "Class declarations are not supported."},
	}

	for _, tt := range tests {
		msgs := parseErrors(t, tt.input)
		if len(msgs) == 0 {
			t.Errorf("%q: expected a parse error", tt.input)
			continue
		}
		found := false
		for _, msg := range msgs {
			if strings.Contains(msg, tt.wantMessage) {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("%q: expected message %q, got %v", tt.input, tt.wantMessage, msgs)
		}
	}
}

func TestErrorFormat(t *testing.T) {
	msgs := parseErrors(t, "print bogus\nprint 2;")
	if len(msgs) == 0 {
		t.Fatal("expected a parse error")
	}
	if !strings.HasPrefix(msgs[0], "[line 2] Error at 'print':") {
		t.Errorf("unexpected error format: %q", msgs[0])
	}
}

func TestSynchronizeRecoversNextStatement(t *testing.T) {
	// The first statement is broken; the parser should still deliver the
	// second one.
	p := New(lexer.New("var = 1;\nprint 2;"))
	program := p.ParseProgram()

	if len(p.Errors()) == 0 {
		t.Fatal("expected parse errors")
	}
	if len(program.Statements) != 1 {
		t.Fatalf("expected 1 recovered statement, got %d", len(program.Statements))
	}
	if _, ok := program.Statements[0].(*ast.PrintStatement); !ok {
		t.Errorf("expected recovered print statement, got %T", program.Statements[0])
	}
}
