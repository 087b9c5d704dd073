package cmd

import (
	"bufio"
	"fmt"
	"os"

	"github.com/cwbudde/go-lox/internal/ast"
	"github.com/cwbudde/go-lox/internal/errors"
	"github.com/cwbudde/go-lox/internal/interp"
	"github.com/cwbudde/go-lox/internal/lexer"
	"github.com/cwbudde/go-lox/internal/parser"
	"github.com/spf13/cobra"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive Lox session",
	Long: `Read-eval-print loop for Lox.

Definitions persist across lines; expression statement results are
echoed. A runtime error aborts the current line but leaves the session
usable.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(c *cobra.Command, args []string) error {
		return runREPL()
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
}

// runREPL runs the interactive prompt loop. The interpreter, and with it
// the global environment, persists for the whole session.
func runREPL() error {
	interpreter := interp.New(os.Stdout)

	scanner := bufio.NewScanner(os.Stdin)
	fmt.Print("> ")
	for scanner.Scan() {
		line := scanner.Text()
		if line != "" {
			replLine(interpreter, line)
		}
		fmt.Print("> ")
	}
	fmt.Println()
	return scanner.Err()
}

// replLine parses and executes one line of input.
func replLine(interpreter *interp.Interpreter, line string) {
	l := lexer.New(line)
	p := parser.New(l)
	program := p.ParseProgram()

	compilerErrors := errors.FromLexerErrors(p.LexerErrors(), line, "")
	compilerErrors = append(compilerErrors, errors.FromParserErrors(p.Errors(), line, "")...)
	if len(compilerErrors) > 0 {
		fmt.Fprint(os.Stderr, errors.FormatErrors(compilerErrors, true))
		return
	}

	// Execute statement by statement so expression results can be echoed.
	for _, stmt := range program.Statements {
		result := interpreter.Eval(stmt)
		if result != nil && result.Type() == "ERROR" {
			fmt.Fprintln(os.Stderr, result.String())
			return
		}
		if _, isExpr := stmt.(*ast.ExpressionStatement); isExpr && result != nil {
			fmt.Println(result.String())
		}
	}
}
