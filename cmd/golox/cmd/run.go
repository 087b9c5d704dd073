package cmd

import (
	"fmt"
	"os"

	"github.com/cwbudde/go-lox/internal/errors"
	"github.com/cwbudde/go-lox/internal/interp"
	"github.com/cwbudde/go-lox/internal/lexer"
	"github.com/cwbudde/go-lox/internal/parser"
	"github.com/spf13/cobra"
)

// Conventional interpreter exit codes: EX_DATAERR for compile errors,
// EX_SOFTWARE for runtime errors.
const (
	exitCompileError = 65
	exitRuntimeError = 70
)

var (
	evalExpr string
	dumpAST  bool
)

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Run a Lox file or expression",
	Long: `Execute a Lox program from a file or inline source.

Examples:
  # Run a script file
  golox run script.lox

  # Evaluate inline source
  golox run -e 'print "Hello, World!";'

  # Run with AST dump (for debugging)
  golox run --dump-ast script.lox`,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE: func(c *cobra.Command, args []string) error {
		if evalExpr != "" {
			return runSource(evalExpr, "<eval>")
		}
		if len(args) == 1 {
			return runFile(args[0])
		}
		return fmt.Errorf("either provide a file path or use -e flag for inline code")
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "evaluate inline code instead of reading from file")
	runCmd.Flags().BoolVar(&dumpAST, "dump-ast", false, "dump the parsed AST (for debugging)")
}

// runFile reads and executes a script file.
func runFile(filename string) error {
	content, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return runSource(string(content), filename)
}

// runSource executes Lox source: lex, parse, report compile errors, then
// interpret. Compile errors exit with 65, runtime errors with 70.
func runSource(input, filename string) error {
	// Lexer: tokenize the input
	l := lexer.New(input)

	// Parser: build the AST
	p := parser.New(l)
	program := p.ParseProgram()

	// Check for lexer and parser errors
	compilerErrors := errors.FromLexerErrors(p.LexerErrors(), input, filename)
	compilerErrors = append(compilerErrors, errors.FromParserErrors(p.Errors(), input, filename)...)
	if len(compilerErrors) > 0 {
		fmt.Fprint(os.Stderr, errors.FormatErrors(compilerErrors, true))
		os.Exit(exitCompileError)
	}

	// Dump AST if requested
	if dumpAST {
		fmt.Println("AST:")
		fmt.Println(program.String())
		fmt.Println()
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "[Executing %s]\n", filename)
	}

	// Interpreter: execute the program
	interpreter := interp.New(os.Stdout)
	result := interpreter.Eval(program)

	// Check for runtime errors
	if result != nil && result.Type() == "ERROR" {
		fmt.Fprintln(os.Stderr, result.String())
		os.Exit(exitRuntimeError)
	}

	return nil
}
