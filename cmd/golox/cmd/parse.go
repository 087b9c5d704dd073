package cmd

import (
	"fmt"
	"os"

	"github.com/cwbudde/go-lox/internal/errors"
	"github.com/cwbudde/go-lox/internal/lexer"
	"github.com/cwbudde/go-lox/internal/parser"
	"github.com/spf13/cobra"
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse a Lox file and dump the AST",
	Long: `Parse a Lox source file and print the resulting AST in its
canonical string form. Useful for debugging the parser.`,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE: func(c *cobra.Command, args []string) error {
		content, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read file %s: %w", args[0], err)
		}
		input := string(content)

		l := lexer.New(input)
		p := parser.New(l)
		program := p.ParseProgram()

		compilerErrors := errors.FromLexerErrors(p.LexerErrors(), input, args[0])
		compilerErrors = append(compilerErrors, errors.FromParserErrors(p.Errors(), input, args[0])...)
		if len(compilerErrors) > 0 {
			fmt.Fprint(os.Stderr, errors.FormatErrors(compilerErrors, true))
			os.Exit(exitCompileError)
		}

		for _, stmt := range program.Statements {
			fmt.Println(stmt.String())
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(parseCmd)
}
