package cmd

import (
	"fmt"
	"os"

	"github.com/cwbudde/go-lox/internal/lexer"
	"github.com/spf13/cobra"
)

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Tokenize a Lox file and dump the token stream",
	Long: `Tokenize a Lox source file and print each token with its type,
literal, and source position. Useful for debugging the scanner.`,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE: func(c *cobra.Command, args []string) error {
		content, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read file %s: %w", args[0], err)
		}

		l := lexer.New(string(content))
		for {
			tok := l.NextToken()
			fmt.Printf("%4d:%-3d %-12s %q\n", tok.Pos.Line, tok.Pos.Column, tok.Type, tok.Literal)
			if tok.Type == lexer.EOF {
				break
			}
		}

		for _, lexErr := range l.Errors() {
			fmt.Fprintln(os.Stderr, lexErr.Error())
		}
		if len(l.Errors()) > 0 {
			os.Exit(exitCompileError)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(lexCmd)
}
