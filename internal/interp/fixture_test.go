package interp

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/cwbudde/go-lox/internal/lexer"
	"github.com/cwbudde/go-lox/internal/parser"
	"github.com/gkampitakis/go-snaps/snaps"
)

// TestFixtures runs every Lox script under testdata/fixtures. A script
// with a sibling .txt file is checked against that expected output
// (runtime errors are appended to the captured output before comparing);
// scripts without one are snapshot-tested with go-snaps.
func TestFixtures(t *testing.T) {
	loxFiles, err := filepath.Glob(filepath.Join("..", "..", "testdata", "fixtures", "*.lox"))
	if err != nil {
		t.Fatalf("failed to find fixtures: %v", err)
	}
	if len(loxFiles) == 0 {
		t.Fatal("no fixtures found")
	}

	for _, loxFile := range loxFiles {
		testName := strings.TrimSuffix(filepath.Base(loxFile), ".lox")

		t.Run(testName, func(t *testing.T) {
			source, err := os.ReadFile(loxFile)
			if err != nil {
				t.Fatalf("failed to read %s: %v", loxFile, err)
			}

			p := parser.New(lexer.New(string(source)))
			program := p.ParseProgram()
			if len(p.Errors()) > 0 {
				t.Fatalf("parse errors in %s: %v", loxFile, p.Errors())
			}
			if len(p.LexerErrors()) > 0 {
				t.Fatalf("lexer errors in %s: %v", loxFile, p.LexerErrors())
			}

			var buf bytes.Buffer
			interpreter := New(&buf)

			// Execute with a timeout so a broken fixture with an
			// accidental infinite loop fails instead of hanging the run.
			resultChan := make(chan Value, 1)
			go func() {
				resultChan <- interpreter.Eval(program)
			}()

			var result Value
			select {
			case result = <-resultChan:
			case <-time.After(5 * time.Second):
				t.Fatalf("fixture %s timed out after 5 seconds (likely infinite loop)", testName)
			}

			actual := buf.String()
			if isError(result) {
				actual += result.String() + "\n"
			}

			txtFile := strings.TrimSuffix(loxFile, ".lox") + ".txt"
			expected, err := os.ReadFile(txtFile)
			if err == nil {
				if normalizeOutput(actual) != normalizeOutput(string(expected)) {
					t.Errorf("output mismatch for %s:\nExpected:\n%s\nActual:\n%s",
						testName, string(expected), actual)
				}
				return
			}

			snaps.MatchSnapshot(t, actual)
		})
	}
}

// normalizeOutput canonicalizes line endings and trims surrounding
// whitespace so fixtures don't depend on trailing newlines.
func normalizeOutput(s string) string {
	return strings.TrimSpace(strings.ReplaceAll(s, "\r\n", "\n"))
}
