package main

import (
	"os"

	"github.com/cwbudde/go-lox/cmd/golox/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
