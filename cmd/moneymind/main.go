package main

import (
	"os"

	"github.com/moneymind-dev/moneymind/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
