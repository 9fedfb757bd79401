package main

import (
	"os"

	"github.com/extrato-dev/extrato/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
