package main

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"

	"github.com/cleared-dev/statementlab/internal/commands"
)

func main() {
	if err := fang.Execute(context.Background(), commands.NewRootCommand()); err != nil {
		os.Exit(1)
	}
}
