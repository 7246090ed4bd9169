package main

import (
	"os"

	"github.com/subsaver-dev/subsaver/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
