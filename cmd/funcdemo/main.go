package main

import (
	"os"

	"github.com/Pure-Company/funcdemo/cmd/funcdemo/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
