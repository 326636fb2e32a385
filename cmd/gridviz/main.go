package main

import (
	"os"

	"gridviz/cmd/gridviz/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
