package main

import (
	"os"

	"calc555/cmd/calc555/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
