package main

import (
	"os"

	"booq/cmd/booq-cli/cmd"
)

const version = "0.1.0"

func main() {
	if err := cmd.Execute(version); err != nil {
		os.Exit(1)
	}
}
