package main

import (
	"os"

	"github.com/edgetools/akaget/internal/cli"
)

func main() {
	if err := cli.Execute(os.Args[1:]); err != nil {
		os.Exit(1)
	}
}
