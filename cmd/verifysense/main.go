package main

import (
	"os"

	"github.com/verifysense/verifysense/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
