package main

import (
	"os"

	"github.com/clulus/clulus/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
