package main

import (
	"os"

	"github.com/hamster-nav/hamsternav/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
