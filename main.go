package main

import (
	"os"

	"github.com/carwise/carwise/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
