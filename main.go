package main

import (
	"os"

	"github.com/schedoosh/schedoosh/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
