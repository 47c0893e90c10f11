package main

import (
	"os"

	"github.com/hodlstack/stacker/cmd/stacker/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
