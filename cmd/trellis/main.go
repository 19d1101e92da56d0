package main

import (
	"fmt"
	"os"

	"github.com/trellis-research/trellis/cmd/trellis/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
