package main

import (
	"os"

	"github.com/lmartins/rootree/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
