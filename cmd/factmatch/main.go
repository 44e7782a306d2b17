package main

import (
	"os"

	"github.com/ezachrisen/factmatch/cmd/factmatch/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
