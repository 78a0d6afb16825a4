package main

import (
	"os"

	"github.com/mgreer/arc-tracker/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
