package main

import (
	"os"

	"github.com/aRestless/nxview/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
