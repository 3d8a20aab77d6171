package main

import (
	"os"

	"github.com/sinoval/sinoval/cmd/sinoval/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
