package main

import (
	"os"

	"github.com/go-nocturne/nocturne/cmd/nocturne/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
