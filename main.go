package main

import (
	"os"

	"github.com/abhisek/keydrill/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
