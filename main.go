package main

import (
	"os"

	"github.com/ahmad2493/real-estate-platform/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
