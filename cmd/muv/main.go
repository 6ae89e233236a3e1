package main

import (
	"os"

	"github.com/muv-academia/muv/cmd/muv/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
