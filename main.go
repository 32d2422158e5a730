package main

import (
	"os"

	"github.com/rozvrh-svg/rozvrh/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
