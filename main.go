package main

import (
	"os"

	"github.com/baeum-app/baeum/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
