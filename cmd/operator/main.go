package main

import (
	"os"

	"github.com/Saeed76a/eigen-layer-monorepo/cmd/operator/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
