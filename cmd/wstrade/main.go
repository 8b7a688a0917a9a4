package main

import (
	"os"

	"github.com/noahwoodin/wealthsimple-trade-go/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
