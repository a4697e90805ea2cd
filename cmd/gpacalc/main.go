package main

import (
	"os"

	"github.com/yigit/gpacalc/internal/cli"
)

func main() {
	os.Exit(cli.Run(os.Args))
}
