package main

import (
	"os"

	"github.com/arthur-debert/ddbg/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
