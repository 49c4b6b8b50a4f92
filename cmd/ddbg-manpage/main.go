package main

import (
	"fmt"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/ddbg/internal/cli"
	"github.com/arthur-debert/ddbg/internal/version"
)

func main() {
	rootCmd := cli.NewRootCmd(afero.NewOsFs())

	header := &doc.GenManHeader{
		Title:   "DDBG",
		Section: "1",
		Source:  "ddbg " + version.Version,
		Manual:  "ddbg manual",
	}

	err := doc.GenMan(rootCmd, header, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
