package main

import (
	"os"

	"github.com/ariel-frischer/changeloggen/internal/cli"
	clierrors "github.com/ariel-frischer/changeloggen/internal/errors"
)

func main() {
	if err := cli.Execute(); err != nil {
		clierrors.PrintError(err)
		os.Exit(clierrors.ExitCode(err))
	}
}
