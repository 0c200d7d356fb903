package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
)

func init() {
	// -v is --verbose, as in the BSD tool.
	cli.VersionFlag = &cli.BoolFlag{
		Name:  "version",
		Usage: "print the version",
	}
}

func main() {
	cmd := newApp(os.Stdout, os.Stderr, configPath())
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
