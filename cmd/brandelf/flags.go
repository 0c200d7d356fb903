package main

import "github.com/urfave/cli/v3"

type options struct {
	typeName  string
	number    int
	list      bool
	verbose   bool
	jsonOut   bool
	logLevel  string
	logFormat string
}

func targetFlags(o *options) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "type",
			Aliases:     []string{"t"},
			Usage:       "brand files with the named ELF ABI (see --list)",
			Destination: &o.typeName,
		},
		&cli.IntFlag{
			Name:        "number",
			Aliases:     []string{"f"},
			Usage:       "brand files with a raw ELF ABI number (0-255), even if it has no name",
			Destination: &o.number,
		},
		&cli.BoolFlag{
			Name:        "list",
			Aliases:     []string{"l"},
			Usage:       "list known ELF ABI brands",
			Destination: &o.list,
		},
	}
}

func outputFlags(o *options) []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:        "json",
			Usage:       "write reports and listings as JSON",
			Destination: &o.jsonOut,
		},
		&cli.BoolFlag{
			Name:        "verbose",
			Aliases:     []string{"v"},
			Usage:       "enable debug logging (shorthand for --log-level=debug)",
			Destination: &o.verbose,
		},
		&cli.StringFlag{
			Name:        "log-level",
			Usage:       "log level (debug, info, warn, error)",
			Value:       "info",
			Destination: &o.logLevel,
		},
		&cli.StringFlag{
			Name:        "log-format",
			Usage:       "log format (pretty, json, text)",
			Value:       "pretty",
			Destination: &o.logFormat,
		},
	}
}
