package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/urfave/cli/v3"

	"github.com/samcharles93/brandelf/internal/brand"
	"github.com/samcharles93/brandelf/internal/logger"
	"github.com/samcharles93/brandelf/internal/version"
	"github.com/samcharles93/brandelf/pkg/osabi"
)

const usageText = "brandelf [-f ELF ABI number] [-v] [-l] [-t string] file ..."

type app struct {
	opts     options
	stdout   io.Writer
	stderr   io.Writer
	cfgPath  string
	runID    string
	colorize bool
}

func newApp(stdout, stderr io.Writer, cfgPath string) *cli.Command {
	a := &app{
		stdout:   stdout,
		stderr:   stderr,
		cfgPath:  cfgPath,
		runID:    uuid.NewString(),
		colorize: stdout == io.Writer(os.Stdout) && !color.NoColor,
	}

	flags := append(targetFlags(&a.opts), outputFlags(&a.opts)...)
	return &cli.Command{
		Name:            "brandelf",
		Usage:           "Inspect or set the OS/ABI brand of ELF binaries",
		UsageText:       usageText,
		ArgsUsage:       "file ...",
		Version:         version.String(),
		Flags:           flags,
		Writer:          stdout,
		ErrWriter:       stderr,
		HideHelpCommand: true,
		Before:          a.before,
		Action:          a.action,
	}
}

func (a *app) before(ctx context.Context, c *cli.Command) (context.Context, error) {
	applyConfig(c, LoadConfig(a.cfgPath), &a.opts)

	level := logger.ParseLevel(a.opts.logLevel)
	if a.opts.verbose {
		level = slog.LevelDebug
	}
	log := logger.ForFormat(a.opts.logFormat, a.stderr, level)
	if a.opts.logFormat == "json" || a.opts.logFormat == "text" {
		log = log.With("run", a.runID)
	}
	return logger.WithContext(ctx, log), nil
}

func (a *app) action(ctx context.Context, c *cli.Command) error {
	files := c.Args().Slice()
	sel := brand.Selection{
		Name:      a.opts.typeName,
		NameSet:   c.IsSet("type"),
		Number:    a.opts.number,
		NumberSet: c.IsSet("number"),
	}

	// Conflicting or out-of-range selections fail even when only listing.
	// An unknown name does not, as long as there is nothing to brand.
	if err := sel.Check(); err != nil {
		return cli.Exit(fmt.Sprintf("error: %v\nusage: %s", err, usageText), 1)
	}

	if a.opts.list {
		if len(files) == 0 || !a.opts.jsonOut {
			if err := a.printList(); err != nil {
				return cli.Exit(fmt.Sprintf("error: %v", err), 1)
			}
		}
		if len(files) == 0 {
			return nil
		}
	}

	target, err := brand.ResolveTarget(sel)
	if err != nil {
		if errors.Is(err, osabi.ErrUnknownName) {
			a.printKnown()
		}
		return cli.Exit(fmt.Sprintf("error: %v\nusage: %s", err, usageText), 1)
	}
	if len(files) == 0 {
		return cli.Exit(fmt.Sprintf("error: %v\nusage: %s", brand.ErrNoFiles, usageText), 1)
	}

	logger.FromContext(ctx).Debug("resolved target",
		"brand", target.Name, "osabi", uint8(target.Code), "stamp", target.Stamp,
		"by_number", target.ByNumber, "files", len(files))

	sum := brand.NewRunner(target).Run(ctx, files)
	if err := a.printSummary(sum); err != nil {
		return cli.Exit(fmt.Sprintf("error: %v", err), 1)
	}
	if !sum.OK() {
		return cli.Exit("", 1)
	}
	return nil
}
