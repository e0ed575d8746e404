package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/starsep/refreshVersions/internal/cli"
	"github.com/starsep/refreshVersions/internal/config"
	"github.com/starsep/refreshVersions/internal/printer"
)

func main() {
	if err := runCLI(os.Args); err != nil {
		printer.PrintError(err.Error())
		os.Exit(1)
	}
}

// runCLI loads the configuration and runs the root command with args.
func runCLI(args []string) error {
	cfg, err := config.LoadConfigFn()
	if err != nil {
		return err
	}
	if cfg == nil {
		cfg = config.Default()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return cli.New(cfg).Run(ctx, args)
}
