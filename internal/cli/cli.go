package cli

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/starsep/refreshVersions/internal/commands/doctor"
	"github.com/starsep/refreshVersions/internal/commands/get"
	"github.com/starsep/refreshVersions/internal/commands/show"
	"github.com/starsep/refreshVersions/internal/commands/updates"
	"github.com/starsep/refreshVersions/internal/config"
	"github.com/starsep/refreshVersions/internal/ctxlog"
	"github.com/starsep/refreshVersions/internal/printer"
	"github.com/starsep/refreshVersions/internal/tui"
	"github.com/starsep/refreshVersions/internal/version"
	urfavecli "github.com/urfave/cli/v3"
)

// New builds and returns the root CLI command,
// configuring all subcommands and flags for the refreshversions cli.
func New(cfg *config.Config) *urfavecli.Command {
	if cfg == nil {
		cfg = config.Default()
	}
	logLevel, logFormat := "info", "text"
	if cfg.Log != nil {
		logLevel = cmp.Or(cfg.Log.Level, logLevel)
		logFormat = cmp.Or(cfg.Log.Format, logFormat)
	}

	return &urfavecli.Command{
		Name:                  "refreshversions",
		Version:               fmt.Sprintf("v%s", version.GetVersion()),
		Usage:                 "Inspect the versions.properties file written by refreshVersions",
		EnableShellCompletion: true,
		Flags: []urfavecli.Flag{
			&urfavecli.StringFlag{
				Name:        "path",
				Aliases:     []string{"p"},
				Usage:       "Path to the versions.properties file or its directory",
				Value:       cfg.Path,
				DefaultText: config.DefaultVersionsFile,
			},
			&urfavecli.BoolFlag{
				Name:  "no-color",
				Usage: "Disable colored output",
			},
			&urfavecli.StringFlag{
				Name:  "log-level",
				Usage: "Log level: " + strings.Join(config.ValidLogLevels, ", "),
				Value: logLevel,
			},
			&urfavecli.StringFlag{
				Name:  "log-format",
				Usage: "Log format: " + strings.Join(config.ValidLogFormats, ", "),
				Value: logFormat,
			},
		},
		Before: func(ctx context.Context, cmd *urfavecli.Command) (context.Context, error) {
			printer.SetNoColor(cmd.Bool("no-color"))
			tui.SetTheme(cfg.Theme)

			level, format := cmd.String("log-level"), cmd.String("log-format")
			if !slices.Contains(config.ValidLogLevels, level) {
				return ctx, fmt.Errorf("invalid log level %q (valid: %s)", level, strings.Join(config.ValidLogLevels, ", "))
			}
			if !slices.Contains(config.ValidLogFormats, format) {
				return ctx, fmt.Errorf("invalid log format %q (valid: %s)", format, strings.Join(config.ValidLogFormats, ", "))
			}

			logger := newLogger(level, format, cmd.Root().ErrWriter)
			if cfg.Source != "" {
				logger.Debug("configuration loaded", "source", cfg.Source)
			}
			return ctxlog.WithLogger(ctx, logger), nil
		},
		Commands: []*urfavecli.Command{
			show.Run(cfg),
			get.Run(cfg),
			updates.Run(cfg),
			doctor.Run(cfg),
		},
	}
}
