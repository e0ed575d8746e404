package show

import (
	"context"
	"fmt"

	"github.com/starsep/refreshVersions/internal/clix"
	"github.com/starsep/refreshVersions/internal/config"
	"github.com/starsep/refreshVersions/internal/ctxlog"
	"github.com/starsep/refreshVersions/internal/export"
	"github.com/urfave/cli/v3"
)

// Run returns the "show" command.
func Run(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "show",
		Aliases:   []string{"ls"},
		Usage:     "Print the entries of the versions file",
		UsageText: "refreshversions show [--format text|json|yaml|toml|properties]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "Output format: text, json, yaml, toml, properties",
				Value:   export.FormatText.String(),
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runShowCmd(ctx, cmd, cfg)
		},
	}
}

// runShowCmd reads the versions file and prints it in the requested format.
func runShowCmd(ctx context.Context, cmd *cli.Command, cfg *config.Config) error {
	format, err := export.ParseFormat(cmd.String("format"))
	if err != nil {
		return err
	}

	model, path, err := clix.LoadModel(ctx, cmd, cfg)
	if err != nil {
		return err
	}
	ctxlog.FromContext(ctx).Debug("showing versions file", "path", path, "format", format)

	w := clix.Writer(cmd)
	if format == export.FormatText {
		_, err := fmt.Fprint(w, FormatText(path, model))
		return err
	}

	data, err := export.Encode(model, format)
	if err != nil {
		return fmt.Errorf("failed to encode %q as %s: %w", path, format, err)
	}
	_, err = w.Write(data)
	return err
}
