// Package get implements the "get" command, which prints the version of a
// single key.
package get

import (
	"context"
	"errors"
	"fmt"

	"github.com/starsep/refreshVersions/internal/clix"
	"github.com/starsep/refreshVersions/internal/config"
	"github.com/starsep/refreshVersions/internal/tui"
	"github.com/urfave/cli/v3"
)

// ErrMissingKey is returned when no key is given and no prompt can be shown.
var ErrMissingKey = errors.New("missing version key argument")

var (
	isInteractiveFn = tui.IsInteractive
	selectKeyFn     = tui.SelectKey
)

// Run returns the "get" command.
func Run(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "get",
		Usage:     "Print the current version of a key",
		UsageText: "refreshversions get [--latest] [key]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "latest",
				Aliases: []string{"l"},
				Usage:   "Print the newest available update instead, if any",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runGetCmd(ctx, cmd, cfg)
		},
	}
}

func runGetCmd(ctx context.Context, cmd *cli.Command, cfg *config.Config) error {
	model, path, err := clix.LoadModel(ctx, cmd, cfg)
	if err != nil {
		return err
	}

	key := cmd.Args().First()
	if key == "" {
		if !isInteractiveFn() {
			return ErrMissingKey
		}
		key, err = selectKeyFn("Select a version key", model.Keys())
		if err != nil {
			return fmt.Errorf("failed to select a key: %w", err)
		}
	}

	entry, ok := model.Entry(key)
	if !ok {
		return fmt.Errorf("version key %q not found in %q", key, path)
	}

	version := entry.CurrentVersion
	if cmd.Bool("latest") && entry.HasUpdates() {
		version = entry.AvailableUpdates[len(entry.AvailableUpdates)-1]
	}

	_, err = fmt.Fprintln(clix.Writer(cmd), version)
	return err
}
