// Package updates implements the "updates" command, which lists the entries
// that have newer versions available.
package updates

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/starsep/refreshVersions/internal/clix"
	"github.com/starsep/refreshVersions/internal/config"
	"github.com/starsep/refreshVersions/internal/printer"
	"github.com/starsep/refreshVersions/internal/semver"
	"github.com/starsep/refreshVersions/internal/versionsfile"
	"github.com/urfave/cli/v3"
)

// Run returns the "updates" command.
func Run(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "updates",
		Aliases:   []string{"outdated"},
		Usage:     "List entries with available updates",
		UsageText: "refreshversions updates [--kind plugin|version]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "kind",
				Aliases: []string{"k"},
				Usage:   "Only list entries of this kind: plugin, version",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runUpdatesCmd(ctx, cmd, cfg)
		},
	}
}

// Update is an entry with at least one available update.
type Update struct {
	Key     string
	Current string
	Latest  string
	Kind    semver.UpdateKind
}

// Collect returns the entries of m that have updates, optionally restricted
// to one entry kind. An empty kind keeps every entry.
func Collect(m versionsfile.Model, kind versionsfile.EntryKind) []Update {
	var updates []Update
	for _, e := range m.VersionEntries() {
		if !e.HasUpdates() || (kind != "" && e.Kind() != kind) {
			continue
		}
		latest := e.AvailableUpdates[len(e.AvailableUpdates)-1]
		updates = append(updates, Update{
			Key:     e.Key,
			Current: e.CurrentVersion,
			Latest:  latest,
			Kind:    semver.ClassifyUpdate(e.CurrentVersion, latest),
		})
	}
	return updates
}

func parseKind(s string) (versionsfile.EntryKind, error) {
	switch kind := versionsfile.EntryKind(strings.ToLower(s)); kind {
	case "", versionsfile.KindPlugin, versionsfile.KindVersion:
		return kind, nil
	default:
		return "", fmt.Errorf("invalid kind %q (valid: %s, %s)", s, versionsfile.KindPlugin, versionsfile.KindVersion)
	}
}

func runUpdatesCmd(ctx context.Context, cmd *cli.Command, cfg *config.Config) error {
	kind, err := parseKind(cmd.String("kind"))
	if err != nil {
		return err
	}

	model, _, err := clix.LoadModel(ctx, cmd, cfg)
	if err != nil {
		return err
	}

	printUpdates(clix.Writer(cmd), Collect(model, kind))
	return nil
}

func printUpdates(w io.Writer, updates []Update) {
	if len(updates) == 0 {
		fmt.Fprintln(w, printer.Success("All versions are up to date"))
		return
	}

	keyWidth, currentWidth := 0, 0
	for _, u := range updates {
		keyWidth = max(keyWidth, len(u.Key))
		currentWidth = max(currentWidth, len(u.Current))
	}

	for _, u := range updates {
		fmt.Fprintf(w, "%-*s  %-*s → %s %s\n",
			keyWidth, u.Key,
			currentWidth, u.Current,
			printer.UpdateKind(string(u.Kind), u.Latest),
			printer.Faint("("+string(u.Kind)+")"),
		)
	}
	fmt.Fprintf(w, "\n%d update(s) available\n", len(updates))
}
