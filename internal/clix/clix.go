// Package clix holds the helpers shared by the subcommands: locating and
// reading the versions file and resolving the output writer.
package clix

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/starsep/refreshVersions/internal/config"
	"github.com/starsep/refreshVersions/internal/core"
	"github.com/starsep/refreshVersions/internal/versionsfile"
	"github.com/urfave/cli/v3"
)

// ErrVersionsFileNotFound is returned when the versions file does not exist.
var ErrVersionsFileNotFound = errors.New("versions file not found")

// VersionsPath returns the versions file path from the --path flag, falling
// back to the configured path. Directories resolve to the default file name.
func VersionsPath(cmd *cli.Command, cfg *config.Config) string {
	path := cmd.String("path")
	if path == "" && cfg != nil {
		path = cfg.Path
	}
	if path == "" {
		path = config.DefaultVersionsFile
	}
	return config.NormalizeVersionsPath(path)
}

// LoadModel reads the versions file selected by cmd and cfg.
func LoadModel(ctx context.Context, cmd *cli.Command, cfg *config.Config) (versionsfile.Model, string, error) {
	return LoadModelFS(ctx, core.NewOSFileSystem(), VersionsPath(cmd, cfg), cfg)
}

// LoadModelFS reads path from fs using the key prefixes of cfg.
func LoadModelFS(ctx context.Context, fs core.FileSystem, path string, cfg *config.Config) (versionsfile.Model, string, error) {
	var opts []versionsfile.Option
	if cfg != nil && len(cfg.VersionKeyPrefixes) > 0 {
		opts = append(opts, versionsfile.WithVersionKeyPrefixes(cfg.VersionKeyPrefixes...))
	}

	model, err := versionsfile.NewReader(fs, opts...).Read(ctx, path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return versionsfile.Model{}, path, fmt.Errorf("%w: %q (use --path or %s)", ErrVersionsFileNotFound, path, config.PathEnvVar)
		}
		return versionsfile.Model{}, path, err
	}
	return model, path, nil
}

// Writer returns the output writer of the root command, os.Stdout if unset.
func Writer(cmd *cli.Command) io.Writer {
	if w := cmd.Root().Writer; w != nil {
		return w
	}
	return os.Stdout
}

// ErrWriter returns the error writer of the root command, os.Stderr if unset.
func ErrWriter(cmd *cli.Command) io.Writer {
	if w := cmd.Root().ErrWriter; w != nil {
		return w
	}
	return os.Stderr
}
