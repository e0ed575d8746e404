// Package testutils provides helpers for command tests.
package testutils

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/urfave/cli/v3"
)

// BuildCLIForTests returns a root command carrying the global --path flag
// and the given subcommands, writing to out.
func BuildCLIForTests(path string, commands []*cli.Command, out *bytes.Buffer) *cli.Command {
	return &cli.Command{
		Name:      "refreshversions",
		Writer:    out,
		ErrWriter: out,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "path",
				Aliases: []string{"p"},
				Value:   path,
			},
		},
		Commands: commands,
	}
}

// RunCLI runs app with args and returns the error.
func RunCLI(t *testing.T, app *cli.Command, args []string) error {
	t.Helper()
	return app.Run(context.Background(), args)
}

// WriteTempVersionsFile writes content to dir/versions.properties and
// returns the file path.
func WriteTempVersionsFile(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "versions.properties")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write versions file: %v", err)
	}
	return path
}
