package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/starsep/refreshVersions/internal/config"
)

const sampleVersions = "#### Generated by `./gradlew refreshVersions` version 0.60.5\n" +
	"\n" +
	"version.kotlin=1.9.0\n" +
	"##         # available=2.0.0\n"

func writeVersions(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "versions.properties")
	if err := os.WriteFile(path, []byte(sampleVersions), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestNew_Subcommands(t *testing.T) {
	app := New(config.Default())

	want := []string{"show", "get", "updates", "doctor"}
	if len(app.Commands) != len(want) {
		t.Fatalf("expected %d commands, got %d", len(want), len(app.Commands))
	}
	for i, name := range want {
		if app.Commands[i].Name != name {
			t.Errorf("command %d = %q, want %q", i, app.Commands[i].Name, name)
		}
	}
}

func TestNew_RunsWithConfiguredPath(t *testing.T) {
	cfg := config.Default()
	cfg.Path = writeVersions(t)

	var out bytes.Buffer
	app := New(cfg)
	app.Writer = &out

	if err := app.Run(context.Background(), []string{"refreshversions", "get", "version.kotlin"}); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if out.String() != "1.9.0\n" {
		t.Errorf("output = %q", out.String())
	}
}

func TestNew_PathFlagOverridesConfig(t *testing.T) {
	path := writeVersions(t)

	var out bytes.Buffer
	app := New(nil)
	app.Writer = &out

	args := []string{"refreshversions", "--no-color", "-p", filepath.Dir(path), "get", "--latest", "version.kotlin"}
	if err := app.Run(context.Background(), args); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if out.String() != "2.0.0\n" {
		t.Errorf("output = %q", out.String())
	}
}

func TestNew_DebugLogging(t *testing.T) {
	cfg := config.Default()
	cfg.Path = writeVersions(t)

	var out, logs bytes.Buffer
	app := New(cfg)
	app.Writer = &out
	app.ErrWriter = &logs

	args := []string{"refreshversions", "--log-level", "debug", "--log-format", "json", "show"}
	if err := app.Run(context.Background(), args); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if !strings.Contains(logs.String(), `"msg":"versions file parsed"`) {
		t.Errorf("expected debug log from the reader, got %q", logs.String())
	}
}

func TestNew_InvalidLogFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"level", []string{"refreshversions", "--log-level", "loud", "show"}, "invalid log level"},
		{"format", []string{"refreshversions", "--log-format", "xml", "show"}, "invalid log format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			cfg.Path = writeVersions(t)
			app := New(cfg)
			app.Writer = &bytes.Buffer{}

			err := app.Run(context.Background(), tt.args)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("expected error containing %q, got %v", tt.want, err)
			}
		})
	}
}
