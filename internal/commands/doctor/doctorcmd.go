// Package doctor implements the "doctor" command, which checks the
// configuration and the versions file it points to.
package doctor

import (
	"context"
	"fmt"
	"io"

	"github.com/starsep/refreshVersions/internal/clix"
	"github.com/starsep/refreshVersions/internal/config"
	"github.com/starsep/refreshVersions/internal/core"
	"github.com/starsep/refreshVersions/internal/printer"
	"github.com/urfave/cli/v3"
)

// Run returns the "doctor" command.
func Run(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "doctor",
		Aliases:   []string{"check"},
		Usage:     "Validate the configuration and the versions file",
		UsageText: "refreshversions doctor",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runDoctorCmd(ctx, cmd, cfg)
		},
	}
}

func runDoctorCmd(ctx context.Context, cmd *cli.Command, cfg *config.Config) error {
	checked := config.Default()
	if cfg != nil {
		copied := *cfg
		checked = &copied
	}
	checked.Path = clix.VersionsPath(cmd, cfg)

	results, err := config.NewValidator(core.NewOSFileSystem(), checked).Validate(ctx)
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	printResults(clix.Writer(cmd), results)

	if n := config.ErrorCount(results); n > 0 {
		return fmt.Errorf("%d check(s) failed validation", n)
	}
	return nil
}

func printResults(w io.Writer, results []config.ValidationResult) {
	for _, r := range results {
		var status string
		switch {
		case r.Warning:
			status = printer.Warning("⚠")
		case r.Passed:
			status = printer.Success("✓")
		default:
			status = printer.Error("✗")
		}
		fmt.Fprintf(w, "%s %s: %s\n", status, printer.Bold(r.Category), r.Message)
	}

	errCount := config.ErrorCount(results)
	warnCount := config.WarningCount(results)
	fmt.Fprintln(w)
	switch {
	case errCount > 0:
		fmt.Fprintln(w, printer.Error(fmt.Sprintf("%d error(s), %d warning(s)", errCount, warnCount)))
	case warnCount > 0:
		fmt.Fprintln(w, printer.Warning(fmt.Sprintf("All checks passed with %d warning(s)", warnCount)))
	default:
		fmt.Fprintln(w, printer.Success("All checks passed"))
	}
}
