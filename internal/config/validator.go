package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/starsep/refreshVersions/internal/core"
	"github.com/starsep/refreshVersions/internal/tui"
	"github.com/starsep/refreshVersions/internal/versionsfile"
)

// ValidationResult represents the result of a validation check.
type ValidationResult struct {
	// Category is the validation category (e.g., "Logging", "Versions File").
	Category string

	// Passed indicates if the check passed.
	Passed bool

	// Message provides details about the validation result.
	Message string

	// Warning indicates if this is a warning rather than an error.
	Warning bool
}

// Validator validates the configuration and the versions file it points to.
type Validator struct {
	fs          core.FileSystem
	cfg         *Config
	validations []ValidationResult
}

// NewValidator creates a new configuration validator.
func NewValidator(fs core.FileSystem, cfg *Config) *Validator {
	if cfg == nil {
		cfg = Default()
	}
	return &Validator{
		fs:          fs,
		cfg:         cfg,
		validations: make([]ValidationResult, 0),
	}
}

// Validate runs all validation checks and returns the results.
func (v *Validator) Validate(ctx context.Context) ([]ValidationResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	v.validations = make([]ValidationResult, 0)

	v.validateConfigFile(ctx)
	v.validateLogging()
	v.validateTheme()
	v.validateVersionKeyPrefixes()
	v.validateVersionsFile(ctx)

	return v.validations, nil
}

// addValidation adds a validation result to the list.
func (v *Validator) addValidation(category string, passed bool, message string, warning bool) {
	v.validations = append(v.validations, ValidationResult{
		Category: category,
		Passed:   passed,
		Message:  message,
		Warning:  warning,
	})
}

func (v *Validator) validateConfigFile(ctx context.Context) {
	if v.cfg.Source == "" {
		v.addValidation("Config File", true, "No config file found, using defaults", false)
		return
	}

	if _, err := v.fs.Stat(ctx, v.cfg.Source); err != nil {
		v.addValidation("Config File", false, fmt.Sprintf("Failed to access config file: %v", err), false)
		return
	}

	// Parsing already happened in LoadConfigFn.
	v.addValidation("Config File", true, fmt.Sprintf("Configuration loaded from %s", v.cfg.Source), false)
}

func (v *Validator) validateLogging() {
	if v.cfg.Log == nil {
		v.addValidation("Logging", true, "Using default logging (info, text)", false)
		return
	}

	if !slices.Contains(ValidLogLevels, v.cfg.Log.Level) {
		v.addValidation("Logging", false,
			fmt.Sprintf("Invalid log level %q (valid: %s)", v.cfg.Log.Level, strings.Join(ValidLogLevels, ", ")), false)
		return
	}
	if !slices.Contains(ValidLogFormats, v.cfg.Log.Format) {
		v.addValidation("Logging", false,
			fmt.Sprintf("Invalid log format %q (valid: %s)", v.cfg.Log.Format, strings.Join(ValidLogFormats, ", ")), false)
		return
	}

	v.addValidation("Logging", true, fmt.Sprintf("Level %s, format %s", v.cfg.Log.Level, v.cfg.Log.Format), false)
}

func (v *Validator) validateTheme() {
	if v.cfg.Theme == "" {
		v.addValidation("Theme", true, "Using default theme", false)
		return
	}
	if !tui.IsValidTheme(v.cfg.Theme) {
		v.addValidation("Theme", true,
			fmt.Sprintf("Unknown theme %q, falling back to %s", v.cfg.Theme, tui.DefaultThemeName), true)
		return
	}
	v.addValidation("Theme", true, fmt.Sprintf("Theme %s", v.cfg.Theme), false)
}

func (v *Validator) validateVersionKeyPrefixes() {
	if len(v.cfg.VersionKeyPrefixes) == 0 {
		v.addValidation("Version Key Prefixes", false, "At least one version key prefix is required", false)
		return
	}
	for i, prefix := range v.cfg.VersionKeyPrefixes {
		if strings.TrimSpace(prefix) == "" {
			v.addValidation("Version Key Prefixes", false, fmt.Sprintf("Prefix #%d is empty", i+1), false)
			return
		}
		if strings.Contains(prefix, "=") || strings.HasPrefix(prefix, "#") {
			v.addValidation("Version Key Prefixes", false,
				fmt.Sprintf("Prefix %q cannot contain '=' or start with '#'", prefix), false)
			return
		}
	}
	v.addValidation("Version Key Prefixes", true, strings.Join(v.cfg.VersionKeyPrefixes, ", "), false)
}

func (v *Validator) validateVersionsFile(ctx context.Context) {
	const category = "Versions File"

	if _, err := v.fs.Stat(ctx, v.cfg.Path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			v.addValidation(category, false, fmt.Sprintf("Versions file %q not found", v.cfg.Path), false)
		} else {
			v.addValidation(category, false, fmt.Sprintf("Failed to access %q: %v", v.cfg.Path, err), false)
		}
		return
	}

	reader := versionsfile.NewReader(v.fs, versionsfile.WithVersionKeyPrefixes(v.cfg.VersionKeyPrefixes...))
	model, err := reader.Read(ctx, v.cfg.Path)
	if err != nil {
		var vErr *versionsfile.ValidationError
		if errors.As(err, &vErr) {
			v.addValidation(category, false, fmt.Sprintf("%s: %v", vErr.Kind, vErr), false)
		} else {
			v.addValidation(category, false, err.Error(), false)
		}
		return
	}

	entries := model.VersionEntries()
	withUpdates := 0
	for _, e := range entries {
		if e.HasUpdates() {
			withUpdates++
		}
	}
	v.addValidation(category, true,
		fmt.Sprintf("%d entries (%d with available updates), generated by refreshVersions %s",
			len(entries), withUpdates, model.GeneratedByVersion), false)

	if model.Legacy {
		v.addValidation(category, true, "Legacy header detected, run refreshVersions to regenerate it", true)
	}
}

// HasErrors returns true if any validation failed.
func HasErrors(results []ValidationResult) bool {
	return ErrorCount(results) > 0
}

// ErrorCount returns the number of failed validations.
func ErrorCount(results []ValidationResult) int {
	count := 0
	for _, r := range results {
		if !r.Passed && !r.Warning {
			count++
		}
	}
	return count
}

// WarningCount returns the number of warnings.
func WarningCount(results []ValidationResult) int {
	count := 0
	for _, r := range results {
		if r.Warning {
			count++
		}
	}
	return count
}
