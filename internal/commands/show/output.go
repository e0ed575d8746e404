package show

import (
	"fmt"
	"strings"

	"github.com/starsep/refreshVersions/internal/printer"
	"github.com/starsep/refreshVersions/internal/semver"
	"github.com/starsep/refreshVersions/internal/versionsfile"
)

// FormatText renders the model as human-readable text.
func FormatText(path string, m versionsfile.Model) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "%s %s\n", printer.Info("Versions file:"), path)
	fmt.Fprintf(&sb, "%s %s\n", printer.Faint("Generated by refreshVersions"), m.GeneratedByVersion)
	sb.WriteString(printer.Faint(strings.Repeat("-", 70)))
	sb.WriteString("\n")

	entries := m.VersionEntries()
	if len(entries) == 0 {
		sb.WriteString(printer.Faint("No version entries"))
		sb.WriteString("\n")
		return sb.String()
	}

	width := 0
	for _, e := range entries {
		width = max(width, len(e.Key))
	}

	withUpdates := 0
	for _, e := range entries {
		fmt.Fprintf(&sb, "%-*s  %s", width, e.Key, printer.Bold(e.CurrentVersion))
		if e.HasUpdates() {
			withUpdates++
			latest := e.AvailableUpdates[len(e.AvailableUpdates)-1]
			kind := semver.ClassifyUpdate(e.CurrentVersion, latest)
			fmt.Fprintf(&sb, "  %s", printer.UpdateKind(string(kind), "→ "+strings.Join(e.AvailableUpdates, ", ")))
		}
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	fmt.Fprintf(&sb, "%d entries, %d with available updates\n", len(entries), withUpdates)
	return sb.String()
}
