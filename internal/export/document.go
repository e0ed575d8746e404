package export

import (
	"github.com/starsep/refreshVersions/internal/semver"
	"github.com/starsep/refreshVersions/internal/versionsfile"
)

// Document is the format-neutral view of a versions file.
type Document struct {
	GeneratedByVersion string  `json:"generatedByVersion" yaml:"generated_by_version" toml:"generated_by_version"`
	Entries            []Entry `json:"entries" yaml:"entries" toml:"entries"`
}

// Entry is one version entry of a Document.
type Entry struct {
	Key              string   `json:"key" yaml:"key" toml:"key"`
	Kind             string   `json:"kind" yaml:"kind" toml:"kind"`
	CurrentVersion   string   `json:"currentVersion" yaml:"current_version" toml:"current_version"`
	AvailableUpdates []string `json:"availableUpdates" yaml:"available_updates" toml:"available_updates"`
	LatestUpdate     string   `json:"latestUpdate,omitempty" yaml:"latest_update,omitempty" toml:"latest_update,omitempty"`
	UpdateKind       string   `json:"updateKind,omitempty" yaml:"update_kind,omitempty" toml:"update_kind,omitempty"`
	Comments         []string `json:"comments,omitempty" yaml:"comments,omitempty" toml:"comments,omitempty"`
}

// NewDocument builds a Document from the version entries of m. Free-standing
// comment sections are not part of the document.
func NewDocument(m versionsfile.Model) Document {
	entries := m.VersionEntries()
	doc := Document{
		GeneratedByVersion: m.GeneratedByVersion,
		Entries:            make([]Entry, len(entries)),
	}
	for i, e := range entries {
		doc.Entries[i] = newEntry(e)
	}
	return doc
}

func newEntry(e versionsfile.VersionEntry) Entry {
	entry := Entry{
		Key:              e.Key,
		Kind:             string(e.Kind()),
		CurrentVersion:   e.CurrentVersion,
		AvailableUpdates: append([]string{}, e.AvailableUpdates...),
	}
	if e.HasUpdates() {
		entry.LatestUpdate = e.AvailableUpdates[len(e.AvailableUpdates)-1]
		entry.UpdateKind = string(semver.ClassifyUpdate(e.CurrentVersion, entry.LatestUpdate))
	}
	if n := len(e.LeadingCommentLines) + len(e.TrailingCommentLines); n > 0 {
		entry.Comments = make([]string, 0, n)
		entry.Comments = append(entry.Comments, e.LeadingCommentLines...)
		entry.Comments = append(entry.Comments, e.TrailingCommentLines...)
	}
	return entry
}
